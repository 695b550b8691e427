package altium

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
)

func TestGuessPinElectrical(t *testing.T) {
	assert.Equal(t, ElecPower, guessPinElectrical("VCC"))
	assert.Equal(t, ElecPower, guessPinElectrical("GND"))
	assert.Equal(t, ElecInput, guessPinElectrical("IN1"))
	assert.Equal(t, ElecOutput, guessPinElectrical("OUT1"))
	assert.Equal(t, ElecIO, guessPinElectrical("PA0"))
	assert.Equal(t, ElecIO, guessPinElectrical("GPIO1"))
}

func TestPinElectricalPrefersVendorCodeOverNameHeuristic(t *testing.T) {
	// Vendor says passive even though the name looks like a power pin.
	p := easyeda.Pin{Name: "VCC_SENSE", ElectricType: "P"}
	assert.Equal(t, ElecPassive, pinElectrical(p))

	// No vendor code: falls back to the name heuristic.
	p2 := easyeda.Pin{Name: "VCC", ElectricType: ""}
	assert.Equal(t, ElecPower, pinElectrical(p2))
}

func TestBuildSymbolSynthesizesDefaultBody(t *testing.T) {
	sym := &easyeda.Symbol{
		Pins: []easyeda.Pin{
			{X: -10, Y: 10, ElectricType: "P"},
			{X: 20, Y: -5, ElectricType: "P"},
		},
	}
	ad := BuildSymbol(sym, "Test")
	assert.Len(t, ad.Rectangles, 1)
}

func TestBuildFootprintThroughHolePadIsMultiLayer(t *testing.T) {
	radius := 0.4
	fp := &easyeda.Footprint{
		Pads: []easyeda.Pad{{Number: "1", HoleRadius: &radius}},
	}
	ad := BuildFootprint(fp, "X")
	assert.Equal(t, LayerMultiLayer, ad.Pads[0].Layer)
	assert.Greater(t, ad.Pads[0].HoleSize, 0.0)
}
