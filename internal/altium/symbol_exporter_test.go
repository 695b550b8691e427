package altium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
)

func TestEscapeString(t *testing.T) {
	assert.Equal(t, "test\\|string", EscapeString("test|string"))
	assert.Equal(t, "test string", EscapeString("test\nstring"))
}

func TestPinElectricalCodes(t *testing.T) {
	assert.Equal(t, 0, ElecInput.ToAltiumCode())
	assert.Equal(t, 1, ElecIO.ToAltiumCode())
	assert.Equal(t, 2, ElecOutput.ToAltiumCode())
	assert.Equal(t, 7, ElecPower.ToAltiumCode())
}

func TestPinOrientationCodes(t *testing.T) {
	assert.Equal(t, 0, OrientRight.ToAltiumCode())
	assert.Equal(t, 1, OrientUp.ToAltiumCode())
	assert.Equal(t, 2, OrientLeft.ToAltiumCode())
	assert.Equal(t, 3, OrientDown.ToAltiumCode())
}

func TestSymbolExportContainsPinAndRectangleRecords(t *testing.T) {
	sym := &AdSymbol{
		LibRef: "R_0402",
		Pins: []AdPin{
			{X: -100, Y: 0, Length: 100, Name: "1", Designator: "1", Electrical: ElecPassive, Orientation: OrientRight},
		},
		Rectangles: []AdRectangle{{X: -50, Y: -30, Width: 100, Height: 60}},
	}

	out, err := NewSymbolExporter().Export(sym)
	require.NoError(t, err)
	assert.Contains(t, out, "|RECORD=1\n")
	assert.Contains(t, out, "|LIBREF=R_0402\n")
	assert.Contains(t, out, "|RECORD=41\n")
	assert.Contains(t, out, "|ELECTRICAL=4\n")
	assert.Contains(t, out, "|RECORD=2\n")
}

func TestSymbolExportPowerPinByNameHeuristic(t *testing.T) {
	sym := &easyeda.Symbol{
		Pins: []easyeda.Pin{{Number: "8", Name: "VCC", X: 0, Y: 0, Length: 1}},
	}
	out, err := NewSymbolExporter().Export(BuildSymbol(sym, "U1"))
	require.NoError(t, err)
	assert.Contains(t, out, "|ELECTRICAL=7\n")
	assert.Contains(t, out, "|NAME=VCC\n")
}
