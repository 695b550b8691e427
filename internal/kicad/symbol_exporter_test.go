package kicad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSymbol() *KiSymbol {
	return &KiSymbol{
		Name:      "Cap_0805",
		Reference: "C",
		Value:     "100nF",
		Footprint: "Capacitor_SMD:C_0805",
		Datasheet: "https://example.com/ds.pdf",
		LcscID:    "C123456",
		Pins: []KiPin{
			{Number: "1", Name: "1", PinType: PinPassive, PosX: 0, PosY: -100, Rotation: 180, Length: 100},
			{Number: "2", Name: "2", PinType: PinPassive, PosX: 0, PosY: 100, Rotation: 0, Length: 100},
		},
		Rectangles: []KiRectangle{{X1: -50, Y1: -30, X2: 50, Y2: 30, Fill: true}},
	}
}

func TestSymbolExportV6ContainsPinsAndProperties(t *testing.T) {
	exp := NewSymbolExporter(V6)
	out, err := exp.Export(sampleSymbol())
	require.NoError(t, err)
	assert.Contains(t, out, "(symbol \"Cap_0805\"")
	assert.Contains(t, out, "\"Reference\"")
	assert.Contains(t, out, "\"LCSC Part\"")
	assert.Contains(t, out, "(pin passive line")
	assert.Contains(t, out, "(rectangle")
}

func TestSymbolExportV5UsesLegacyFormat(t *testing.T) {
	exp := NewSymbolExporter(V5)
	out, err := exp.Export(sampleSymbol())
	require.NoError(t, err)
	assert.Contains(t, out, "DEF Cap_0805 C 0 40 Y Y 1 F N")
	assert.Contains(t, out, "ENDDRAW")
	assert.Contains(t, out, "ENDDEF")
	assert.Contains(t, out, "\nX 1 1 ")
}

func TestSymbolExportOmitsEmptyOptionalProperties(t *testing.T) {
	sym := sampleSymbol()
	sym.Manufacturer = ""
	sym.JlcID = ""
	out, err := NewSymbolExporter(V6).Export(sym)
	require.NoError(t, err)
	assert.NotContains(t, out, "\"Manufacturer\"")
	assert.NotContains(t, out, "\"JLC Part\"")
}
