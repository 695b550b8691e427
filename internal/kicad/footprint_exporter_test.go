package kicad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFootprintExportPadWithDrill(t *testing.T) {
	width := 0.6
	fp := &KiFootprint{
		Name: "Cap_0805",
		Pads: []KiPad{
			{
				Number:  "1",
				PadType: PadThroughHole,
				Shape:   ShapeOval,
				PosX:    1, PosY: 2,
				SizeX: 1.2, SizeY: 1.2,
				Layers: MapPadLayersTHT(1),
				Drill:  &Drill{Diameter: 0.8, Width: &width},
			},
		},
		Model3D: &Ki3dModel{Path: "${KIPRJMOD}/nlbn.3dshapes/Cap_0805.wrl"},
	}

	out, err := NewFootprintExporter().Export(fp)
	require.NoError(t, err)
	assert.Contains(t, out, "(footprint \"Cap_0805\"")
	assert.Contains(t, out, "thru_hole oval")
	assert.Contains(t, out, "(drill oval")
	assert.Contains(t, out, "(model \"${KIPRJMOD}/nlbn.3dshapes/Cap_0805.wrl\"")
}

func TestFootprintExportSMDPadNoDrill(t *testing.T) {
	fp := &KiFootprint{
		Name: "R_0402",
		Pads: []KiPad{
			{Number: "1", PadType: PadSMD, Shape: ShapeRect, PosX: 0, PosY: 0, SizeX: 0.5, SizeY: 0.6, Layers: MapPadLayersSMD(1)},
		},
	}
	out, err := NewFootprintExporter().Export(fp)
	require.NoError(t, err)
	assert.NotContains(t, out, "(drill")
	assert.NotContains(t, out, "(model")
}
