package altium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "100", formatCoord(100.0))
	assert.Equal(t, "100.5", formatCoord(100.5))
	assert.Equal(t, "100.1234", formatCoord(100.1234))
}

func TestPadShapeCodes(t *testing.T) {
	assert.Equal(t, 0, ShapeRound.ToAltiumCode())
	assert.Equal(t, 1, ShapeRectangle.ToAltiumCode())
	assert.Equal(t, 2, ShapeOctagonal.ToAltiumCode())
	assert.Equal(t, 3, ShapeRoundRect.ToAltiumCode())
}

func TestPadLayerNames(t *testing.T) {
	assert.Equal(t, "TOP", LayerTop.ToAltiumName())
	assert.Equal(t, "BOTTOM", LayerBottom.ToAltiumName())
	assert.Equal(t, "MULTILAYER", LayerMultiLayer.ToAltiumName())
}

func TestFootprintExportPadAndModel(t *testing.T) {
	fp := &AdFootprint{
		Name: "R_0402",
		Pads: []AdPad{
			{X: -40, Y: 0, Width: 24, Height: 12, Shape: ShapeRectangle, Name: "1", Layer: LayerTop},
		},
		Model3D: &Ad3DModel{Filename: "R_0402.step"},
	}

	out, err := NewFootprintExporter().Export(fp)
	require.NoError(t, err)
	assert.Contains(t, out, "|RECORD=2\n")
	assert.Contains(t, out, "|NAME=R_0402\n")
	assert.Contains(t, out, "|RECORD=3\n")
	assert.Contains(t, out, "|LAYER=TOP\n")
	assert.Contains(t, out, "|RECORD=16\n")
	assert.Contains(t, out, "|MODELNAME=R_0402.step\n")
}
