package kicad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapLayer(t *testing.T) {
	assert.Equal(t, "F.Cu", MapLayer(1))
	assert.Equal(t, "B.Cu", MapLayer(2))
	assert.Equal(t, "F.SilkS", MapLayer(3))
	assert.Equal(t, "F.Fab", MapLayer(13))
	assert.Equal(t, "Edge.Cuts", MapLayer(10))
	assert.Equal(t, "F.SilkS", MapLayer(999))
}

func TestMapPadLayersSMD(t *testing.T) {
	assert.Equal(t, []string{"F.Cu", "F.Paste", "F.Mask"}, MapPadLayersSMD(1))
	assert.Equal(t, []string{"B.Cu", "B.Paste", "B.Mask"}, MapPadLayersSMD(2))
}

func TestMapPadLayersTHT(t *testing.T) {
	assert.Equal(t, []string{"F.Cu", "F.Mask"}, MapPadLayersTHT(1))
	assert.Equal(t, []string{"*.Cu", "*.Mask"}, MapPadLayersTHT(11))
}
