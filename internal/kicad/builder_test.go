package kicad

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
)

func TestBuildSymbolFlipsYAndMapsPins(t *testing.T) {
	sym := &easyeda.Symbol{
		Prefix: "R",
		Pins: []easyeda.Pin{
			{Number: "1", Name: "1", X: -10, Y: 10, Rotation: 180, Length: 100, ElectricType: "P"},
			{Number: "2", Name: "2", X: 20, Y: 10, Rotation: 0, Length: 100, ElectricType: "P"},
		},
		Polylines: []easyeda.Polyline{
			{Points: [][2]float64{{0, 0}, {10, 0}, {10, 20}, {0, 20}}},
		},
	}

	ks := BuildSymbol(sym, "R_0402")

	assert.Equal(t, "R", ks.Reference)
	assert.Len(t, ks.Pins, 2)
	assert.Equal(t, -10.0, ks.Pins[0].PosX)
	assert.Equal(t, -10.0, ks.Pins[0].PosY, "Y must be flipped")
	assert.Equal(t, 180, ks.Pins[0].Rotation)
	assert.Equal(t, PinPassive, ks.Pins[0].PinType)

	pts := ks.Polylines[0].Points
	assert.Equal(t, [2]float64{0, 0}, pts[0])
	assert.Equal(t, [2]float64{10, -20}, pts[2])
}

func TestBuildSymbolPinStyleFromDotAndClock(t *testing.T) {
	sym := &easyeda.Symbol{
		Prefix: "U",
		Pins: []easyeda.Pin{
			{Number: "1", Dot: true},
			{Number: "2", Clock: true},
			{Number: "3", Dot: true, Clock: true},
			{Number: "4"},
		},
	}
	ks := BuildSymbol(sym, "U1")
	assert.Equal(t, StyleInverted, ks.Pins[0].Style)
	assert.Equal(t, StyleClock, ks.Pins[1].Style)
	assert.Equal(t, StyleInvertedClock, ks.Pins[2].Style)
	assert.Equal(t, StyleLine, ks.Pins[3].Style)
}

func TestBuildFootprintPadsAndLayers(t *testing.T) {
	holeRadius := 0.4
	fp := &easyeda.Footprint{
		Pads: []easyeda.Pad{
			{Number: "1", Shape: easyeda.PadShapeRect, X: -1, Y: 0, Width: 0.6, Height: 0.3, LayerID: 1},
			{Number: "2", Shape: easyeda.PadShapeRound, X: 0, Y: 0, Width: 1.6, Height: 1.6, LayerID: 1, HoleRadius: &holeRadius},
		},
	}

	kf := BuildFootprint(fp, "R_0402")
	assert.Len(t, kf.Pads, 2)
	assert.Equal(t, PadSMD, kf.Pads[0].PadType)
	assert.Equal(t, []string{"F.Cu", "F.Paste", "F.Mask"}, kf.Pads[0].Layers)

	assert.Equal(t, PadThroughHole, kf.Pads[1].PadType)
	assert.Equal(t, []string{"F.Cu", "F.Mask"}, kf.Pads[1].Layers)
	assert.NotNil(t, kf.Pads[1].Drill)
	assert.Equal(t, 0.8, kf.Pads[1].Drill.Diameter)
}

func TestBuildFootprintTrackChainsSegments(t *testing.T) {
	fp := &easyeda.Footprint{
		Tracks: []easyeda.Track{
			{Points: "0 0 10 0 10 10", LayerID: 3},
		},
	}
	kf := BuildFootprint(fp, "X")
	assert.Len(t, kf.Lines, 2)
	assert.Equal(t, "F.SilkS", kf.Lines[0].Layer)
}

func TestBuildFootprintHolesBecomeNPTHPads(t *testing.T) {
	fp := &easyeda.Footprint{
		Holes: []easyeda.Hole{{CX: 1, CY: 2, Radius: 0.5}},
	}
	kf := BuildFootprint(fp, "X")
	assert.Len(t, kf.Pads, 1)
	assert.Equal(t, PadNPThroughHole, kf.Pads[0].PadType)
	assert.Equal(t, 1.0, kf.Pads[0].Drill.Diameter)
}

func TestBuildFootprintOvalDrill(t *testing.T) {
	holeRadius := 0.3
	holeLength := 0.9
	fp := &easyeda.Footprint{
		Pads: []easyeda.Pad{
			{Number: "1", Shape: easyeda.PadShapeOval, Width: 1.6, Height: 1.6, LayerID: 11, HoleRadius: &holeRadius, HoleLength: &holeLength},
		},
	}
	kf := BuildFootprint(fp, "X")
	drill := kf.Pads[0].Drill
	if assert.NotNil(t, drill) {
		assert.Equal(t, 0.6, drill.Diameter)
		if assert.NotNil(t, drill.Width) {
			assert.Equal(t, 0.9, *drill.Width)
		}
	}
}
