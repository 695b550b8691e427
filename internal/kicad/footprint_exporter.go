package kicad

import (
	"fmt"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/convert"
)

// FootprintExporter renders a KiFootprint to `.kicad_mod` S-expression
// text. Footprints are always emitted in the v6 format; KiCad v5 has no
// separate footprint text format in this pipeline (spec.md §4.4).
type FootprintExporter struct{}

// NewFootprintExporter builds a footprint exporter.
func NewFootprintExporter() *FootprintExporter {
	return &FootprintExporter{}
}

// Export renders footprint as a `.kicad_mod` file body.
func (e *FootprintExporter) Export(footprint *KiFootprint) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "(footprint \"%s\" (version 20221018) (generator nlbn)\n", footprint.Name)
	b.WriteString("  (layer \"F.Cu\")\n")

	b.WriteString("  (fp_text reference \"REF**\" (at 0 0) (layer \"F.SilkS\")\n")
	b.WriteString("    (effects (font (size 1 1) (thickness 0.15)))\n")
	b.WriteString("  )\n")

	fmt.Fprintf(&b, "  (fp_text value \"%s\" (at 0 2.5) (layer \"F.Fab\")\n", footprint.Name)
	b.WriteString("    (effects (font (size 1 1) (thickness 0.15)))\n")
	b.WriteString("  )\n")

	for _, pad := range footprint.Pads {
		b.WriteString(formatPad(pad))
	}
	for _, line := range footprint.Lines {
		b.WriteString(formatFpLine(line))
	}
	for _, circle := range footprint.Circles {
		b.WriteString(formatFpCircle(circle))
	}
	for _, arc := range footprint.Arcs {
		b.WriteString(formatFpArc(arc))
	}
	for _, text := range footprint.Texts {
		b.WriteString(formatFpText(text))
	}
	if footprint.Model3D != nil {
		b.WriteString(format3DModel(*footprint.Model3D))
	}

	b.WriteString(")\n")

	return b.String(), nil
}

func formatPad(pad KiPad) string {
	x, y := convert.PxToMm(pad.PosX), convert.PxToMm(pad.PosY)
	sizeX, sizeY := convert.PxToMm(pad.SizeX), convert.PxToMm(pad.SizeY)

	var b strings.Builder
	fmt.Fprintf(&b, "  (pad \"%s\" %s %s (at %.4f %.4f", pad.Number, pad.PadType.ToKiCad(), pad.Shape.ToKiCad(), x, y)
	if pad.Rotation != 0 {
		fmt.Fprintf(&b, " %.4f", pad.Rotation)
	}
	fmt.Fprintf(&b, ") (size %.4f %.4f)", sizeX, sizeY)

	b.WriteString(" (layers")
	for _, layer := range pad.Layers {
		fmt.Fprintf(&b, " \"%s\"", layer)
	}
	b.WriteString(")")

	if pad.Drill != nil {
		drillDia := convert.PxToMm(pad.Drill.Diameter)
		if pad.Drill.Width != nil {
			drillWidth := convert.PxToMm(*pad.Drill.Width)
			fmt.Fprintf(&b, " (drill oval %.4f %.4f)", drillDia, drillWidth)
		} else {
			fmt.Fprintf(&b, " (drill %.4f)", drillDia)
		}
	}

	if pad.Polygon != "" {
		b.WriteString(pad.Polygon)
	}

	b.WriteString(")\n")
	return b.String()
}

func formatFpLine(line KiLine) string {
	startX, startY := convert.PxToMm(line.StartX), convert.PxToMm(line.StartY)
	endX, endY := convert.PxToMm(line.EndX), convert.PxToMm(line.EndY)
	width := convert.PxToMm(line.Width)
	return fmt.Sprintf(
		"  (fp_line (start %.4f %.4f) (end %.4f %.4f)\n    (stroke (width %.4f) (type solid)) (layer \"%s\")\n  )\n",
		startX, startY, endX, endY, width, line.Layer,
	)
}

func formatFpCircle(circle KiFpCircle) string {
	cx, cy := convert.PxToMm(circle.CenterX), convert.PxToMm(circle.CenterY)
	endX, endY := convert.PxToMm(circle.EndX), convert.PxToMm(circle.EndY)
	width := convert.PxToMm(circle.Width)
	fill := "none"
	if circle.Fill {
		fill = "solid"
	}
	return fmt.Sprintf(
		"  (fp_circle (center %.4f %.4f) (end %.4f %.4f)\n    (stroke (width %.4f) (type solid)) (fill %s) (layer \"%s\")\n  )\n",
		cx, cy, endX, endY, width, fill, circle.Layer,
	)
}

func formatFpArc(arc KiFpArc) string {
	startX, startY := convert.PxToMm(arc.StartX), convert.PxToMm(arc.StartY)
	midX, midY := convert.PxToMm(arc.MidX), convert.PxToMm(arc.MidY)
	endX, endY := convert.PxToMm(arc.EndX), convert.PxToMm(arc.EndY)
	width := convert.PxToMm(arc.Width)
	return fmt.Sprintf(
		"  (fp_arc (start %.4f %.4f) (mid %.4f %.4f) (end %.4f %.4f)\n    (stroke (width %.4f) (type solid)) (layer \"%s\")\n  )\n",
		startX, startY, midX, midY, endX, endY, width, arc.Layer,
	)
}

func formatFpText(text KiText) string {
	x, y := convert.PxToMm(text.PosX), convert.PxToMm(text.PosY)
	size := convert.PxToMm(text.Size)
	thickness := convert.PxToMm(text.Thickness)

	var b strings.Builder
	fmt.Fprintf(&b, "  (fp_text user \"%s\" (at %.4f %.4f", text.Text, x, y)
	if text.Rotation != 0 {
		fmt.Fprintf(&b, " %.4f", text.Rotation)
	}
	fmt.Fprintf(&b, ") (layer \"%s\")\n    (effects (font (size %.4f %.4f) (thickness %.4f)))\n  )\n",
		text.Layer, size, size, thickness)
	return b.String()
}

func format3DModel(model Ki3dModel) string {
	return fmt.Sprintf(
		"  (model \"%s\"\n    (offset (xyz %.4f %.4f %.4f))\n    (scale (xyz %.4f %.4f %.4f))\n    (rotate (xyz %.4f %.4f %.4f))\n  )\n",
		model.Path,
		model.Offset[0], model.Offset[1], model.Offset[2],
		model.Scale[0], model.Scale[1], model.Scale[2],
		model.Rotate[0], model.Rotate[1], model.Rotate[2],
	)
}
