package kicad

import (
	"fmt"
	"math"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/convert"
)

// Version selects which KiCad symbol/footprint text format an exporter
// produces.
type Version int

const (
	V6 Version = iota
	V5
)

const (
	fieldOffsetStart     = 5.08
	fieldOffsetIncrement = 2.54
)

// SymbolExporter renders a KiSymbol to its KiCad text representation.
type SymbolExporter struct {
	version Version
}

// NewSymbolExporter builds an exporter targeting the given KiCad version.
func NewSymbolExporter(version Version) *SymbolExporter {
	return &SymbolExporter{version: version}
}

// Export renders symbol in the exporter's configured version.
func (e *SymbolExporter) Export(symbol *KiSymbol) (string, error) {
	if e.version == V5 {
		return e.exportV5(symbol), nil
	}
	return e.exportV6(symbol), nil
}

func (e *SymbolExporter) exportV6(symbol *KiSymbol) string {
	var b strings.Builder

	yHigh, yLow := calculateYBounds(symbol)

	fmt.Fprintf(&b, "  (symbol \"%s\"\n", symbol.Name)
	b.WriteString("    (in_bom yes)\n")
	b.WriteString("    (on_board yes)\n")

	fieldOffsetY := fieldOffsetStart
	propertyID := 0

	writeProperty := func(name, value string, y float64, hidden bool) {
		b.WriteString("    (property\n")
		fmt.Fprintf(&b, "      \"%s\"\n", name)
		fmt.Fprintf(&b, "      \"%s\"\n", value)
		fmt.Fprintf(&b, "      (id %d)\n", propertyID)
		fmt.Fprintf(&b, "      (at 0 %.2f 0)\n", y)
		if hidden {
			b.WriteString("      (effects (font (size 1.27 1.27) ) hide)\n")
		} else {
			b.WriteString("      (effects (font (size 1.27 1.27) ) )\n")
		}
		b.WriteString("    )\n")
		propertyID++
	}

	writeProperty("Reference", symbol.Reference, yHigh+fieldOffsetY, false)
	writeProperty("Value", symbol.Value, yLow-fieldOffsetY, false)

	writeOptional := func(name, value string) {
		if value == "" {
			return
		}
		fieldOffsetY += fieldOffsetIncrement
		writeProperty(name, value, yLow-fieldOffsetY, true)
	}

	writeOptional("Footprint", symbol.Footprint)
	writeOptional("Datasheet", symbol.Datasheet)
	writeOptional("Manufacturer", symbol.Manufacturer)
	writeOptional("LCSC Part", symbol.LcscID)
	writeOptional("JLC Part", symbol.JlcID)

	fmt.Fprintf(&b, "    (symbol \"%s_0_1\"\n", symbol.Name)

	for _, rect := range symbol.Rectangles {
		b.WriteString(formatRectangleV6(rect))
	}
	for _, circle := range symbol.Circles {
		b.WriteString(formatCircleV6(circle))
	}
	for _, arc := range symbol.Arcs {
		b.WriteString(formatArcV6(arc))
	}
	for _, poly := range symbol.Polylines {
		b.WriteString(formatPolylineV6(poly))
	}
	for _, pin := range symbol.Pins {
		b.WriteString(formatPinV6(pin))
	}

	b.WriteString("    )\n")
	b.WriteString("  )\n")

	return b.String()
}

func calculateYBounds(symbol *KiSymbol) (yHigh, yLow float64) {
	if len(symbol.Pins) == 0 {
		return 0, 0
	}

	yHigh = math.Inf(-1)
	yLow = math.Inf(1)
	for _, pin := range symbol.Pins {
		y := convert.PxToMm(pin.PosY)
		if y > yHigh {
			yHigh = y
		}
		if y < yLow {
			yLow = y
		}
	}
	return yHigh, yLow
}

func (e *SymbolExporter) exportV5(symbol *KiSymbol) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DEF %s %s 0 40 Y Y 1 F N\n", symbol.Name, symbol.Reference)
	fmt.Fprintf(&b, "F0 \"%s\" 0 0 50 H V C CNN\n", symbol.Reference)
	fmt.Fprintf(&b, "F1 \"%s\" 0 -100 50 H V C CNN\n", symbol.Value)
	fmt.Fprintf(&b, "F2 \"%s\" 0 0 50 H I C CNN\n", symbol.Footprint)
	fmt.Fprintf(&b, "F3 \"%s\" 0 0 50 H I C CNN\n", symbol.Datasheet)

	b.WriteString("DRAW\n")
	for _, rect := range symbol.Rectangles {
		b.WriteString(formatRectangleV5(rect))
	}
	for _, circle := range symbol.Circles {
		b.WriteString(formatCircleV5(circle))
	}
	for _, poly := range symbol.Polylines {
		b.WriteString(formatPolylineV5(poly))
	}
	for _, pin := range symbol.Pins {
		b.WriteString(formatPinV5(pin))
	}
	b.WriteString("ENDDRAW\n")
	b.WriteString("ENDDEF\n")

	return b.String()
}

func formatPinV6(pin KiPin) string {
	x := convert.PxToMm(pin.PosX)
	y := convert.PxToMm(pin.PosY)
	length := convert.PxToMm(pin.Length)
	orientation := (180 + pin.Rotation) % 360

	return fmt.Sprintf(
		"      (pin %s %s\n        (at %.2f %.2f %d)\n        (length %.2f)\n        (name \"%s\" (effects (font (size 1.27 1.27))))\n        (number \"%s\" (effects (font (size 1.27 1.27))))\n      )\n",
		pin.PinType.ToKiCadV6(), pin.Style.ToKiCadV6(), x, y, orientation, length, pin.Name, pin.Number,
	)
}

func formatPinV5(pin KiPin) string {
	x := convert.PxToMil(pin.PosX)
	y := convert.PxToMil(pin.PosY)
	length := convert.PxToMil(pin.Length)

	return fmt.Sprintf("X %s %s %.0f %.0f %.0f %c %d %d %d %d %s\n",
		pin.Name, pin.Number, x, y, length, rotationToDirection(pin.Rotation), 50, 50, 1, 1, pin.PinType.ToKiCadV5())
}

func rotationToDirection(rotation int) rune {
	switch rotation {
	case 0:
		return 'R'
	case 90:
		return 'U'
	case 180:
		return 'L'
	case 270:
		return 'D'
	default:
		return 'R'
	}
}

func formatRectangleV6(rect KiRectangle) string {
	x1, y1 := convert.PxToMm(rect.X1), convert.PxToMm(rect.Y1)
	x2, y2 := convert.PxToMm(rect.X2), convert.PxToMm(rect.Y2)
	fill := "none"
	if rect.Fill {
		fill = "background"
	}
	return fmt.Sprintf(
		"      (rectangle\n        (start %.2f %.2f)\n        (end %.2f %.2f)\n        (stroke (width 0) (type default) (color 0 0 0 0))\n        (fill (type %s))\n      )\n",
		x1, y1, x2, y2, fill,
	)
}

func formatRectangleV5(rect KiRectangle) string {
	x1, y1 := convert.PxToMil(rect.X1), convert.PxToMil(rect.Y1)
	x2, y2 := convert.PxToMil(rect.X2), convert.PxToMil(rect.Y2)
	fill := "N"
	if rect.Fill {
		fill = "F"
	}
	return fmt.Sprintf("S %.0f %.0f %.0f %.0f 1 1 10 %s\n", x1, y1, x2, y2, fill)
}

func formatCircleV6(circle KiCircle) string {
	cx, cy := convert.PxToMm(circle.CX), convert.PxToMm(circle.CY)
	radius := convert.PxToMm(circle.Radius)
	return fmt.Sprintf(
		"      (circle\n        (center %.2f %.2f)\n        (radius %.2f)\n        (stroke (width 0) (type default) (color 0 0 0 0))\n        (fill (type none))\n      )\n",
		cx, cy, radius,
	)
}

func formatCircleV5(circle KiCircle) string {
	cx, cy := convert.PxToMil(circle.CX), convert.PxToMil(circle.CY)
	radius := convert.PxToMil(circle.Radius)
	fill := "N"
	if circle.Fill {
		fill = "F"
	}
	return fmt.Sprintf("C %.0f %.0f %.0f 1 1 10 %s\n", cx, cy, radius, fill)
}

func formatArcV6(arc KiArc) string {
	startX, startY := convert.PxToMm(arc.StartX), convert.PxToMm(arc.StartY)
	midX, midY := convert.PxToMm(arc.MidX), convert.PxToMm(arc.MidY)
	endX, endY := convert.PxToMm(arc.EndX), convert.PxToMm(arc.EndY)
	width := convert.PxToMm(arc.StrokeWidth)
	return fmt.Sprintf(
		"    (arc (start %.4f %.4f) (mid %.4f %.4f) (end %.4f %.4f)\n      (stroke (width %.4f) (type default))\n      (fill (type none))\n    )\n",
		startX, startY, midX, midY, endX, endY, width,
	)
}

func formatPolylineV6(poly KiPolyline) string {
	var b strings.Builder
	b.WriteString("    (polyline\n      (pts\n")
	for _, p := range poly.Points {
		x, y := convert.PxToMm(p[0]), convert.PxToMm(p[1])
		fmt.Fprintf(&b, "        (xy %.4f %.4f)\n", x, y)
	}
	width := convert.PxToMm(poly.StrokeWidth)
	fill := "none"
	if poly.Fill {
		fill = "background"
	}
	b.WriteString("      )\n")
	fmt.Fprintf(&b, "      (stroke (width %.4f) (type default))\n", width)
	fmt.Fprintf(&b, "      (fill (type %s))\n", fill)
	b.WriteString("    )\n")
	return b.String()
}

func formatPolylineV5(poly KiPolyline) string {
	var b strings.Builder
	fmt.Fprintf(&b, "P %d 1 1 10", len(poly.Points))
	for _, p := range poly.Points {
		x, y := convert.PxToMil(p[0]), convert.PxToMil(p[1])
		fmt.Fprintf(&b, " %.0f %.0f", x, y)
	}
	fill := "N"
	if poly.Fill {
		fill = "F"
	}
	fmt.Fprintf(&b, " %s\n", fill)
	return b.String()
}
