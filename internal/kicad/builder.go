package kicad

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/convert"
	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
	"github.com/linkyourbin/nlbn-gui/internal/easyeda/svgpath"
)

// BuildSymbol converts a decoded vendor symbol into the intermediate
// KiCad symbol shape, flipping Y for every symbol primitive (footprints
// never flip, per spec.md's coordinate-system note). Metadata fields
// (value, footprint reference, datasheet, manufacturer, LCSC/JLC ids)
// are left to the caller to fill in, since the decoder has no notion
// of them.
func BuildSymbol(sym *easyeda.Symbol, name string) *KiSymbol {
	ks := &KiSymbol{
		Name:      name,
		Reference: sym.Prefix,
		Value:     name,
	}

	for _, p := range sym.Pins {
		ks.Pins = append(ks.Pins, KiPin{
			Number:   p.Number,
			Name:     p.Name,
			PinType:  PinTypeFromEasyEDA(p.ElectricType),
			Style:    pinStyle(p),
			PosX:     p.X,
			PosY:     convert.FlipY(p.Y),
			Rotation: quantizeRotation(p.Rotation),
			Length:   p.Length,
		})
	}

	for _, r := range sym.Rectangles {
		ks.Rectangles = append(ks.Rectangles, KiRectangle{
			X1: r.X, Y1: convert.FlipY(r.Y),
			X2: r.X + r.Width, Y2: convert.FlipY(r.Y + r.Height),
			StrokeWidth: r.StrokeWidth,
			Fill:        r.Fill,
		})
	}

	for _, c := range sym.Circles {
		ks.Circles = append(ks.Circles, KiCircle{
			CX: c.CX, CY: convert.FlipY(c.CY), Radius: c.Radius,
			StrokeWidth: c.StrokeWidth, Fill: c.Fill,
		})
	}

	// Ellipses have no direct KiCad symbol primitive; the mean of the
	// two radii keeps the outline roughly the right size for the
	// common case where rx and ry are close (a circle drawn via the
	// ellipse record).
	for _, e := range sym.Ellipses {
		ks.Circles = append(ks.Circles, KiCircle{
			CX: e.CX, CY: convert.FlipY(e.CY), Radius: (e.RX + e.RY) / 2,
			StrokeWidth: e.StrokeWidth, Fill: e.Fill,
		})
	}

	for _, a := range sym.Arcs {
		ks.Arcs = append(ks.Arcs, arcToKiArc(a, true))
	}

	for _, pl := range sym.Polylines {
		ks.Polylines = append(ks.Polylines, flipPolyline(pl))
	}
	for _, pg := range sym.Polygons {
		ks.Polylines = append(ks.Polylines, flipPolyline(pg))
	}
	for _, path := range sym.Paths {
		if poly, ok := pathToPolyline(path); ok {
			ks.Polylines = append(ks.Polylines, flipPolyline(poly))
		}
	}

	return ks
}

func pinStyle(p easyeda.Pin) PinStyle {
	switch {
	case p.Dot && p.Clock:
		return StyleInvertedClock
	case p.Dot:
		return StyleInverted
	case p.Clock:
		return StyleClock
	default:
		return StyleLine
	}
}

// quantizeRotation snaps a decoded pin rotation to the nearest quadrant;
// the vendor format always emits exact quadrant angles, but a defensive
// round keeps a stray fractional value from producing an invalid pin.
func quantizeRotation(deg float64) int {
	d := convert.NormalizeDeg(deg)
	switch {
	case d >= 45 && d < 135:
		return 90
	case d >= 135 && d < 225:
		return 180
	case d >= 225 && d < 315:
		return 270
	default:
		return 0
	}
}

func arcToKiArc(a easyeda.Arc, flipY bool) KiArc {
	mid := midAngleDeg(a.StartAngle, a.EndAngle)
	sx, sy := pointOnCircle(a.CX, a.CY, a.Radius, a.StartAngle)
	mx, my := pointOnCircle(a.CX, a.CY, a.Radius, mid)
	ex, ey := pointOnCircle(a.CX, a.CY, a.Radius, a.EndAngle)

	if flipY {
		sy, my, ey = convert.FlipY(sy), convert.FlipY(my), convert.FlipY(ey)
	}

	return KiArc{
		StartX: sx, StartY: sy,
		MidX: mx, MidY: my,
		EndX: ex, EndY: ey,
		StrokeWidth: a.StrokeWidth,
	}
}

func pointOnCircle(cx, cy, radius, angleDeg float64) (float64, float64) {
	rad := convert.DegToRad(angleDeg)
	return cx + radius*math.Cos(rad), cy + radius*math.Sin(rad)
}

// midAngleDeg returns the angle halfway between start and end, sweeping
// through increasing angle (the vendor's arc records always sweep this
// way).
func midAngleDeg(start, end float64) float64 {
	start = convert.NormalizeDeg(start)
	end = convert.NormalizeDeg(end)
	sweep := end - start
	if sweep <= 0 {
		sweep += 360
	}
	return convert.NormalizeDeg(start + sweep/2)
}

func flipPolyline(p easyeda.Polyline) KiPolyline {
	points := make([][2]float64, len(p.Points))
	for i, pt := range p.Points {
		points[i] = [2]float64{pt[0], convert.FlipY(pt[1])}
	}
	return KiPolyline{Points: points, StrokeWidth: p.StrokeWidth, Fill: p.Fill}
}

// pathToPolyline flattens a raw SVG-subset path into a point list,
// closing it when the path ends in Z. Arc commands degrade to their
// endpoint (no sub-division), matching the decoder's existing
// midpoint-of-chord arc tolerance rather than introducing a second,
// stricter path interpretation.
func pathToPolyline(p easyeda.Path) (easyeda.Polyline, bool) {
	cmds, err := svgpath.Parse(p.D)
	if err != nil {
		return easyeda.Polyline{}, false
	}

	var points [][2]float64
	for _, c := range cmds {
		switch c.Kind {
		case svgpath.MoveTo, svgpath.LineTo, svgpath.Arc:
			points = append(points, [2]float64{c.X, c.Y})
		}
	}
	if len(points) == 0 {
		return easyeda.Polyline{}, false
	}

	closed := svgpath.HasClose(cmds)
	if closed && points[0] != points[len(points)-1] {
		points = append(points, points[0])
	}

	return easyeda.Polyline{Points: points, StrokeWidth: p.StrokeWidth, Fill: p.Fill || closed}, true
}

// BuildFootprint converts a decoded vendor footprint into the
// intermediate KiCad footprint shape. Unlike symbols, footprint
// coordinates never flip Y.
func BuildFootprint(fp *easyeda.Footprint, name string) *KiFootprint {
	kf := &KiFootprint{Name: name}

	for _, p := range fp.Pads {
		kf.Pads = append(kf.Pads, padToKiPad(p))
	}

	for i, h := range fp.Holes {
		radius := h.Radius
		kf.Pads = append(kf.Pads, KiPad{
			Number:   fmt.Sprintf("H%d", i+1),
			PadType:  PadNPThroughHole,
			Shape:    ShapeCircle,
			PosX:     h.CX, PosY: h.CY,
			SizeX: radius * 2, SizeY: radius * 2,
			Layers: []string{"*.Cu", "*.Mask"},
			Drill:  &Drill{Diameter: radius * 2},
		})
	}

	for i, v := range fp.Vias {
		kf.Pads = append(kf.Pads, KiPad{
			Number:   fmt.Sprintf("V%d", i+1),
			PadType:  PadThroughHole,
			Shape:    ShapeCircle,
			PosX:     v.CX, PosY: v.CY,
			SizeX: v.Diameter, SizeY: v.Diameter,
			Layers: []string{"*.Cu"},
			Drill:  &Drill{Diameter: v.DrillRadius * 2},
		})
	}

	for _, t := range fp.Tracks {
		kf.Lines = append(kf.Lines, trackToLines(t)...)
	}

	for _, r := range fp.Rectangles {
		kf.Lines = append(kf.Lines, rectangleToLines(r)...)
	}

	for _, a := range fp.Arcs {
		kiArc := arcToKiArc(a, false)
		kf.Arcs = append(kf.Arcs, KiFpArc{
			StartX: kiArc.StartX, StartY: kiArc.StartY,
			MidX: kiArc.MidX, MidY: kiArc.MidY,
			EndX: kiArc.EndX, EndY: kiArc.EndY,
			Width: a.StrokeWidth,
			Layer: "F.SilkS",
		})
	}

	for _, c := range fp.Circles {
		kf.Circles = append(kf.Circles, KiFpCircle{
			CenterX: c.CX, CenterY: c.CY,
			EndX: c.CX + c.Radius, EndY: c.CY,
			Width: c.StrokeWidth,
			Layer: "F.SilkS",
			Fill:  c.Fill,
		})
	}

	for _, t := range fp.Texts {
		kf.Texts = append(kf.Texts, KiText{
			Text: t.Content,
			PosX: t.X, PosY: t.Y,
			Rotation:  t.Rotation,
			Layer:     "F.SilkS",
			Size:      textSizeOrDefault(t.FontSize),
			Thickness: defaultTextThicknessPx,
		})
	}

	for _, node := range fp.SVGNodes {
		kf.Lines = append(kf.Lines, svgNodeToLines(node)...)
	}

	return kf
}

func padToKiPad(p easyeda.Pad) KiPad {
	padType := PadSMD
	var drill *Drill
	if p.HoleRadius != nil && *p.HoleRadius > 0 {
		padType = PadThroughHole
		d := &Drill{Diameter: *p.HoleRadius * 2}
		if p.HoleLength != nil && *p.HoleLength > 0 {
			// Oval drill: the vendor's hole_length is already the slot's
			// long axis, only the radius needs doubling.
			width := *p.HoleLength
			d.Width = &width
		}
		drill = d
	}

	var layers []string
	if padType == PadThroughHole {
		layers = MapPadLayersTHT(p.LayerID)
	} else {
		layers = MapPadLayersSMD(p.LayerID)
	}

	shape := PadShapeFromEasyEDA(string(p.Shape))

	kp := KiPad{
		Number:   p.Number,
		PadType:  padType,
		Shape:    shape,
		PosX:     p.X, PosY: p.Y,
		SizeX: p.Width, SizeY: p.Height,
		Rotation: p.Rotation,
		Layers:   layers,
		Drill:    drill,
	}

	if shape == ShapeCustom && len(p.Points) > 0 {
		kp.Polygon = renderCustomPolygon(p.Points)
	}

	return kp
}

func renderCustomPolygon(points [][2]float64) string {
	s := " (primitives\n      (gr_poly\n        (pts\n"
	for _, pt := range points {
		x, y := convert.PxToMm(pt[0]), convert.PxToMm(pt[1])
		s += fmt.Sprintf("          (xy %.4f %.4f)\n", x, y)
	}
	s += "        )\n        (width 0)\n      )\n    )"
	return s
}

// trackToLines chains a track's raw "x1 y1 x2 y2 ... xn yn" point string
// into consecutive line segments, one per adjacent pair.
func trackToLines(t easyeda.Track) []KiLine {
	points := parseTrackPoints(t.Points)
	var lines []KiLine
	for i := 0; i+1 < len(points); i++ {
		lines = append(lines, KiLine{
			StartX: points[i][0], StartY: points[i][1],
			EndX: points[i+1][0], EndY: points[i+1][1],
			Width: t.StrokeWidth,
			Layer: MapLayer(t.LayerID),
		})
	}
	return lines
}

func parseTrackPoints(s string) [][2]float64 {
	parts := strings.Fields(s)
	var nums []float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}

	var points [][2]float64
	for i := 0; i+1 < len(nums); i += 2 {
		points = append(points, [2]float64{nums[i], nums[i+1]})
	}
	return points
}

func rectangleToLines(r easyeda.Rectangle) []KiLine {
	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.Width, r.Y+r.Height
	layer := "F.SilkS"
	width := r.StrokeWidth
	return []KiLine{
		{StartX: x1, StartY: y1, EndX: x2, EndY: y1, Width: width, Layer: layer},
		{StartX: x2, StartY: y1, EndX: x2, EndY: y2, Width: width, Layer: layer},
		{StartX: x2, StartY: y2, EndX: x1, EndY: y2, Width: width, Layer: layer},
		{StartX: x1, StartY: y2, EndX: x1, EndY: y1, Width: width, Layer: layer},
	}
}

func svgNodeToLines(node easyeda.SVGNode) []KiLine {
	cmds, err := svgpath.Parse(node.Path)
	if err != nil {
		return nil
	}
	layer := svgNodeLayer(node.LayerName)

	var lines []KiLine
	var curX, curY float64
	have := false
	for _, c := range cmds {
		switch c.Kind {
		case svgpath.MoveTo:
			curX, curY = c.X, c.Y
			have = true
		case svgpath.LineTo, svgpath.Arc:
			if have {
				lines = append(lines, KiLine{
					StartX: curX, StartY: curY, EndX: c.X, EndY: c.Y,
					Width: node.StrokeWidth, Layer: layer,
				})
			}
			curX, curY = c.X, c.Y
			have = true
		}
	}
	return lines
}

// svgNodeLayer resolves an SVGNODE's layer token, which the vendor
// stream carries as either a bare numeric layer id (same namespace as
// PAD/TRACK) or an already-named KiCad-style layer, to a KiCad layer name.
func svgNodeLayer(token string) string {
	if id, err := strconv.Atoi(token); err == nil {
		return MapLayer(id)
	}
	if token != "" {
		return token
	}
	return "F.SilkS"
}

// defaultTextThicknessPx is 0.15mm expressed in vendor px units, since
// the footprint builder stores every dimension in px until emit time.
const defaultTextThicknessPx = 0.15 / (10 * 0.0254)

// textSizeOrDefault falls back to a 1 px (~0.254mm) font when the
// decoded record carried no usable size.
func textSizeOrDefault(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return size
}
