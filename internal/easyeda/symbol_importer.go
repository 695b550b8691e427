package easyeda

import (
	"math"
	"strconv"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/apperror"
	"github.com/linkyourbin/nlbn-gui/internal/convert"
	"github.com/linkyourbin/nlbn-gui/internal/easyeda/svgpath"
	"github.com/linkyourbin/nlbn-gui/internal/logging"
)

// ParseSymbol decodes a symbol shape stream into an intermediate Symbol.
// Each record is decoded in isolation and no record aborts the whole
// component. A malformed pin record is logged and dropped; records of
// the other kinds are kept, with any field that fails to parse left at
// its zero value.
func ParseSymbol(records []string) (*Symbol, error) {
	sym := &Symbol{Prefix: "U"}

	for _, record := range records {
		designator, fields := splitFields(record)
		switch {
		case designator == "LIB":
			sym.Name = field(fields, 3)
		case designator == "P":
			pin, err := parsePin(record)
			if err != nil {
				logging.Debug("dropping malformed pin record", logging.Fields{"err": err.Error()})
				continue
			}
			sym.Pins = append(sym.Pins, *pin)
		case designator == "R":
			sym.Rectangles = append(sym.Rectangles, parseRectangle(fields))
		case designator == "C":
			sym.Circles = append(sym.Circles, parseCircle(fields))
		case designator == "E":
			sym.Ellipses = append(sym.Ellipses, parseEllipse(fields))
		case designator == "A":
			sym.Arcs = append(sym.Arcs, parseArc(fields)...)
		case designator == "PL":
			sym.Polylines = append(sym.Polylines, parsePolyline(fields, 7))
		case designator == "PG":
			sym.Polygons = append(sym.Polygons, parsePolyline(fields, 7))
		case designator == "PT":
			// The decoded polygon already carries this record's full point
			// data; Paths is reserved for the standalone PATH designator so
			// the builder doesn't draw the same outline twice.
			sym.Polygons = append(sym.Polygons, parsePathPolygon(fields))
		case designator == "T":
			sym.Texts = append(sym.Texts, parseText(fields))
		case designator == "PATH":
			// Raw path: width, layer, path_data, ... — folded into Paths for
			// downstream emitters that only care about the outline.
			sym.Paths = append(sym.Paths, Path{D: field(fields, 2)})
		default:
			// Unknown designator: lossy-tolerant, skip.
		}
	}

	if sym.Prefix == "" {
		sym.Prefix = "U"
	}
	return sym, nil
}

// parsePin decodes a pin record. Field 0's body is `^^`-delimited into
// segments, each itself `~`-delimited:
//
//	segment[0]: P~is_displayed~electric_type~number~x~y~rotation~id~is_locked
//	segment[2]: a path fragment whose trailing h<N>/v<N> gives pin length
//	segment[3]: field 4 is the visible pin name, defaulting to "PIN"
func parsePin(record string) (*Pin, error) {
	if !strings.HasPrefix(record, "P~") {
		return nil, apperror.Decode("P", record, errNotAPin)
	}

	// Segments are "^^"-delimited; each segment is itself "~"-delimited.
	// Segment 0 alone carries the pin's position/rotation/electrical type.
	segments := splitPinSegments(record)
	if len(segments) == 0 {
		return nil, apperror.Decode("P", record, errNotAPin)
	}

	head := segments[0]
	x, _ := strconv.ParseFloat(field(head, 4), 64)
	y, _ := strconv.ParseFloat(field(head, 5), 64)
	rotation, _ := strconv.ParseFloat(field(head, 6), 64)

	pin := &Pin{
		Number:       field(head, 3),
		ElectricType: field(head, 2),
		X:            x,
		Y:            y,
		Rotation:     rotation,
		Length:       100, // default, per spec.md §9 fallback
	}

	if len(segments) > 2 {
		pin.Length = extractPinLength(strings.Join(segments[2], "~"))
	}

	pin.Name = "PIN"
	if len(segments) > 3 {
		if name := field(segments[3], 4); name != "" {
			pin.Name = name
		}
	}

	return pin, nil
}

var errNotAPin = apperror.ErrInvalidData

// extractPinLength finds the trailing h<±N> or v<±N> token in a pin path
// fragment and returns |N|; malformed input degrades to the 100-mil
// default (logged at debug per spec.md §9 design note).
func extractPinLength(pathFragment string) float64 {
	hIdx := strings.LastIndexByte(pathFragment, 'h')
	vIdx := strings.LastIndexByte(pathFragment, 'v')
	idx := hIdx
	if vIdx > idx {
		idx = vIdx
	}
	if idx < 0 || idx+1 >= len(pathFragment) {
		logging.Debug("pin length fallback", logging.Fields{"fragment": pathFragment})
		return 100
	}

	rest := strings.TrimLeft(pathFragment[idx+1:], " ,")
	end := 0
	for end < len(rest) && (rest[end] == '-' || rest[end] == '.' || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	n, err := strconv.ParseFloat(rest[:end], 64)
	if err != nil {
		logging.Debug("pin length fallback", logging.Fields{"fragment": pathFragment})
		return 100
	}
	if n < 0 {
		n = -n
	}
	return n
}

func parseRectangle(fields []string) Rectangle {
	x, _ := strconv.ParseFloat(field(fields, 1), 64)
	y, _ := strconv.ParseFloat(field(fields, 2), 64)
	w, _ := strconv.ParseFloat(field(fields, 5), 64)
	h, _ := strconv.ParseFloat(field(fields, 6), 64)
	return Rectangle{X: x, Y: y, Width: w, Height: h, Fill: isFilled(field(fields, 10))}
}

func parseCircle(fields []string) Circle {
	cx, _ := strconv.ParseFloat(field(fields, 1), 64)
	cy, _ := strconv.ParseFloat(field(fields, 2), 64)
	r, _ := strconv.ParseFloat(field(fields, 3), 64)
	return Circle{CX: cx, CY: cy, Radius: r, Fill: isFilled(field(fields, 7))}
}

func parseEllipse(fields []string) Ellipse {
	cx, _ := strconv.ParseFloat(field(fields, 1), 64)
	cy, _ := strconv.ParseFloat(field(fields, 2), 64)
	rx, _ := strconv.ParseFloat(field(fields, 3), 64)
	ry, _ := strconv.ParseFloat(field(fields, 4), 64)
	return Ellipse{CX: cx, CY: cy, RX: rx, RY: ry, Fill: isFilled(field(fields, 8))}
}

// parseArc dispatches on whether field 1 looks like an SVG path (starts
// with "M") or the traditional A~cx~cy~r~start~end form. The SVG-path
// variant approximates each A command in the path as a center-radius
// arc, one result per command, per spec.md §4.2/§9: intentionally a
// midpoint-of-chord approximation, not the W3C-exact conversion (which
// internal/convert also offers).
func parseArc(fields []string) []Arc {
	pathField := field(fields, 1)
	if strings.HasPrefix(strings.TrimSpace(pathField), "M") {
		return parseSVGArc(pathField)
	}
	cx, _ := strconv.ParseFloat(field(fields, 1), 64)
	cy, _ := strconv.ParseFloat(field(fields, 2), 64)
	r, _ := strconv.ParseFloat(field(fields, 3), 64)
	start, _ := strconv.ParseFloat(field(fields, 4), 64)
	end, _ := strconv.ParseFloat(field(fields, 5), 64)
	return []Arc{{CX: cx, CY: cy, Radius: r, StartAngle: start, EndAngle: end}}
}

// parseSVGArc walks an SVG-subset path and emits one Arc per "A"
// command, tracking the current pen position across MoveTo/LineTo/Arc
// the way the path is actually drawn (current position starts at the
// origin if the path has no leading MoveTo). A counter-sweep arc has its
// bounds swapped, and both angles are normalized into [0,360), so every
// result runs from StartAngle to EndAngle through increasing angle.
func parseSVGArc(path string) []Arc {
	cmds, err := svgpath.Parse(path)
	if err != nil {
		return nil
	}

	var arcs []Arc
	var curX, curY float64
	for _, c := range cmds {
		switch c.Kind {
		case svgpath.MoveTo, svgpath.LineTo:
			curX, curY = c.X, c.Y
		case svgpath.Arc:
			cx := (curX + c.X) / 2
			cy := (curY + c.Y) / 2
			radius := math.Abs((c.RX + c.RY) / 2)

			startAngle := angleDeg(cx, cy, curX, curY)
			endAngle := angleDeg(cx, cy, c.X, c.Y)
			if !c.Sweep {
				startAngle, endAngle = endAngle, startAngle
			}

			arcs = append(arcs, Arc{
				CX: cx, CY: cy, Radius: radius,
				StartAngle: convert.NormalizeDeg(startAngle),
				EndAngle:   convert.NormalizeDeg(endAngle),
			})
			curX, curY = c.X, c.Y
		}
	}
	return arcs
}

// angleDeg is the unnormalized atan2 angle in degrees, in the range
// (-180, 180]; parseSVGArc normalizes it into [0,360).
func angleDeg(cx, cy, x, y float64) float64 {
	dx, dy := x-cx, y-cy
	return math.Atan2(dy, dx) * 180 / math.Pi
}

func parsePolyline(fields []string, fillIndex int) Polyline {
	points := parsePoints(field(fields, 1))
	return Polyline{Points: points, Fill: field(fields, fillIndex) == "1"}
}

// parsePathPolygon decodes a PT record: field 1 is an SVG-subset path;
// the polygon is filled iff the path contains a Z command, and (per
// spec.md §3's invariant) its first vertex is repeated as the last
// element when closed.
func parsePathPolygon(fields []string) Polyline {
	path := field(fields, 1)
	cmds, err := svgpath.Parse(path)
	if err != nil {
		return Polyline{}
	}

	var points [][2]float64
	for _, c := range cmds {
		switch c.Kind {
		case svgpath.MoveTo, svgpath.LineTo:
			points = append(points, [2]float64{c.X, c.Y})
		}
	}

	closed := svgpath.HasClose(cmds)
	if closed && len(points) > 0 && points[0] != points[len(points)-1] {
		points = append(points, points[0])
	}

	return Polyline{Points: points, Fill: closed}
}

func parseText(fields []string) Text {
	x, _ := strconv.ParseFloat(field(fields, 1), 64)
	y, _ := strconv.ParseFloat(field(fields, 2), 64)
	rot, _ := strconv.ParseFloat(field(fields, 3), 64)
	fontSize, _ := strconv.ParseFloat(field(fields, len(fields)-1), 64)
	return Text{X: x, Y: y, Rotation: rot, Content: field(fields, 4), FontSize: fontSize}
}

func parsePoints(s string) [][2]float64 {
	parts := strings.Fields(s)
	var points [][2]float64
	for i := 0; i+1 < len(parts); i += 2 {
		x, errX := strconv.ParseFloat(parts[i], 64)
		y, errY := strconv.ParseFloat(parts[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, [2]float64{x, y})
	}
	return points
}
