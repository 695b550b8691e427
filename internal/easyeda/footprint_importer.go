package easyeda

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/logging"
)

// ParseFootprint decodes a footprint shape stream into an intermediate
// Footprint. Designators: PAD, TRACK, ARC, CIRCLE, RECT, TEXT, HOLE,
// VIA, SVGNODE.
func ParseFootprint(records []string) (*Footprint, error) {
	fp := &Footprint{}

	for _, record := range records {
		designator, fields := splitFields(record)
		switch designator {
		case "PAD":
			fp.Pads = append(fp.Pads, parsePad(fields))
		case "TRACK":
			fp.Tracks = append(fp.Tracks, parseTrack(fields))
		case "ARC":
			arc, ok := parseFootprintArc(fields)
			if ok {
				fp.Arcs = append(fp.Arcs, arc)
			}
		case "CIRCLE":
			fp.Circles = append(fp.Circles, parseFootprintCircle(fields))
		case "RECT":
			fp.Rectangles = append(fp.Rectangles, parseFootprintRectangle(fields))
		case "TEXT":
			fp.Texts = append(fp.Texts, parseText(fields))
		case "HOLE":
			fp.Holes = append(fp.Holes, parseHole(fields))
		case "VIA":
			fp.Vias = append(fp.Vias, parseVia(fields))
		case "SVGNODE":
			fp.SVGNodes = append(fp.SVGNodes, parseSVGNode(fields))
		default:
			// Unknown designator: lossy-tolerant, skip.
		}
	}

	return fp, nil
}

// parsePad decodes the layout
// PAD~shape~x~y~w~h~layer~net~number~hole_radius~points~rotation~id~hole_length.
func parsePad(fields []string) Pad {
	x, _ := strconv.ParseFloat(field(fields, 2), 64)
	y, _ := strconv.ParseFloat(field(fields, 3), 64)
	w, _ := strconv.ParseFloat(field(fields, 4), 64)
	h, _ := strconv.ParseFloat(field(fields, 5), 64)
	layerID, _ := strconv.Atoi(field(fields, 6))
	rotation, _ := strconv.ParseFloat(field(fields, 11), 64)

	pad := Pad{
		Shape:    PadShapeKind(strings.ToUpper(field(fields, 1))),
		X:        x,
		Y:        y,
		Width:    w,
		Height:   h,
		LayerID:  layerID,
		Number:   field(fields, 8),
		Rotation: rotation,
		Points:   parsePoints(field(fields, 10)),
	}

	if r, err := strconv.ParseFloat(field(fields, 9), 64); err == nil && r > 0 {
		pad.HoleRadius = &r
	}
	if l, err := strconv.ParseFloat(field(fields, 13), 64); err == nil && l > 0 {
		pad.HoleLength = &l
	}

	return pad
}

func parseTrack(fields []string) Track {
	strokeWidth, _ := strconv.ParseFloat(field(fields, 1), 64)
	layerID, _ := strconv.Atoi(field(fields, 2))
	return Track{
		StrokeWidth: strokeWidth,
		LayerID:     layerID,
		Points:      field(fields, 3),
	}
}

func parseHole(fields []string) Hole {
	cx, _ := strconv.ParseFloat(field(fields, 1), 64)
	cy, _ := strconv.ParseFloat(field(fields, 2), 64)
	r, _ := strconv.ParseFloat(field(fields, 3), 64)
	return Hole{CX: cx, CY: cy, Radius: r}
}

// parseFootprintCircle decodes CIRCLE~cx~cy~radius~... Unlike the
// symbol stream's C record, the footprint CIRCLE carries no fill flag.
func parseFootprintCircle(fields []string) Circle {
	cx, _ := strconv.ParseFloat(field(fields, 1), 64)
	cy, _ := strconv.ParseFloat(field(fields, 2), 64)
	r, _ := strconv.ParseFloat(field(fields, 3), 64)
	return Circle{CX: cx, CY: cy, Radius: r}
}

// parseFootprintRectangle decodes RECT~id~x~y~width~height~... The
// footprint layout has no rx/ry gap and no fill flag, unlike the
// symbol stream's R record.
func parseFootprintRectangle(fields []string) Rectangle {
	x, _ := strconv.ParseFloat(field(fields, 2), 64)
	y, _ := strconv.ParseFloat(field(fields, 3), 64)
	w, _ := strconv.ParseFloat(field(fields, 4), 64)
	h, _ := strconv.ParseFloat(field(fields, 5), 64)
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// parseFootprintArc decodes ARC~id~x~y~radius~start_angle~end_angle~...
// Footprint arc records carry an extra leading field before the
// coordinates, so every index sits one past the symbol stream's plain
// A~cx~cy~r~start~end form; there is no SVG-path variant here.
func parseFootprintArc(fields []string) (Arc, bool) {
	if len(fields) < 7 {
		return Arc{}, false
	}
	x, _ := strconv.ParseFloat(field(fields, 2), 64)
	y, _ := strconv.ParseFloat(field(fields, 3), 64)
	r, _ := strconv.ParseFloat(field(fields, 4), 64)
	start, _ := strconv.ParseFloat(field(fields, 5), 64)
	end, _ := strconv.ParseFloat(field(fields, 6), 64)
	return Arc{CX: x, CY: y, Radius: r, StartAngle: start, EndAngle: end}, true
}

// parseVia decodes VIA~x~y~diameter~net~radius~id~locked.
func parseVia(fields []string) Via {
	cx, _ := strconv.ParseFloat(field(fields, 1), 64)
	cy, _ := strconv.ParseFloat(field(fields, 2), 64)
	diameter, _ := strconv.ParseFloat(field(fields, 3), 64)
	drillRadius, _ := strconv.ParseFloat(field(fields, 5), 64)
	return Via{CX: cx, CY: cy, Diameter: diameter, Net: field(fields, 4), DrillRadius: drillRadius}
}

// parseSVGNode decodes SVGNODE~layer~path~...; stroke width has no
// dedicated field in the vendor stream and defaults to 1 (px).
func parseSVGNode(fields []string) SVGNode {
	return SVGNode{LayerName: field(fields, 1), Path: field(fields, 2), StrokeWidth: 1}
}

// svgNodeAttrs mirrors the subset of the SVGNODE attrs object this
// decoder cares about.
type svgNodeAttrs struct {
	Attrs struct {
		CEtype string `json:"c_etype"`
		UUID   string `json:"uuid"`
		Title  string `json:"title"`
	} `json:"attrs"`
}

// Extract3DModel scans a footprint shape stream for an SVGNODE entry
// describing the attached 3D model: field 1 is JSON; when
// attrs.c_etype == "outline3D", attrs.uuid/attrs.title identify it.
func Extract3DModel(records []string) *Model3DInfo {
	for _, record := range records {
		if !strings.HasPrefix(record, "SVGNODE~") {
			continue
		}
		_, fields := splitFields(record)
		if len(fields) < 2 {
			continue
		}

		var parsed svgNodeAttrs
		if err := json.Unmarshal([]byte(fields[1]), &parsed); err != nil {
			logging.Debug("svgnode json parse failed", logging.Fields{"err": err.Error()})
			continue
		}
		if parsed.Attrs.CEtype == "outline3D" && parsed.Attrs.UUID != "" && parsed.Attrs.Title != "" {
			return &Model3DInfo{UUID: parsed.Attrs.UUID, Title: parsed.Attrs.Title}
		}
	}
	return nil
}
