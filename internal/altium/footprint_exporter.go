package altium

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FootprintExporter renders an AdFootprint to Altium's pipe-delimited
// PcbLib text format.
type FootprintExporter struct{}

// NewFootprintExporter builds a PcbLib exporter.
func NewFootprintExporter() *FootprintExporter {
	return &FootprintExporter{}
}

// Export renders footprint as a complete .PcbLib file body.
func (e *FootprintExporter) Export(footprint *AdFootprint) (string, error) {
	var b strings.Builder

	writeFootprintHeader(&b)
	writeFootprintDef(&b, footprint)
	writePads(&b, footprint.Pads)
	writeFootprintLines(&b, footprint.Lines)
	writeArcs(&b, footprint.Arcs)
	writeFootprintTexts(&b, footprint.Texts)
	if footprint.Model3D != nil {
		write3DModel(&b, *footprint.Model3D)
	}

	return b.String(), nil
}

func writeFootprintHeader(b *strings.Builder) {
	b.WriteString("|HEADER=Protel for Windows - PCB Library Binary File Version 5.0\n")
	b.WriteString("|WEIGHT=748\n")
	b.WriteString("\n")
}

func writeFootprintDef(b *strings.Builder, footprint *AdFootprint) {
	b.WriteString("|RECORD=2\n")
	fmt.Fprintf(b, "|NAME=%s\n", EscapeString(footprint.Name))
	fmt.Fprintf(b, "|DESCRIPTION=%s\n", EscapeString(footprint.Description))
	b.WriteString("\n")
}

func writePads(b *strings.Builder, pads []AdPad) {
	for _, pad := range pads {
		b.WriteString("|RECORD=3\n")
		b.WriteString("|OWNERINDEX=0\n")
		fmt.Fprintf(b, "|LAYER=%s\n", pad.Layer.ToAltiumName())
		fmt.Fprintf(b, "|X=%sMIL\n", formatCoord(pad.X))
		fmt.Fprintf(b, "|Y=%sMIL\n", formatCoord(pad.Y))
		fmt.Fprintf(b, "|XSIZE=%sMIL\n", formatCoord(pad.Width))
		fmt.Fprintf(b, "|YSIZE=%sMIL\n", formatCoord(pad.Height))
		fmt.Fprintf(b, "|HOLESIZE=%sMIL\n", formatCoord(pad.HoleSize))
		fmt.Fprintf(b, "|SHAPE=%d\n", pad.Shape.ToAltiumCode())
		b.WriteString("|PADMODE=0\n")
		fmt.Fprintf(b, "|PLATED=%s\n", boolFlag(pad.HoleSize > 0))
		fmt.Fprintf(b, "|NAME=%s\n", EscapeString(pad.Name))
		if pad.Rotation != 0 {
			fmt.Fprintf(b, "|ROTATION=%s\n", formatCoord(pad.Rotation))
		}
		b.WriteString("\n")
	}
}

func writeFootprintLines(b *strings.Builder, lines []FpLine) {
	for _, line := range lines {
		b.WriteString("|RECORD=6\n")
		fmt.Fprintf(b, "|LAYER=%s\n", line.Layer)
		fmt.Fprintf(b, "|START.X=%sMIL\n", formatCoord(line.StartX))
		fmt.Fprintf(b, "|START.Y=%sMIL\n", formatCoord(line.StartY))
		fmt.Fprintf(b, "|END.X=%sMIL\n", formatCoord(line.EndX))
		fmt.Fprintf(b, "|END.Y=%sMIL\n", formatCoord(line.EndY))
		fmt.Fprintf(b, "|WIDTH=%sMIL\n", formatCoord(line.Width))
		b.WriteString("\n")
	}
}

func writeArcs(b *strings.Builder, arcs []AdArc) {
	for _, arc := range arcs {
		b.WriteString("|RECORD=7\n")
		fmt.Fprintf(b, "|LAYER=%s\n", arc.Layer)
		fmt.Fprintf(b, "|LOCATION.X=%sMIL\n", formatCoord(arc.CenterX))
		fmt.Fprintf(b, "|LOCATION.Y=%sMIL\n", formatCoord(arc.CenterY))
		fmt.Fprintf(b, "|RADIUS=%sMIL\n", formatCoord(arc.Radius))
		fmt.Fprintf(b, "|STARTANGLE=%s\n", formatCoord(arc.StartAngle))
		fmt.Fprintf(b, "|ENDANGLE=%s\n", formatCoord(arc.EndAngle))
		fmt.Fprintf(b, "|WIDTH=%sMIL\n", formatCoord(arc.Width))
		b.WriteString("\n")
	}
}

func writeFootprintTexts(b *strings.Builder, texts []FpText) {
	for _, text := range texts {
		b.WriteString("|RECORD=8\n")
		fmt.Fprintf(b, "|LAYER=%s\n", text.Layer)
		fmt.Fprintf(b, "|X=%sMIL\n", formatCoord(text.X))
		fmt.Fprintf(b, "|Y=%sMIL\n", formatCoord(text.Y))
		fmt.Fprintf(b, "|TEXT=%s\n", EscapeString(text.Text))
		fmt.Fprintf(b, "|HEIGHT=%sMIL\n", formatCoord(text.Height))
		fmt.Fprintf(b, "|WIDTH=%sMIL\n", formatCoord(text.Width))
		fmt.Fprintf(b, "|ROTATION=%s\n", formatCoord(text.Rotation))
		b.WriteString("|FONTID=1\n")
		b.WriteString("\n")
	}
}

func write3DModel(b *strings.Builder, model Ad3DModel) {
	modelID := uuid.New()

	b.WriteString("|RECORD=16\n")
	b.WriteString("|OWNERINDEX=0\n")
	fmt.Fprintf(b, "|MODELNAME=%s\n", EscapeString(model.Filename))
	fmt.Fprintf(b, "|MODELID={%s}\n", modelID.String())
	b.WriteString("|MODELDESCRIPTION=\n")
	fmt.Fprintf(b, "|ROTATION.X=%s\n", formatCoord(model.RotationX))
	fmt.Fprintf(b, "|ROTATION.Y=%s\n", formatCoord(model.RotationY))
	fmt.Fprintf(b, "|ROTATION.Z=%s\n", formatCoord(model.RotationZ))
	fmt.Fprintf(b, "|Z=%sMIL\n", formatCoord(model.OffsetZ))
	b.WriteString("|CHECKSUM=\n")
	b.WriteString("|EMBEDSTEP=F\n")
	b.WriteString("\n")
}

// formatCoord renders a coordinate without a trailing ".0000" for
// whole numbers, matching Altium's own ASCII PcbLib rendering.
func formatCoord(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	s := strconv.FormatFloat(value, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
