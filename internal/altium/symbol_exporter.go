package altium

import (
	"fmt"
	"strings"
)

// SymbolExporter renders an AdSymbol to Altium's pipe-delimited SchLib
// text format.
type SymbolExporter struct{}

// NewSymbolExporter builds a SchLib exporter.
func NewSymbolExporter() *SymbolExporter {
	return &SymbolExporter{}
}

// Export renders symbol as a complete .SchLib file body.
func (e *SymbolExporter) Export(symbol *AdSymbol) (string, error) {
	var b strings.Builder

	writeHeader(&b)
	writeComponent(&b, symbol)
	writeRectangles(&b, symbol.Rectangles)
	writeLines(&b, symbol.Lines)
	writeTexts(&b, symbol.Texts)
	writePins(&b, symbol.Pins)

	return b.String(), nil
}

func writeHeader(b *strings.Builder) {
	b.WriteString("|HEADER=Protel for Windows - Schematic Library Editor Binary File Version 5.0\n")
	b.WriteString("|WEIGHT=748\n")
	b.WriteString("|MINORVERSION=2\n")
	b.WriteString("|USEMBCS=T\n")
	b.WriteString("\n")
}

func writeComponent(b *strings.Builder, symbol *AdSymbol) {
	b.WriteString("|RECORD=1\n")
	fmt.Fprintf(b, "|LIBREF=%s\n", EscapeString(symbol.LibRef))
	fmt.Fprintf(b, "|COMPONENTDESCRIPTION=%s\n", EscapeString(symbol.Description))
	b.WriteString("|PARTCOUNT=1\n")
	b.WriteString("|DISPLAYMODECOUNT=1\n")
	b.WriteString("|INDEXINSHEET=-1\n")
	b.WriteString("|OWNERPARTID=-1\n")
	b.WriteString("|LOCATION.X=0\n")
	b.WriteString("|LOCATION.Y=0\n")
	b.WriteString("|LIBRARYPATH=*\n")
	b.WriteString("|SOURCELIBRARYNAME=*\n")
	b.WriteString("|TARGETFILENAME=*\n")
	b.WriteString("\n")
}

func writeRectangles(b *strings.Builder, rectangles []AdRectangle) {
	for _, rect := range rectangles {
		b.WriteString("|RECORD=2\n")
		b.WriteString("|OWNERINDEX=1\n")
		b.WriteString("|OWNERPARTID=-1\n")
		fmt.Fprintf(b, "|LOCATION.X=%d\n", rect.X)
		fmt.Fprintf(b, "|LOCATION.Y=%d\n", rect.Y)
		fmt.Fprintf(b, "|CORNER.X=%d\n", rect.X+rect.Width)
		fmt.Fprintf(b, "|CORNER.Y=%d\n", rect.Y+rect.Height)
		fmt.Fprintf(b, "|COLOR=%d\n", rect.Color)
		b.WriteString("|AREACOLOR=16777215\n")
		fmt.Fprintf(b, "|ISSOLID=%s\n", boolFlag(rect.IsSolid))
		b.WriteString("|LINEWIDTH=1\n")
		b.WriteString("\n")
	}
}

func writeLines(b *strings.Builder, lines []AdLine) {
	for _, line := range lines {
		b.WriteString("|RECORD=13\n")
		b.WriteString("|OWNERINDEX=1\n")
		b.WriteString("|OWNERPARTID=-1\n")
		fmt.Fprintf(b, "|LINEWIDTH=%d\n", line.Width)
		fmt.Fprintf(b, "|COLOR=%d\n", line.Color)
		b.WriteString("|LOCATIONCOUNT=2\n")
		fmt.Fprintf(b, "|X1=%d\n", line.StartX)
		fmt.Fprintf(b, "|Y1=%d\n", line.StartY)
		fmt.Fprintf(b, "|X2=%d\n", line.EndX)
		fmt.Fprintf(b, "|Y2=%d\n", line.EndY)
		b.WriteString("\n")
	}
}

func writeTexts(b *strings.Builder, texts []AdText) {
	for _, text := range texts {
		b.WriteString("|RECORD=4\n")
		b.WriteString("|OWNERINDEX=1\n")
		b.WriteString("|OWNERPARTID=-1\n")
		fmt.Fprintf(b, "|LOCATION.X=%d\n", text.X)
		fmt.Fprintf(b, "|LOCATION.Y=%d\n", text.Y)
		fmt.Fprintf(b, "|TEXT=%s\n", EscapeString(text.Text))
		b.WriteString("|FONTID=1\n")
		b.WriteString("|COLOR=0\n")
		fmt.Fprintf(b, "|ORIENTATION=%d\n", int(text.Rotation/90))
		b.WriteString("\n")
	}
}

func writePins(b *strings.Builder, pins []AdPin) {
	for _, pin := range pins {
		b.WriteString("|RECORD=41\n")
		b.WriteString("|OWNERINDEX=1\n")
		b.WriteString("|OWNERPARTID=-1\n")
		fmt.Fprintf(b, "|LOCATION.X=%d\n", pin.X)
		fmt.Fprintf(b, "|LOCATION.Y=%d\n", pin.Y)
		fmt.Fprintf(b, "|PINLENGTH=%d\n", pin.Length)
		fmt.Fprintf(b, "|ELECTRICAL=%d\n", pin.Electrical.ToAltiumCode())
		fmt.Fprintf(b, "|PINCONGLOMERATE=%d\n", pin.Orientation.ToAltiumCode())
		fmt.Fprintf(b, "|NAME=%s\n", EscapeString(pin.Name))
		fmt.Fprintf(b, "|DESIGNATOR=%s\n", EscapeString(pin.Designator))
		b.WriteString("|SWAPIDPIN=\n")
		b.WriteString("|SWAPIDPART=\n")
		b.WriteString("|COLOR=0\n")
		b.WriteString("|PINNAME_POSITIONCONGLOMERATE=11\n")
		b.WriteString("\n")
	}
}

func boolFlag(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

// EscapeString escapes the pipe delimiter and strips newlines, since
// both the SchLib and PcbLib formats are one-record-per-line.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
