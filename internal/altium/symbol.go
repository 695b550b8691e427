// Package altium emits Altium Designer's pipe-delimited SchLib/PcbLib
// record format from the intermediate EasyEDA model, parallel to how
// internal/kicad emits KiCad's two text formats.
package altium

// AdSymbol is a schematic symbol ready for SchLib emission.
type AdSymbol struct {
	LibRef      string
	Description string
	Pins        []AdPin
	Rectangles  []AdRectangle
	Lines       []AdLine
	Texts       []AdText
}

// PinElectrical is Altium's pin electrical type.
type PinElectrical int

const (
	ElecInput PinElectrical = iota
	ElecIO
	ElecOutput
	ElecOpenCollector
	ElecPassive
	ElecHiZ
	ElecOpenEmitter
	ElecPower
)

// ToAltiumCode returns the SchLib |ELECTRICAL= numeric code.
func (e PinElectrical) ToAltiumCode() int {
	return int(e)
}

// PinElectricalFromEasyEDA maps the vendor single-letter electrical
// code to an Altium electrical type. ok is false for every code not in
// the table below ("T", "U", "N", an empty string, or any other letter),
// signalling the caller should fall back to the name heuristic (spec.md §9 Open Question: Altium has no
// direct equivalent of every vendor code, so electrical type is
// resolved vendor-code-first with the name heuristic only as a
// fallback, rather than the original always-name-heuristic approach).
func PinElectricalFromEasyEDA(code string) (PinElectrical, bool) {
	switch code {
	case "I":
		return ElecInput, true
	case "O":
		return ElecOutput, true
	case "B":
		return ElecIO, true
	case "P":
		return ElecPassive, true
	case "W", "w":
		return ElecPower, true
	case "C":
		return ElecOpenCollector, true
	case "E":
		return ElecOpenEmitter, true
	default:
		return ElecPassive, false
	}
}

// PinOrientation is the direction a pin's stub points.
type PinOrientation int

const (
	OrientRight PinOrientation = iota
	OrientUp
	OrientLeft
	OrientDown
)

// ToAltiumCode returns the |PINCONGLOMERATE= orientation bits.
func (o PinOrientation) ToAltiumCode() int {
	return int(o)
}

// OrientationFromRotation maps a quantized 0/90/180/270 rotation to an
// Altium pin orientation.
func OrientationFromRotation(rotation int) PinOrientation {
	switch rotation {
	case 90:
		return OrientUp
	case 180:
		return OrientLeft
	case 270:
		return OrientDown
	default:
		return OrientRight
	}
}

// AdPin is one schematic symbol pin, in mil.
type AdPin struct {
	X, Y        int
	Length      int
	Name        string
	Designator  string
	Electrical  PinElectrical
	Orientation PinOrientation
}

// AdRectangle is the symbol body outline, in mil.
type AdRectangle struct {
	X, Y          int
	Width, Height int
	Color         uint32
	IsSolid       bool
}

// AdLine is a symbol graphic line, in mil.
type AdLine struct {
	StartX, StartY int
	EndX, EndY     int
	Width          int
	Color          uint32
}

// AdText is a symbol label, in mil.
type AdText struct {
	X, Y     int
	Text     string
	Height   int
	Rotation float64
}
