// Package kicad emits KiCad v5 legacy and v6 S-expression symbol and
// footprint files from the intermediate EasyEDA model.
package kicad

// PinType is the electrical type of a symbol pin.
type PinType int

const (
	PinInput PinType = iota
	PinOutput
	PinBidirectional
	PinTriState
	PinPassive
	PinUnspecified
	PinPowerIn
	PinPowerOut
	PinOpenCollector
	PinOpenEmitter
	PinNoConnect
)

// PinTypeFromEasyEDA maps a vendor single-letter electrical code to a
// PinType, defaulting to Unspecified for unknown codes.
func PinTypeFromEasyEDA(electricType string) PinType {
	switch electricType {
	case "I":
		return PinInput
	case "O":
		return PinOutput
	case "B":
		return PinBidirectional
	case "T":
		return PinTriState
	case "P":
		return PinPassive
	case "U":
		return PinUnspecified
	case "W":
		return PinPowerIn
	case "w":
		return PinPowerOut
	case "C":
		return PinOpenCollector
	case "E":
		return PinOpenEmitter
	case "N":
		return PinNoConnect
	default:
		return PinUnspecified
	}
}

// ToKiCadV6 returns the v6 S-expression lexeme for this pin type.
func (p PinType) ToKiCadV6() string {
	switch p {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	case PinBidirectional:
		return "bidirectional"
	case PinTriState:
		return "tri_state"
	case PinPassive:
		return "passive"
	case PinPowerIn:
		return "power_in"
	case PinPowerOut:
		return "power_out"
	case PinOpenCollector:
		return "open_collector"
	case PinOpenEmitter:
		return "open_emitter"
	case PinNoConnect:
		return "no_connect"
	default:
		return "unspecified"
	}
}

// ToKiCadV5 returns the v5 legacy single-letter electrical code.
func (p PinType) ToKiCadV5() string {
	switch p {
	case PinInput:
		return "I"
	case PinOutput:
		return "O"
	case PinBidirectional:
		return "B"
	case PinTriState:
		return "T"
	case PinPassive:
		return "P"
	case PinPowerIn:
		return "W"
	case PinPowerOut:
		return "w"
	case PinOpenCollector:
		return "C"
	case PinOpenEmitter:
		return "E"
	case PinNoConnect:
		return "N"
	default:
		return "U"
	}
}

// PinStyle is the graphic style drawn at the pin's symbol-side end.
type PinStyle int

const (
	StyleLine PinStyle = iota
	StyleInverted
	StyleClock
	StyleInvertedClock
	StyleInputLow
	StyleClockLow
	StyleOutputLow
	StyleEdgeClockHigh
	StyleNonLogic
)

// ToKiCadV6 returns the v6 S-expression lexeme for this pin style.
func (s PinStyle) ToKiCadV6() string {
	switch s {
	case StyleInverted:
		return "inverted"
	case StyleClock:
		return "clock"
	case StyleInvertedClock:
		return "inverted_clock"
	case StyleInputLow:
		return "input_low"
	case StyleClockLow:
		return "clock_low"
	case StyleOutputLow:
		return "output_low"
	case StyleEdgeClockHigh:
		return "edge_clock_high"
	case StyleNonLogic:
		return "non_logic"
	default:
		return "line"
	}
}

// ToKiCadV5 returns the v5 legacy pin-shape suffix letter(s).
func (s PinStyle) ToKiCadV5() string {
	switch s {
	case StyleInverted:
		return "I"
	case StyleClock:
		return "C"
	case StyleInvertedClock:
		return "IC"
	case StyleInputLow:
		return "L"
	case StyleClockLow:
		return "CL"
	case StyleOutputLow:
		return "V"
	case StyleEdgeClockHigh:
		return "F"
	case StyleNonLogic:
		return "X"
	default:
		return ""
	}
}

// KiSymbol is the intermediate schematic symbol ready for v5/v6 emission.
type KiSymbol struct {
	Name         string
	Reference    string
	Value        string
	Footprint    string
	Datasheet    string
	Manufacturer string
	LcscID       string
	JlcID        string
	Pins         []KiPin
	Rectangles   []KiRectangle
	Circles      []KiCircle
	Arcs         []KiArc
	Polylines    []KiPolyline
}

// KiPin is one symbol pin.
type KiPin struct {
	Number   string
	Name     string
	PinType  PinType
	Style    PinStyle
	PosX     float64
	PosY     float64
	Rotation int // 0/90/180/270
	Length   float64
}

// KiRectangle is an axis-aligned rectangle in symbol space.
type KiRectangle struct {
	X1, Y1, X2, Y2 float64
	StrokeWidth    float64
	Fill           bool
}

// KiCircle is a center/radius primitive in symbol space.
type KiCircle struct {
	CX, CY, Radius float64
	StrokeWidth    float64
	Fill           bool
}

// KiArc is a three-point (start/mid/end) arc in symbol space.
type KiArc struct {
	StartX, StartY float64
	MidX, MidY     float64
	EndX, EndY     float64
	StrokeWidth    float64
}

// KiPolyline is an ordered point list in symbol space.
type KiPolyline struct {
	Points      [][2]float64
	StrokeWidth float64
	Fill        bool
}
