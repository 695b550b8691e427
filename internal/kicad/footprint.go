package kicad

// KiFootprint is the intermediate PCB footprint ready for `.kicad_mod`
// emission.
type KiFootprint struct {
	Name    string
	Pads    []KiPad
	Tracks  []KiTrack
	Circles []KiFpCircle
	Arcs    []KiFpArc
	Texts   []KiText
	Lines   []KiLine
	Model3D *Ki3dModel
}

// PadType is the KiCad pad mount type.
type PadType int

const (
	PadSMD PadType = iota
	PadThroughHole
	PadNPThroughHole
	PadConnect
)

// ToKiCad returns the S-expression lexeme for this pad type.
func (p PadType) ToKiCad() string {
	switch p {
	case PadThroughHole:
		return "thru_hole"
	case PadNPThroughHole:
		return "np_thru_hole"
	case PadConnect:
		return "connect"
	default:
		return "smd"
	}
}

// PadShape is the KiCad pad outline shape.
type PadShape int

const (
	ShapeCircle PadShape = iota
	ShapeRect
	ShapeOval
	ShapeTrapezoid
	ShapeRoundRect
	ShapeCustom
)

// PadShapeFromEasyEDA maps the vendor pad-shape token to a PadShape.
func PadShapeFromEasyEDA(shape string) PadShape {
	switch shape {
	case "ELLIPSE", "ROUND":
		return ShapeCircle
	case "RECT":
		return ShapeRect
	case "OVAL":
		return ShapeOval
	case "POLYGON":
		return ShapeCustom
	default:
		return ShapeRect
	}
}

// ToKiCad returns the S-expression lexeme for this pad shape.
func (p PadShape) ToKiCad() string {
	switch p {
	case ShapeCircle:
		return "circle"
	case ShapeOval:
		return "oval"
	case ShapeTrapezoid:
		return "trapezoid"
	case ShapeRoundRect:
		return "roundrect"
	case ShapeCustom:
		return "custom"
	default:
		return "rect"
	}
}

// KiPad is one footprint land.
type KiPad struct {
	Number   string
	PadType  PadType
	Shape    PadShape
	PosX     float64
	PosY     float64
	SizeX    float64
	SizeY    float64
	Rotation float64
	Layers   []string
	Drill    *Drill
	Polygon  string // pre-rendered S-expression fragment for custom pads
}

// Drill is a pad's hole: circular when Width is nil, oval otherwise.
type Drill struct {
	Diameter float64
	Width    *float64
	OffsetX  float64
	OffsetY  float64
}

// KiTrack is a straight copper segment.
type KiTrack struct {
	StartX, StartY float64
	EndX, EndY     float64
	Width          float64
	Layer          string
}

// KiFpCircle is a footprint circle (silkscreen, fab, etc).
type KiFpCircle struct {
	CenterX, CenterY float64
	EndX, EndY       float64
	Width            float64
	Layer            string
	Fill             bool
}

// KiFpArc is a footprint arc given as start/mid/end points.
type KiFpArc struct {
	StartX, StartY float64
	MidX, MidY     float64
	EndX, EndY     float64
	Width          float64
	Layer          string
}

// KiLine is a straight footprint line.
type KiLine struct {
	StartX, StartY float64
	EndX, EndY     float64
	Width          float64
	Layer          string
}

// KiText is a footprint text annotation.
type KiText struct {
	Text      string
	PosX, PosY float64
	Rotation  float64
	Layer     string
	Size      float64
	Thickness float64
}

// Ki3dModel references the VRML/STEP 3D model attached to a footprint.
type Ki3dModel struct {
	Path   string
	Offset [3]float64
	Scale  [3]float64
	Rotate [3]float64
}
