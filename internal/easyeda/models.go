// Package easyeda decodes the vendor shape-stream format into the
// intermediate component model consumed by the KiCad and Altium
// emitters.
package easyeda

// ComponentData is a fetched component record: identifier, title, the two
// shape streams (symbol and footprint), their independent bounding-box
// origins, the optional 3D-model descriptor, and flat metadata.
type ComponentData struct {
	LcscID           string
	Title            string
	DataStr          []string // symbol shape stream
	BBoxX, BBoxY     float64
	PackageDetail    []string // footprint shape stream
	PackageBBoxX     float64
	PackageBBoxY     float64
	Model3D          *Model3DInfo
	Manufacturer     string
	Datasheet        string
	JlcID            string
}

// Model3DInfo identifies the 3D model attached to a component.
type Model3DInfo struct {
	UUID  string
	Title string
}

// Symbol is the decoded intermediate schematic symbol.
type Symbol struct {
	Name      string
	Prefix    string // reference designator prefix, default "U"
	Pins      []Pin
	Rectangles []Rectangle
	Circles    []Circle
	Ellipses   []Ellipse
	Arcs       []Arc
	Polylines  []Polyline
	Polygons   []Polyline
	Paths      []Path
	Texts      []Text
}

// Pin is one symbol pin.
type Pin struct {
	Number       string
	Name         string
	X, Y         float64
	Rotation     float64 // quadrant integer 0/90/180/270
	Length       float64
	ElectricType string // single-letter vendor code
	Dot          bool   // inverted
	Clock        bool
	NameVisible  bool
	NumberVisible bool
}

// Rectangle is an anchored symbol or footprint rectangle.
type Rectangle struct {
	X, Y, Width, Height float64
	StrokeWidth         float64
	Fill                bool
}

// Circle is a center/radius primitive.
type Circle struct {
	CX, CY, Radius float64
	StrokeWidth    float64
	Fill           bool
}

// Ellipse is a center/two-radii primitive.
type Ellipse struct {
	CX, CY, RX, RY float64
	StrokeWidth    float64
	Fill           bool
}

// Arc is center, radius, and start/end angle in degrees within [0,360).
type Arc struct {
	CX, CY, Radius  float64
	StartAngle      float64
	EndAngle        float64
	StrokeWidth     float64
}

// Polyline is an ordered point list with stroke and optional fill.
type Polyline struct {
	Points      [][2]float64
	StrokeWidth float64
	Fill        bool
}

// Path is an SVG-subset path string plus stroke and fill.
type Path struct {
	D           string
	StrokeWidth float64
	Fill        bool
}

// Text is a positioned label.
type Text struct {
	X, Y     float64
	Rotation float64
	Content  string
	FontSize float64
}

// Footprint is the decoded intermediate PCB footprint.
type Footprint struct {
	Name       string
	Pads       []Pad
	Tracks     []Track
	Arcs       []Arc
	Circles    []Circle
	Rectangles []Rectangle
	Texts      []Text
	Holes      []Hole
	Vias       []Via
	SVGNodes   []SVGNode
}

// PadShapeKind is the vendor pad-shape token, pre-mapping.
type PadShapeKind string

const (
	PadShapeEllipse PadShapeKind = "ELLIPSE"
	PadShapeRound   PadShapeKind = "ROUND"
	PadShapeRect    PadShapeKind = "RECT"
	PadShapeOval    PadShapeKind = "OVAL"
	PadShapePolygon PadShapeKind = "POLYGON"
)

// Pad is one footprint land.
type Pad struct {
	Number      string
	Shape       PadShapeKind
	X, Y        float64
	Width       float64
	Height      float64
	Rotation    float64
	HoleRadius  *float64 // >0 => through-hole
	HoleLength  *float64 // >0 => oval drill secondary axis
	Points      [][2]float64
	LayerID     int
}

// Track is a polyline trace, carried as a raw space-separated point
// string the same way the vendor stream encodes it.
type Track struct {
	Points      string
	StrokeWidth float64
	LayerID     int
}

// Hole is a plain (unpadded) drilled hole.
type Hole struct {
	CX, CY, Radius float64
}

// Via is a plated via.
type Via struct {
	CX, CY      float64
	Diameter    float64
	Net         string
	DrillRadius float64
}

// SVGNode is a raw SVG path fragment placed on a named layer.
type SVGNode struct {
	Path        string
	StrokeWidth float64
	LayerName   string
}
