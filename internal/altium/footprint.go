package altium

// AdFootprint is a PCB footprint ready for PcbLib emission.
type AdFootprint struct {
	Name        string
	Description string
	Pads        []AdPad
	Lines       []FpLine
	Arcs        []AdArc
	Texts       []FpText
	Model3D     *Ad3DModel
}

// PadShape is Altium's pad outline shape.
type PadShape int

const (
	ShapeRound PadShape = iota
	ShapeRectangle
	ShapeOctagonal
	ShapeRoundRect
)

// ToAltiumCode returns the |SHAPE= numeric code.
func (s PadShape) ToAltiumCode() int {
	return int(s)
}

// PadShapeFromEasyEDA maps the vendor pad-shape token to an Altium
// shape, defaulting to round for anything else (polygon/custom pads
// have no direct Altium analogue in this pipeline).
func PadShapeFromEasyEDA(shape string) PadShape {
	switch shape {
	case "RECT":
		return ShapeRectangle
	case "OCTAGON":
		return ShapeOctagonal
	case "ROUNDRECT":
		return ShapeRoundRect
	default:
		return ShapeRound
	}
}

// PadLayer is Altium's pad layer span.
type PadLayer int

const (
	LayerTop PadLayer = iota
	LayerBottom
	LayerMultiLayer
)

// ToAltiumName returns the |LAYER= token.
func (l PadLayer) ToAltiumName() string {
	switch l {
	case LayerBottom:
		return "BOTTOM"
	case LayerMultiLayer:
		return "MULTILAYER"
	default:
		return "TOP"
	}
}

// PadLayerFromVendor picks the pad's layer span: a through-hole pad
// always spans every layer, an SMD pad is on whichever side its vendor
// layer id names (2 = bottom, anything else = top).
func PadLayerFromVendor(layerID int, throughHole bool) PadLayer {
	if throughHole {
		return LayerMultiLayer
	}
	if layerID == 2 {
		return LayerBottom
	}
	return LayerTop
}

// AdPad is one footprint land, in mil.
type AdPad struct {
	X, Y          float64
	Width, Height float64
	HoleSize      float64
	Shape         PadShape
	Name          string
	Layer         PadLayer
	Rotation      float64
}

// FpLine is a footprint graphic line, in mil.
type FpLine struct {
	StartX, StartY float64
	EndX, EndY     float64
	Width          float64
	Layer          string
}

// AdArc is a footprint arc given as center/radius/angle, in mil.
type AdArc struct {
	CenterX, CenterY float64
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	Width            float64
	Layer            string
}

// FpText is a footprint text annotation, in mil.
type FpText struct {
	X, Y     float64
	Text     string
	Height   float64
	Width    float64
	Rotation float64
	Layer    string
}

// Ad3DModel references the STEP model attached to a footprint.
type Ad3DModel struct {
	Filename                          string
	RotationX, RotationY, RotationZ  float64
	OffsetZ                          float64
}

// MapLayer maps a vendor footprint layer id to an Altium layer name,
// paralleling internal/kicad.MapLayer. original_source never builds
// this table (its graphics layers are passed through as opaque
// strings); it is assembled here from Altium's standard layer stack
// so the footprint's silkscreen/fab graphics land on a sensible layer
// instead of a hardcoded single one.
func MapLayer(layerID int) string {
	switch layerID {
	case 1:
		return "TopLayer"
	case 2:
		return "BottomLayer"
	case 3:
		return "TopOverlay"
	case 4:
		return "BottomOverlay"
	case 5:
		return "TopPaste"
	case 6:
		return "BottomPaste"
	case 7:
		return "TopSolder"
	case 8:
		return "BottomSolder"
	case 10, 11:
		return "BoardOutline"
	case 12:
		return "Mechanical1"
	case 13:
		return "TopAssembly"
	case 14:
		return "BottomAssembly"
	case 15:
		return "Mechanical2"
	case 101:
		return "TopAssembly"
	default:
		return "TopOverlay"
	}
}
