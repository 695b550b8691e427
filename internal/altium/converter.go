package altium

import (
	"fmt"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/convert"
	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
)

// BuildSymbol converts a decoded vendor symbol into the intermediate
// Altium symbol. Altium has no notion of a Y-flip convention the way
// KiCad does (its own sign convention already matches the vendor's),
// so coordinates are only unit-converted, never flipped.
func BuildSymbol(sym *easyeda.Symbol, name string) *AdSymbol {
	ad := &AdSymbol{
		LibRef:      name,
		Description: fmt.Sprintf("%s - converted from EasyEDA", name),
	}

	for _, p := range sym.Pins {
		ad.Pins = append(ad.Pins, convertPin(p))
	}
	for _, r := range sym.Rectangles {
		ad.Rectangles = append(ad.Rectangles, convertRectangle(r))
	}

	if len(ad.Rectangles) == 0 {
		ad.Rectangles = append(ad.Rectangles, defaultBody(ad.Pins))
	}

	return ad
}

// BuildFootprint converts a decoded vendor footprint into the
// intermediate Altium footprint.
func BuildFootprint(fp *easyeda.Footprint, name string) *AdFootprint {
	ad := &AdFootprint{
		Name:        name,
		Description: fmt.Sprintf("%s - converted from EasyEDA", name),
	}

	for _, p := range fp.Pads {
		ad.Pads = append(ad.Pads, convertPad(p))
	}

	ad.Model3D = &Ad3DModel{Filename: name + ".step"}

	return ad
}

func convertPin(p easyeda.Pin) AdPin {
	return AdPin{
		X:           int(convert.GridToMil(p.X)),
		Y:           int(convert.GridToMil(p.Y)),
		Length:      int(convert.GridToMil(p.Length)),
		Name:        p.Name,
		Designator:  p.Number,
		Electrical:  pinElectrical(p),
		Orientation: OrientationFromRotation(quantizeRotation(p.Rotation)),
	}
}

// pinElectrical resolves a pin's Altium electrical type vendor-code
// first, falling back to the pin-name heuristic only when the vendor
// code carries no usable information.
func pinElectrical(p easyeda.Pin) PinElectrical {
	if elec, ok := PinElectricalFromEasyEDA(p.ElectricType); ok {
		return elec
	}
	return guessPinElectrical(p.Name)
}

// guessPinElectrical infers an electrical type from common pin-name
// conventions, used only when the vendor record's own electrical code
// is missing or unspecified.
func guessPinElectrical(name string) PinElectrical {
	upper := strings.ToUpper(name)

	switch {
	case strings.Contains(upper, "VCC"), strings.Contains(upper, "VDD"),
		strings.Contains(upper, "VSS"), strings.Contains(upper, "GND"),
		strings.Contains(upper, "VBAT"), strings.Contains(upper, "POWER"):
		return ElecPower
	case strings.HasPrefix(upper, "IN"), strings.Contains(upper, "_IN"):
		return ElecInput
	case strings.HasPrefix(upper, "OUT"), strings.Contains(upper, "_OUT"):
		return ElecOutput
	case strings.Contains(upper, "IO"), strings.Contains(upper, "GPIO"), strings.HasPrefix(upper, "P"):
		return ElecIO
	default:
		return ElecPassive
	}
}

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

func convertRectangle(r easyeda.Rectangle) AdRectangle {
	return AdRectangle{
		X:      int(convert.GridToMil(r.X)),
		Y:      int(convert.GridToMil(r.Y)),
		Width:  int(convert.GridToMil(r.Width)),
		Height: int(convert.GridToMil(r.Height)),
		Color:  0x000000,
	}
}

// defaultBody synthesizes a symbol body rectangle from the pin
// bounding box when the vendor data carried no rectangle of its own.
func defaultBody(pins []AdPin) AdRectangle {
	if len(pins) == 0 {
		return AdRectangle{X: -100, Y: -200, Width: 200, Height: 400}
	}

	minX, maxX := pins[0].X, pins[0].X
	minY, maxY := pins[0].Y, pins[0].Y
	for _, p := range pins[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	const padding = 50
	return AdRectangle{
		X: minX - padding, Y: minY - padding,
		Width:  (maxX - minX) + padding*2,
		Height: (maxY - minY) + padding*2,
	}
}

func convertPad(p easyeda.Pad) AdPad {
	throughHole := p.HoleRadius != nil && *p.HoleRadius > 0
	holeSize := 0.0
	if throughHole {
		holeSize = convert.PxToMil(*p.HoleRadius * 2)
	}

	return AdPad{
		X:        convert.PxToMil(p.X),
		Y:        convert.PxToMil(p.Y),
		Width:    convert.PxToMil(p.Width),
		Height:   convert.PxToMil(p.Height),
		HoleSize: holeSize,
		Shape:    PadShapeFromEasyEDA(string(p.Shape)),
		Name:     p.Number,
		Layer:    PadLayerFromVendor(p.LayerID, throughHole),
		Rotation: p.Rotation,
	}
}
