// Package convert holds the pure coordinate and unit transformations
// shared by every emitter: pixel/mil/mm conversion, the vendor-to-KiCad
// Y-flip, degree/radian conversion, bounding-box computation, and the
// W3C SVG elliptical-arc endpoint-to-center parameterization.
package convert

import "math"

// PxToMil converts a vendor pixel coordinate to mils (1 px = 10 mil).
func PxToMil(px float64) float64 {
	return math.Round(10 * px)
}

// PxToMm converts a vendor pixel coordinate to millimeters (1 px = 0.254 mm).
func PxToMm(px float64) float64 {
	return 10 * px * 0.0254
}

// GridToMil converts a vendor schematic grid-unit coordinate to mils (1
// grid unit = 0.1 inch = 100 mil). This is the unit Altium schematic
// symbol geometry (pins, body rectangles) is expressed in, distinct
// from the pixel unit PxToMil/PxToMm use for PCB geometry.
func GridToMil(units float64) float64 {
	return units * 100
}

// FlipY negates a Y coordinate, converting between the vendor's top-left
// origin and KiCad's bottom-left origin for symbol geometry. Footprints
// never flip Y.
func FlipY(y float64) float64 {
	return -y
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDeg folds an angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// NormalizeToBBox expands b to include the point (x, y).
func NormalizeToBBox(b BBox, x, y float64) BBox {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
	return b
}

// EmptyBBox returns a bbox primed so the first NormalizeToBBox call sets
// both bounds to the first point.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// ArcCenter is the result of endpoint-to-center elliptical arc
// parameterization: the ellipse center, the (possibly radius-corrected)
// radii, and the start angle / sweep extent in degrees.
type ArcCenter struct {
	CX, CY         float64
	RX, RY         float64
	StartAngleDeg  float64
	SweepExtentDeg float64
}

// ArcEndpointToCenter implements the W3C SVG elliptical-arc endpoint-to-
// center parameterization: transform the endpoints into the rotated
// frame, correct out-of-range radii by uniform scaling, compute the
// center, then derive the start angle and sweep extent, finally
// normalizing both into [0, 360).
func ArcEndpointToCenter(x1, y1, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool, x2, y2 float64) (ArcCenter, bool) {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return ArcCenter{}, false
	}
	if x1 == x2 && y1 == y2 {
		return ArcCenter{}, false
	}

	phi := DegToRad(xAxisRotationDeg)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (x1 - x2) / 2
	dy2 := (y1 - y2) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = sign * math.Sqrt(num/den)
	}

	cxp := coef * (rx * y1p / ry)
	cyp := coef * (-ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		if lenProd == 0 {
			return 0
		}
		cosAngle := dot / lenProd
		if cosAngle > 1 {
			cosAngle = 1
		} else if cosAngle < -1 {
			cosAngle = -1
		}
		a := math.Acos(cosAngle)
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	startAngle := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	sweepExtent := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)

	if !sweep && sweepExtent > 0 {
		sweepExtent -= 2 * math.Pi
	} else if sweep && sweepExtent < 0 {
		sweepExtent += 2 * math.Pi
	}

	return ArcCenter{
		CX: cx, CY: cy,
		RX: rx, RY: ry,
		StartAngleDeg:  NormalizeDeg(RadToDeg(startAngle)),
		SweepExtentDeg: RadToDeg(sweepExtent),
	}, true
}
