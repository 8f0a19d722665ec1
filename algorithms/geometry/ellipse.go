package geometry

import (
	"math"
)

// Ellipse is an axis-aligned ellipse parametrized by the clockwise
// revolution fraction u from 12 o'clock: u = 0 is the top of the
// ellipse, u = 0.25 the rightmost point. Negative u travels
// counter-clockwise; u wraps naturally through full revolutions.
type Ellipse struct {
	Center  Point
	RadiusX float64
	RadiusY float64
}

// At returns the boundary point at revolution fraction u
func (e Ellipse) At(u float64) Point {
	angle := 2 * math.Pi * u
	return Point{
		X: e.Center.X + e.RadiusX*math.Sin(angle),
		Y: e.Center.Y - e.RadiusY*math.Cos(angle),
	}
}

// AtRadius returns the point at fraction u with both radii scaled by
// factor; the curve generators use it to bulge the baseline outward by
// spectral magnitude
func (e Ellipse) AtRadius(u, factor float64) Point {
	angle := 2 * math.Pi * u
	return Point{
		X: e.Center.X + factor*e.RadiusX*math.Sin(angle),
		Y: e.Center.Y - factor*e.RadiusY*math.Cos(angle),
	}
}
