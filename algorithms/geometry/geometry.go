package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D screen-space coordinate. Screen convention throughout:
// x grows right, y grows down, so a clockwise revolution from 12 o'clock
// passes 3, 6, then 9 o'clock.
type Point = r2.Vec

// Dist returns the Euclidean distance between two points
func Dist(p, q Point) float64 {
	return r2.Norm(r2.Sub(p, q))
}

// Winding names the direction of angular travel. The original curve
// construction buried this in the sign of the spiral index and in a
// mid-path direction reversal; naming it keeps the seam math readable.
type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Fraction maps a non-negative sweep fraction onto the signed revolution
// coordinate for travel in this winding. The revolution parametrization
// is clockwise-positive from 12 o'clock (see Ellipse.At), so
// counter-clockwise travel sweeps through negative fractions.
func (w Winding) Fraction(f float64) float64 {
	if w == CounterClockwise {
		return -f
	}
	return f
}
