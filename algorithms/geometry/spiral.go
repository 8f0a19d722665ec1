package geometry

import (
	"math"
)

// Spiral is an elongated Archimedean spiral: the point at turn
// coordinate m sits m revolutions from the center, at radius m times the
// per-turn spacing, scaled independently per axis to fill a non-square
// viewport. Successive octaves occupy successive turns.
//
// The signed angular index follows the winding: a clockwise spiral winds
// through negative indices, so the Cartesian form is
//
//	x = cx + spacingX*s*sin(2*pi*s)
//	y = cy + spacingY*s*cos(2*pi*s)
//
// with s = -m. Folding the signs shows turn m leaving from 12 o'clock:
// the index sign and the cos term must stay exactly as written or bins
// at octave boundaries visibly misalign.
type Spiral struct {
	Center   Point
	SpacingX float64
	SpacingY float64
	Winding  Winding
}

// Index returns the signed angular index for turn coordinate m
func (s Spiral) Index(m float64) float64 {
	if s.Winding == Clockwise {
		return -m
	}
	return m
}

// At returns the spiral point at turn coordinate m on the baseline,
// where the radial coordinate equals the angular one
func (s Spiral) At(m float64) Point {
	return s.AtRadius(m, m)
}

// AtRadius returns the point at the angle of turn coordinate m with an
// independent radial coordinate r. The data pass keeps each bin's exact
// angle and passes r = m - amplitude, dipping the curve toward the
// center; r may go negative near the middle, mirroring the point across
// the center, which matches the reference rendering.
func (s Spiral) AtRadius(m, r float64) Point {
	index := s.Index(m)
	radial := s.Index(r)
	angle := 2 * math.Pi * index
	return Point{
		X: s.Center.X + s.SpacingX*radial*math.Sin(angle),
		Y: s.Center.Y + s.SpacingY*radial*math.Cos(angle),
	}
}
