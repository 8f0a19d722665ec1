package curves

import (
	"fmt"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/geometry"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/octave"
)

// EllipseGenerator renders one closed polygon per octave. Octave o sits
// on a baseline ellipse with radii scaled by (o+1)/(octaves+1); the
// polygon walks that baseline counter-clockwise back to 12 o'clock,
// reverses at the seam, and walks the octave's bins clockwise with the
// radius pushed outward by one octave-spacing times the bin magnitude.
// A full-scale bin therefore reaches the next octave's baseline.
//
// All buffers are allocated at construction; Generate refills them, so
// the returned curves are valid until the next call.
type EllipseGenerator struct {
	topo *octave.Topology
	snap *common.Snapshot

	backing []geometry.Point
	curves  []OctaveCurve
}

// NewEllipseGenerator creates a generator for the given topology
func NewEllipseGenerator(topo *octave.Topology) (*EllipseGenerator, error) {
	if topo == nil {
		return nil, fmt.Errorf("curves: ellipse generator needs a topology")
	}

	octaves := topo.OctaveCount()
	perCurve := 2*topo.BinsPerOctave() + 2

	g := &EllipseGenerator{
		topo:    topo,
		snap:    common.NewSnapshot(topo.TotalBins()),
		backing: make([]geometry.Point, octaves*perCurve),
		curves:  make([]OctaveCurve, octaves),
	}
	for o := 0; o < octaves; o++ {
		g.curves[o] = OctaveCurve{
			Octave: o,
			Points: g.backing[o*perCurve : (o+1)*perCurve],
		}
	}
	return g, nil
}

// PointsPerCurve returns the fixed polygon length, two passes plus the
// closing point
func (g *EllipseGenerator) PointsPerCurve() int {
	return 2*g.topo.BinsPerOctave() + 2
}

// Generate renders every octave's polygon from one spectrum snapshot.
// The spectrum is copied and clamped before any geometry, so upstream
// writers cannot tear a frame and out-of-range magnitudes never move a
// point outside its octave band. The result aliases the generator's
// buffers and is valid until the next call.
func (g *EllipseGenerator) Generate(spectrum []float64, vp Viewport) []OctaveCurve {
	g.snap.Load(spectrum)
	vp = vp.normalized()

	octaves := g.topo.OctaveCount()
	perOctave := g.topo.BinsPerOctave()
	baseline := geometry.Ellipse{
		Center:  vp.Center(),
		RadiusX: vp.HalfWidth(),
		RadiusY: vp.HalfHeight(),
	}
	rings := float64(octaves + 1)

	for o := 0; o < octaves; o++ {
		pts := g.curves[o].Points
		ring := float64(o+1) / rings

		// inner pass: the undecorated baseline, counter-clockwise from
		// 12 o'clock through one full revolution back to the seam
		for k := 0; k <= perOctave; k++ {
			u := geometry.CounterClockwise.Fraction(float64(k) / float64(perOctave))
			pts[k] = baseline.AtRadius(u, ring)
		}

		// data pass: clockwise through the octave's bins, radius bulged
		// outward by the bin magnitude
		bottom := g.topo.BottomBin(o)
		for i := 0; i < perOctave; i++ {
			bin := bottom + i
			u := geometry.Clockwise.Fraction(g.topo.Theta(bin))
			bulged := (float64(o+1) + g.snap.At(bin)) / rings
			pts[perOctave+1+i] = baseline.AtRadius(u, bulged)
		}

		// close the polygon
		pts[2*perOctave+1] = pts[0]
	}

	return g.curves
}
