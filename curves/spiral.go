package curves

import (
	"fmt"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/geometry"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/octave"
)

// SpiralGenerator renders every octave along a single clockwise
// Archimedean spiral, one turn per octave, elongated per axis to fill
// the viewport. The path runs the undecorated baseline from the
// outermost turn into the center, then back out bin by bin with the
// radius pulled toward the center by the bin magnitude, and closes on
// its start point.
//
// The data pass subtracts magnitude from the radius rather than adding
// it: against the outward-growing baseline the dips read as bulges, and
// the sign matches the reference rendering exactly.
type SpiralGenerator struct {
	topo *octave.Topology
	snap *common.Snapshot

	points []geometry.Point
}

// NewSpiralGenerator creates a generator for the given topology
func NewSpiralGenerator(topo *octave.Topology) (*SpiralGenerator, error) {
	if topo == nil {
		return nil, fmt.Errorf("curves: spiral generator needs a topology")
	}

	// baseline pass + one point per bin + closure
	total := topo.OctaveCount()*topo.BinsPerOctave() + topo.TotalBins() + 1

	return &SpiralGenerator{
		topo:   topo,
		snap:   common.NewSnapshot(topo.TotalBins()),
		points: make([]geometry.Point, total),
	}, nil
}

// PointCount returns the fixed path length
func (g *SpiralGenerator) PointCount() int {
	return len(g.points)
}

// Generate renders the spiral from one spectrum snapshot. The spectrum
// is copied and clamped first, and the turn coordinate advances by the
// same angular step across octave seams as within an octave, so the
// path stays continuous at every boundary. The result aliases the
// generator's buffer and is valid until the next call.
func (g *SpiralGenerator) Generate(spectrum []float64, vp Viewport) SpiralCurve {
	g.snap.Load(spectrum)
	vp = vp.normalized()

	octaves := g.topo.OctaveCount()
	perOctave := g.topo.BinsPerOctave()
	totalBins := g.topo.TotalBins()

	spiral := geometry.Spiral{
		Center:   vp.Center(),
		SpacingX: vp.HalfWidth() / float64(octaves),
		SpacingY: vp.HalfHeight() / float64(octaves),
		Winding:  geometry.Clockwise,
	}

	idx := 0

	// baseline: outermost turn spiraling in, plain radius
	for k := 0; k < octaves*perOctave; k++ {
		m := float64(octaves) - float64(k)/float64(perOctave)
		g.points[idx] = spiral.At(m)
		idx++
	}

	// data pass: center back out, each bin at its exact angle with the
	// radius dipped by its magnitude
	for bin := 0; bin < totalBins; bin++ {
		o, theta := g.topo.Position(bin)
		m := float64(o) + theta
		g.points[idx] = spiral.AtRadius(m, m-g.snap.At(bin))
		idx++
	}

	// close the path
	g.points[idx] = g.points[0]

	return SpiralCurve{Points: g.points}
}
