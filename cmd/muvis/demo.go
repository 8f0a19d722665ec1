package main

import (
	"fmt"
	"math"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/octave"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/peaks"
)

// demoHump is one gliding spectral feature: a Gaussian magnitude bump
// whose center sweeps between two bins while its height wobbles.
type demoHump struct {
	lowBin    float64
	highBin   float64
	sweepRate float64 // sweeps per second
	wobble    float64 // amplitude wobbles per second
	phase     float64
}

// demoSource animates a magnitude spectrum without any audio input:
// a handful of humps glide across the octaves at different rates, so
// every render mode has something to show. Output is deterministic in
// the frame time, which keeps the stream reproducible.
type demoSource struct {
	topo     *octave.Topology
	humps    []demoHump
	spectrum []float64
	finder   *peaks.Finder
}

func newDemoSource(topo *octave.Topology) (*demoSource, error) {
	if topo == nil {
		return nil, fmt.Errorf("demo: source needs a topology")
	}

	n := float64(topo.TotalBins())
	finder, err := peaks.NewFinder(0.1, topo.PointsPerNote())
	if err != nil {
		return nil, err
	}

	return &demoSource{
		topo: topo,
		humps: []demoHump{
			{lowBin: 0.05 * n, highBin: 0.30 * n, sweepRate: 0.11, wobble: 0.7, phase: 0.0},
			{lowBin: 0.25 * n, highBin: 0.60 * n, sweepRate: 0.07, wobble: 0.4, phase: 2.1},
			{lowBin: 0.55 * n, highBin: 0.95 * n, sweepRate: 0.05, wobble: 0.9, phase: 4.4},
		},
		spectrum: make([]float64, topo.TotalBins()),
		finder:   finder,
	}, nil
}

// Spectrum fills and returns the magnitude spectrum for frame time
// now, in seconds. The returned slice is reused by the next call.
func (d *demoSource) Spectrum(now float64) []float64 {
	sigma := float64(d.topo.PointsPerNote())
	for i := range d.spectrum {
		d.spectrum[i] = 0
	}

	for _, h := range d.humps {
		mid := (h.lowBin + h.highBin) / 2
		swing := (h.highBin - h.lowBin) / 2
		center := mid + swing*math.Sin(2*math.Pi*h.sweepRate*now+h.phase)
		height := 0.55 + 0.45*math.Sin(2*math.Pi*h.wobble*now+h.phase)

		// a Gaussian is negligible past a few sigmas; bound the loop
		lo := int(center - 4*sigma)
		hi := int(center + 4*sigma)
		if lo < 0 {
			lo = 0
		}
		if hi >= len(d.spectrum) {
			hi = len(d.spectrum) - 1
		}
		for b := lo; b <= hi; b++ {
			dev := (float64(b) - center) / sigma
			d.spectrum[b] += height * math.Exp(-0.5*dev*dev)
		}
	}

	return d.spectrum
}

// Candidates runs peak detection over the most recent spectrum. The
// returned slice is reused by the next call.
func (d *demoSource) Candidates() []peaks.Candidate {
	return d.finder.Find(d.spectrum)
}
