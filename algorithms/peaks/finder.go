package peaks

import (
	"fmt"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
)

// Finder scans a magnitude spectrum for local maxima and emits them as
// selector candidates. Hosts with their own peak picker can bypass it
// and feed Candidates directly.
type Finder struct {
	minHeight   float64
	minDistance int
	adaptive    bool

	out []Candidate
}

// NewFinder creates a finder that keeps maxima at least minDistance
// bins apart. A positive minHeight is a fixed magnitude floor; zero
// selects an adaptive floor of mean + 1.5 standard deviations per
// frame, which tracks the noise floor as the spectrum moves.
func NewFinder(minHeight float64, minDistance int) (*Finder, error) {
	if minHeight < 0 {
		return nil, fmt.Errorf("peaks: min height must not be negative, got %v", minHeight)
	}
	if minDistance < 1 {
		return nil, fmt.Errorf("peaks: min distance must be at least 1 bin, got %d", minDistance)
	}

	return &Finder{
		minHeight:   minHeight,
		minDistance: minDistance,
		adaptive:    minHeight == 0,
		out:         make([]Candidate, 0, 16),
	}, nil
}

// Find returns the local maxima of spectrum, strongest kept when two
// maxima crowd within minDistance bins. The returned slice is reused by
// the next call.
func (f *Finder) Find(spectrum []float64) []Candidate {
	f.out = f.out[:0]
	if len(spectrum) < 3 {
		return f.out
	}

	floor := f.minHeight
	if f.adaptive {
		floor = common.Mean(spectrum) + 1.5*common.StandardDeviation(spectrum)
	}

	for i := 1; i < len(spectrum)-1; i++ {
		v := common.SanitizeAmplitude(spectrum[i])
		if v < floor || v == 0 {
			continue
		}
		if v <= common.SanitizeAmplitude(spectrum[i-1]) || v <= common.SanitizeAmplitude(spectrum[i+1]) {
			continue
		}

		// crowding: keep only the highest of maxima closer than minDistance
		suppressed := false
		for n := len(f.out); n > 0 && i-f.out[n-1].Bin < f.minDistance; n = len(f.out) {
			if v > f.out[n-1].Amplitude {
				f.out = f.out[:n-1]
				continue
			}
			suppressed = true
			break
		}
		if !suppressed {
			f.out = append(f.out, Candidate{Bin: i, Amplitude: v})
		}
	}

	return f.out
}
