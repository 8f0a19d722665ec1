package peaks

import (
	"fmt"
	"slices"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
)

// Candidate is a raw spectral peak from an upstream analysis stage:
// a bin index and its magnitude, unranked
type Candidate struct {
	Bin       int     `json:"bin"`
	Amplitude float64 `json:"amplitude"`
}

// Peak is one ranked entry of the selector output. Amplitude 0 denotes
// "no peak": the entry stays in the list so downstream pairing can skip
// it explicitly instead of working with a shrinking slice.
type Peak struct {
	Bin       int     `json:"bin"`
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
}

// IsSilent reports whether the entry denotes "no peak"
func (p Peak) IsSilent() bool {
	return p.Amplitude == 0
}

// Selector ranks peak candidates by amplitude and annotates them with
// their center frequency. Output length is always exactly the
// configured peak count, zero-padded when fewer candidates arrive.
type Selector struct {
	peakCount int
	binWidth  float64

	scratch []Candidate
	out     []Peak
}

// NewSelector creates a selector keeping the top peakCount candidates,
// with binFrequencyWidth in Hz per bin
func NewSelector(peakCount int, binFrequencyWidth float64) (*Selector, error) {
	if peakCount <= 0 {
		return nil, fmt.Errorf("peaks: peak count must be positive, got %d", peakCount)
	}
	if binFrequencyWidth <= 0 {
		return nil, fmt.Errorf("peaks: bin frequency width must be positive, got %v", binFrequencyWidth)
	}

	return &Selector{
		peakCount: peakCount,
		binWidth:  binFrequencyWidth,
		scratch:   make([]Candidate, 0, 4*peakCount),
		out:       make([]Peak, peakCount),
	}, nil
}

// PeakCount returns the fixed output length
func (s *Selector) PeakCount() int {
	return s.peakCount
}

// compareCandidates orders by descending amplitude, then ascending bin,
// so equal-amplitude peaks rank deterministically
func compareCandidates(a, b Candidate) int {
	if a.Amplitude != b.Amplitude {
		if a.Amplitude > b.Amplitude {
			return -1
		}
		return 1
	}
	return a.Bin - b.Bin
}

// Select returns the top candidates ordered by descending amplitude,
// ties broken by lower bin index. Amplitudes are clamped to [0, 1] and
// candidates with negative bin indices dropped before ranking. The
// returned slice is reused by the next call.
func (s *Selector) Select(candidates []Candidate) []Peak {
	s.scratch = s.scratch[:0]
	for _, c := range candidates {
		if c.Bin < 0 {
			continue
		}
		c.Amplitude = common.SanitizeAmplitude(c.Amplitude)
		s.scratch = append(s.scratch, c)
	}

	slices.SortFunc(s.scratch, compareCandidates)

	for i := 0; i < s.peakCount; i++ {
		if i < len(s.scratch) {
			c := s.scratch[i]
			s.out[i] = Peak{
				Bin:       c.Bin,
				Frequency: float64(c.Bin) * s.binWidth,
				Amplitude: c.Amplitude,
			}
		} else {
			s.out[i] = Peak{}
		}
	}
	return s.out
}
