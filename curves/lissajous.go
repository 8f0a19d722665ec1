package curves

import (
	"fmt"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/geometry"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/octave"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/oscillator"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/peaks"
)

// LissajousSynth turns the ranked peak list into closed figures: one
// oscillator voice per peak, one curve per unordered pair of non-silent
// peaks, peak i driving x and peak j driving y. Pairs with a silent
// member are skipped outright, never emitted as degenerate curves.
//
// With a baseband option the frequency of every peak above the
// baseband octave is divided by two per octave of excess before
// synthesis, which keeps figures from distant octaves visually
// comparable.
type LissajousSynth struct {
	topo           *octave.Topology
	option         SynthOption
	peakCount      int
	sampleCount    int
	basebandOctave int

	bank    *oscillator.Bank
	freqs   []float64
	amps    []float64
	backing []geometry.Point
	curves  []LissajousCurve
}

// NewLissajousSynth creates a synthesizer for the topology and config
func NewLissajousSynth(topo *octave.Topology, cfg *Config) (*LissajousSynth, error) {
	if topo == nil {
		return nil, fmt.Errorf("curves: lissajous synthesizer needs a topology")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bank, err := oscillator.NewBank(cfg.PeakCount, cfg.SampleCount, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	return &LissajousSynth{
		topo:           topo,
		option:         cfg.SynthOption,
		peakCount:      cfg.PeakCount,
		sampleCount:    cfg.SampleCount,
		basebandOctave: cfg.BasebandOctave,
		bank:           bank,
		freqs:          make([]float64, cfg.PeakCount),
		amps:           make([]float64, cfg.PeakCount),
		backing:        make([]geometry.Point, cfg.MaxPairs()*cfg.SampleCount),
		curves:         make([]LissajousCurve, 0, cfg.MaxPairs()),
	}, nil
}

// Option returns the active rendering variant
func (s *LissajousSynth) Option() SynthOption {
	return s.option
}

// SetOption switches the rendering variant between frames
func (s *LissajousSynth) SetOption(option SynthOption) error {
	if !option.Valid() {
		return fmt.Errorf("%w: synth option %d", ErrInvalidConfig, int(option))
	}
	s.option = option
	return nil
}

// Synthesize renders one figure per pair of non-silent peaks. The
// phase of voice i is now*frequency_i, recomputed from the explicit
// now argument, so identical inputs at an identical now reproduce the
// frame exactly while a running clock animates it continuously. The
// result aliases the synthesizer's buffers and is valid until the next
// call.
func (s *LissajousSynth) Synthesize(list []peaks.Peak, now float64, vp Viewport) []LissajousCurve {
	vp = vp.normalized()

	for i := 0; i < s.peakCount; i++ {
		if i < len(list) {
			s.freqs[i] = s.foldFrequency(list[i])
			s.amps[i] = common.SanitizeAmplitude(list[i].Amplitude)
		} else {
			s.freqs[i] = 0
			s.amps[i] = 0
		}
	}

	waves := s.bank.Render(s.freqs, s.amps, now)

	halfW, halfH := vp.HalfWidth(), vp.HalfHeight()
	s.curves = s.curves[:0]
	emitted := 0
	for i := 0; i < s.peakCount; i++ {
		for j := i + 1; j < s.peakCount; j++ {
			if s.amps[i] == 0 || s.amps[j] == 0 {
				continue
			}

			pts := s.backing[emitted*s.sampleCount : (emitted+1)*s.sampleCount]
			xw, yw := waves[i], waves[j]
			for n := range pts {
				pts[n] = vp.Clamp(geometry.Point{
					X: halfW + halfW*xw[n],
					Y: halfH - halfH*yw[n],
				})
			}

			hue := 0
			if !s.option.MonoHue() {
				hue = emitted % s.peakCount
			}
			s.curves = append(s.curves, LissajousCurve{Hue: hue, Points: pts})
			emitted++
		}
	}

	return s.curves
}

// foldFrequency applies the baseband option: each octave above the
// baseband octave halves the synthesized frequency once
func (s *LissajousSynth) foldFrequency(p peaks.Peak) float64 {
	if !s.option.Baseband() {
		return p.Frequency
	}

	bin := p.Bin
	if bin < 0 {
		return p.Frequency
	}
	if bin >= s.topo.TotalBins() {
		bin = s.topo.TotalBins() - 1
	}

	o := s.topo.Octave(bin)
	if o <= s.basebandOctave {
		return p.Frequency
	}
	return p.Frequency / float64(int(1)<<uint(o-s.basebandOctave))
}
