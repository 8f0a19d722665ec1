package curves

import (
	"github.com/Treata11/MuVis-v2.1.1/algorithms/octave"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/peaks"
	"github.com/Treata11/MuVis-v2.1.1/logging"
)

// Engine wires the topology, the two spectrum generators, the peak
// selector, and the Lissajous synthesizer from one validated Config.
// Hosts that only need a single mode can construct the pieces
// directly; the engine is the convenient whole.
//
// The engine itself holds no frame state: every method is a pure
// function of its arguments plus the immutable topology, and each
// generator reuses its own preallocated buffers.
type Engine struct {
	config   *Config
	topo     *octave.Topology
	ellipse  *EllipseGenerator
	spiral   *SpiralGenerator
	synth    *LissajousSynth
	selector *peaks.Selector
	logger   logging.Logger
}

// NewEngine builds an engine from config; nil selects DefaultConfig
func NewEngine(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := logging.WithFields(logging.Fields{
		"component": "curves_engine",
	})

	topo, err := octave.New(config.TotalBins(), config.OctaveCount, config.NotesPerOctave)
	if err != nil {
		return nil, err
	}

	ellipse, err := NewEllipseGenerator(topo)
	if err != nil {
		return nil, err
	}
	spiral, err := NewSpiralGenerator(topo)
	if err != nil {
		return nil, err
	}
	synth, err := NewLissajousSynth(topo, config)
	if err != nil {
		return nil, err
	}
	selector, err := peaks.NewSelector(config.PeakCount, config.BinFrequencyWidth)
	if err != nil {
		return nil, err
	}

	logger.Debug("curve engine initialized", logging.Fields{
		"total_bins":   config.TotalBins(),
		"octaves":      config.OctaveCount,
		"peak_count":   config.PeakCount,
		"synth_option": config.SynthOption.String(),
	})

	return &Engine{
		config:   config,
		topo:     topo,
		ellipse:  ellipse,
		spiral:   spiral,
		synth:    synth,
		selector: selector,
		logger:   logger,
	}, nil
}

// Config returns the engine's configuration
func (e *Engine) Config() *Config {
	return e.config
}

// Topology returns the shared bin-to-octave mapping
func (e *Engine) Topology() *octave.Topology {
	return e.topo
}

// Elliptical renders one closed polygon per octave from a spectrum
// snapshot; output is valid until the next Elliptical call
func (e *Engine) Elliptical(spectrum []float64, vp Viewport) []OctaveCurve {
	return e.ellipse.Generate(spectrum, vp)
}

// Spiral renders the all-octave spiral path from a spectrum snapshot;
// output is valid until the next Spiral call
func (e *Engine) Spiral(spectrum []float64, vp Viewport) SpiralCurve {
	return e.spiral.Generate(spectrum, vp)
}

// SelectPeaks ranks raw candidates into the fixed-length peak list;
// output is valid until the next SelectPeaks call
func (e *Engine) SelectPeaks(candidates []peaks.Candidate) []peaks.Peak {
	return e.selector.Select(candidates)
}

// Lissajous renders one figure per non-silent peak pair at time now;
// output is valid until the next Lissajous call
func (e *Engine) Lissajous(list []peaks.Peak, now float64, vp Viewport) []LissajousCurve {
	return e.synth.Synthesize(list, now, vp)
}

// SetSynthOption switches the Lissajous rendering variant
func (e *Engine) SetSynthOption(option SynthOption) error {
	if err := e.synth.SetOption(option); err != nil {
		return err
	}
	e.logger.Debug("synth option changed", logging.Fields{
		"synth_option": option.String(),
	})
	return nil
}
