package curves

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration misuse caught at construction
// time; per-frame generation never returns errors
var ErrInvalidConfig = errors.New("invalid curves configuration")

// SynthOption is the tagged rendering variant for the Lissajous
// synthesizer. The four options span two independent axes: hue per
// emitted pair versus a single hue, and full-band peak frequencies
// versus folding high peaks down to the baseband octave.
type SynthOption int

const (
	SynthMultiHue SynthOption = iota // hue per pair, full-band frequencies
	SynthMultiHueBaseband            // hue per pair, peaks folded to baseband
	SynthMonoHue                     // single hue, full-band frequencies
	SynthMonoHueBaseband             // single hue, peaks folded to baseband
)

// Baseband reports whether peak frequencies are folded down by
// power-of-two divisors before synthesis
func (o SynthOption) Baseband() bool {
	return o == SynthMultiHueBaseband || o == SynthMonoHueBaseband
}

// MonoHue reports whether every emitted curve carries hue index 0
func (o SynthOption) MonoHue() bool {
	return o == SynthMonoHue || o == SynthMonoHueBaseband
}

// Valid reports whether the option is one of the four defined variants
func (o SynthOption) Valid() bool {
	return o >= SynthMultiHue && o <= SynthMonoHueBaseband
}

func (o SynthOption) String() string {
	switch o {
	case SynthMultiHue:
		return "multi-hue"
	case SynthMultiHueBaseband:
		return "multi-hue-baseband"
	case SynthMonoHue:
		return "mono-hue"
	case SynthMonoHueBaseband:
		return "mono-hue-baseband"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// ParseSynthOption converts an option name as used on the command line
func ParseSynthOption(s string) (SynthOption, error) {
	switch s {
	case "multi-hue", "":
		return SynthMultiHue, nil
	case "multi-hue-baseband":
		return SynthMultiHueBaseband, nil
	case "mono-hue":
		return SynthMonoHue, nil
	case "mono-hue-baseband":
		return SynthMonoHueBaseband, nil
	default:
		return SynthMultiHue, fmt.Errorf("%w: unknown synth option %q", ErrInvalidConfig, s)
	}
}

// Config carries the fixed constants the generators are built from.
// The spectrum length is derived: octaves * notes * points per note,
// so one octave always spans a whole number of notes and bins.
type Config struct {
	OctaveCount       int         `json:"octave_count"`
	NotesPerOctave    int         `json:"notes_per_octave"`
	PointsPerNote     int         `json:"points_per_note"`
	PeakCount         int         `json:"peak_count"`
	SampleCount       int         `json:"sample_count"`
	SampleRate        float64     `json:"sample_rate"`
	BinFrequencyWidth float64     `json:"bin_frequency_width"`
	BasebandOctave    int         `json:"baseband_octave"`
	SynthOption       SynthOption `json:"synth_option"`
}

// DefaultConfig returns the standard layout: 768 bins across 8 octaves
func DefaultConfig() *Config {
	return &Config{
		OctaveCount:       8,
		NotesPerOctave:    12,
		PointsPerNote:     8,               // bins per note, render smoothness
		PeakCount:         4,               // ranked peaks kept per frame
		SampleCount:       1000,            // samples per Lissajous figure
		SampleRate:        44100.0,         // Hz
		BinFrequencyWidth: 44100.0 / 16384, // Hz per bin for a 16k analysis window
		BasebandOctave:    2,               // octave high peaks fold down to
		SynthOption:       SynthMultiHue,
	}
}

// TotalBins returns the spectrum length the topology is built for
func (c *Config) TotalBins() int {
	return c.OctaveCount * c.NotesPerOctave * c.PointsPerNote
}

// PointsPerOctave returns the angular resolution of one octave turn,
// identical to the octave's bin count
func (c *Config) PointsPerOctave() int {
	return c.NotesPerOctave * c.PointsPerNote
}

// MaxPairs returns how many Lissajous curves one frame can emit
func (c *Config) MaxPairs() int {
	return c.PeakCount * (c.PeakCount - 1) / 2
}

// Validate fails fast on configuration misuse; generators never see an
// invalid Config
func (c *Config) Validate() error {
	if c.OctaveCount <= 0 {
		return fmt.Errorf("%w: octave count %d", ErrInvalidConfig, c.OctaveCount)
	}
	if c.NotesPerOctave <= 0 {
		return fmt.Errorf("%w: notes per octave %d", ErrInvalidConfig, c.NotesPerOctave)
	}
	if c.PointsPerNote <= 0 {
		return fmt.Errorf("%w: points per note %d", ErrInvalidConfig, c.PointsPerNote)
	}
	if c.PeakCount <= 0 {
		return fmt.Errorf("%w: peak count %d", ErrInvalidConfig, c.PeakCount)
	}
	if c.SampleCount <= 0 {
		return fmt.Errorf("%w: sample count %d", ErrInvalidConfig, c.SampleCount)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, c.SampleRate)
	}
	if c.BinFrequencyWidth <= 0 {
		return fmt.Errorf("%w: bin frequency width %v", ErrInvalidConfig, c.BinFrequencyWidth)
	}
	if c.BasebandOctave < 0 || c.BasebandOctave >= c.OctaveCount {
		return fmt.Errorf("%w: baseband octave %d outside [0, %d)", ErrInvalidConfig, c.BasebandOctave, c.OctaveCount)
	}
	if !c.SynthOption.Valid() {
		return fmt.Errorf("%w: synth option %d", ErrInvalidConfig, int(c.SynthOption))
	}
	return nil
}
