package oscillator

import (
	"fmt"
	"math"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
)

// waveGain keeps a single voice at one fifth of full scale, so two
// stacked voices stay comfortably inside a unit viewport axis
const waveGain = 0.2

// Bank synthesizes short sinusoidal sample runs for a fixed set of
// voices, one per spectral peak. All wave buffers live in a single
// backing array allocated at construction and refilled per frame, so
// steady-state rendering does not allocate.
type Bank struct {
	voices      int
	sampleCount int
	sampleRate  float64

	backing []float64
	waves   [][]float64
}

// NewBank creates a bank of voices rendering sampleCount samples each
// at the given sample rate
func NewBank(voices, sampleCount int, sampleRate float64) (*Bank, error) {
	if voices <= 0 {
		return nil, fmt.Errorf("oscillator: voice count must be positive, got %d", voices)
	}
	if sampleCount <= 0 {
		return nil, fmt.Errorf("oscillator: sample count must be positive, got %d", sampleCount)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("oscillator: sample rate must be positive, got %v", sampleRate)
	}

	backing := make([]float64, voices*sampleCount)
	waves := make([][]float64, voices)
	for v := range waves {
		waves[v] = backing[v*sampleCount : (v+1)*sampleCount]
	}

	return &Bank{
		voices:      voices,
		sampleCount: sampleCount,
		sampleRate:  sampleRate,
		backing:     backing,
		waves:       waves,
	}, nil
}

// Voices returns the number of wave buffers
func (b *Bank) Voices() int {
	return b.voices
}

// SampleCount returns the length of each wave
func (b *Bank) SampleCount() int {
	return b.sampleCount
}

// SampleRate returns the synthesis sample rate in Hz
func (b *Bank) SampleRate() float64 {
	return b.sampleRate
}

// Render fills voice v with
//
//	gain * amp[v] * sin(phase[v] + 2*pi*n*freq[v]/sampleRate)
//
// where phase[v] = phaseTime*freq[v], recomputed from the explicit
// phaseTime each frame so the figure animates continuously without
// accumulating error. Amplitudes are clamped to [0, 1]; a silent or
// missing voice renders all zeros. The returned slices are reused by
// the next call.
func (b *Bank) Render(freqs, amps []float64, phaseTime float64) [][]float64 {
	for v := 0; v < b.voices; v++ {
		wave := b.waves[v]

		var freq, amp float64
		if v < len(freqs) {
			freq = freqs[v]
		}
		if v < len(amps) {
			amp = common.SanitizeAmplitude(amps[v])
		}
		if amp == 0 || freq <= 0 {
			for n := range wave {
				wave[n] = 0
			}
			continue
		}

		phase := phaseTime * freq
		step := 2 * math.Pi * freq / b.sampleRate
		scale := waveGain * amp
		for n := range wave {
			wave[n] = scale * math.Sin(phase+float64(n)*step)
		}
	}
	return b.waves
}
