package curves

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/window"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/geometry"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/octave"
)

const testEps = 1e-9

func pointXY(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

func pointsClose(p, q geometry.Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func clonePoints(pts []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	copy(out, pts)
	return out
}

func cloneOctaveCurves(curves []OctaveCurve) []OctaveCurve {
	out := make([]OctaveCurve, len(curves))
	for i, c := range curves {
		out[i] = OctaveCurve{Octave: c.Octave, Points: clonePoints(c.Points)}
	}
	return out
}

func cloneLissajousCurves(curves []LissajousCurve) []LissajousCurve {
	out := make([]LissajousCurve, len(curves))
	for i, c := range curves {
		out[i] = LissajousCurve{Hue: c.Hue, Points: clonePoints(c.Points)}
	}
	return out
}

func newBenchTopology() (*octave.Topology, error) {
	cfg := DefaultConfig()
	return octave.New(cfg.TotalBins(), cfg.OctaveCount, cfg.NotesPerOctave)
}

// impulseSpectrum returns a spectrum of the given size that is zero
// everywhere except the listed bins.
func impulseSpectrum(size int, amps map[int]float64) []float64 {
	spectrum := make([]float64, size)
	for bin, amp := range amps {
		spectrum[bin] = amp
	}
	return spectrum
}

// toneSpectrum synthesizes the magnitude spectrum an analysis frontend
// would hand the engine for a sum of pure tones: render the waveform,
// apply a Hann window, transform, and normalize the low bins to [0, 1].
func toneSpectrum(t *testing.T, freqs []float64, sampleRate float64, fftSize, bins int) []float64 {
	t.Helper()
	if !common.IsPowerOfTwo(fftSize) {
		fftSize = common.NextPowerOfTwo(fftSize)
	}
	if bins > fftSize/2 {
		t.Fatalf("bins %d exceed fftSize/2 = %d", bins, fftSize/2)
	}

	signal := make([]float64, fftSize)
	for _, freq := range freqs {
		step := 2 * math.Pi * freq / sampleRate
		for n := range signal {
			signal[n] += math.Sin(float64(n) * step)
		}
	}
	window.Hann(signal)

	coeffs := fft.FFTReal(signal)
	magnitudes := make([]float64, bins)
	for k := 0; k < bins; k++ {
		magnitudes[k] = cmplx.Abs(coeffs[k])
	}
	return common.MinMaxNormalize(magnitudes)
}
