package octave

import (
	"math"
	"testing"
)

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name                                   string
		totalBins, octaveCount, notesPerOctave int
	}{
		{"zero bins", 0, 8, 12},
		{"negative bins", -96, 8, 12},
		{"zero octaves", 768, 0, 12},
		{"zero notes", 768, 8, 0},
		{"indivisible octaves", 700, 8, 12},
		{"indivisible notes", 768, 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.totalBins, tt.octaveCount, tt.notesPerOctave); err == nil {
				t.Errorf("New(%d, %d, %d) succeeded, want error",
					tt.totalBins, tt.octaveCount, tt.notesPerOctave)
			}
		})
	}
}

func TestPartitionCompleteness(t *testing.T) {
	configs := []struct {
		totalBins, octaveCount, notesPerOctave int
	}{
		{768, 8, 12},
		{96, 8, 12},
		{144, 6, 12},
		{24, 2, 12},
		{12, 1, 12},
	}

	for _, cfg := range configs {
		topo, err := New(cfg.totalBins, cfg.octaveCount, cfg.notesPerOctave)
		if err != nil {
			t.Fatalf("New(%d, %d, %d): %v", cfg.totalBins, cfg.octaveCount, cfg.notesPerOctave, err)
		}

		// ranges are contiguous, increasing, and cover [0, N) exactly once
		covered := make([]int, cfg.totalBins)
		for o := 0; o < topo.OctaveCount(); o++ {
			bottom, top := topo.BottomBin(o), topo.TopBin(o)
			if bottom > top {
				t.Errorf("octave %d: bottom %d > top %d", o, bottom, top)
			}
			if o > 0 && topo.TopBin(o-1)+1 != bottom {
				t.Errorf("octave %d: range not contiguous with octave %d", o, o-1)
			}
			for b := bottom; b <= top; b++ {
				covered[b]++
			}
		}
		if topo.BottomBin(0) != 0 {
			t.Errorf("first octave starts at %d, want 0", topo.BottomBin(0))
		}
		if topo.TopBin(topo.OctaveCount()-1) != cfg.totalBins-1 {
			t.Errorf("last octave ends at %d, want %d",
				topo.TopBin(topo.OctaveCount()-1), cfg.totalBins-1)
		}
		for b, n := range covered {
			if n != 1 {
				t.Errorf("bin %d covered %d times, want exactly once", b, n)
			}
		}

		// per-bin lookups agree with the ranges
		for b := 0; b < cfg.totalBins; b++ {
			o := topo.Octave(b)
			if b < topo.BottomBin(o) || b > topo.TopBin(o) {
				t.Errorf("bin %d assigned octave %d outside its range [%d, %d]",
					b, o, topo.BottomBin(o), topo.TopBin(o))
			}
		}
	}
}

func TestThetaRangeAndMonotonicity(t *testing.T) {
	topo, err := New(768, 8, 12)
	if err != nil {
		t.Fatal(err)
	}

	for b := 0; b < topo.TotalBins(); b++ {
		theta := topo.Theta(b)
		if theta < 0.0 || theta >= 1.0 {
			t.Fatalf("Theta(%d) = %v out of [0, 1)", b, theta)
		}
		if b > topo.BottomBin(topo.Octave(b)) && theta <= topo.Theta(b-1) {
			t.Fatalf("Theta not strictly increasing within octave at bin %d", b)
		}
	}
}

func TestAngularClosureAtOctaveBoundaries(t *testing.T) {
	topo, err := New(768, 8, 12)
	if err != nil {
		t.Fatal(err)
	}

	step := 1.0 / float64(topo.BinsPerOctave())
	for o := 0; o < topo.OctaveCount()-1; o++ {
		boundary := topo.TopBin(o) + 1
		if boundary != topo.BottomBin(o+1) {
			t.Fatalf("octave %d: TopBin+1 = %d, BottomBin(o+1) = %d", o, boundary, topo.BottomBin(o+1))
		}
		if theta := topo.Theta(boundary); theta != 0.0 {
			t.Errorf("octave boundary bin %d: Theta = %v, want exactly 0", boundary, theta)
		}

		// the combined octave+theta coordinate advances by one angular
		// step across the seam, same as any intra-octave step
		before := float64(topo.Octave(boundary-1)) + topo.Theta(boundary-1)
		after := float64(topo.Octave(boundary)) + topo.Theta(boundary)
		if diff := after - before; math.Abs(diff-step) > 1e-12 {
			t.Errorf("seam after octave %d: angular step %v, want %v", o, diff, step)
		}
		t.Logf("octave %d -> %d: theta %v -> %v, combined %v -> %v",
			o, o+1, topo.Theta(boundary-1), topo.Theta(boundary), before, after)
	}
}

func TestPointsPerNote(t *testing.T) {
	topo, err := New(768, 8, 12)
	if err != nil {
		t.Fatal(err)
	}
	if got := topo.BinsPerOctave(); got != 96 {
		t.Errorf("BinsPerOctave = %d, want 96", got)
	}
	if got := topo.PointsPerNote(); got != 8 {
		t.Errorf("PointsPerNote = %d, want 8", got)
	}
	if got := topo.NotesPerOctave(); got != 12 {
		t.Errorf("NotesPerOctave = %d, want 12", got)
	}
}
