package octave

import (
	"fmt"
)

// Topology is the precomputed mapping from spectrum bin index to octave
// index and angular position. The spectrum's bins are partitioned into
// contiguous per-octave ranges, one frequency doubling each; within an
// octave a bin's angular fraction theta in [0, 1) places it clockwise
// around one revolution starting from 12 o'clock. Built once from the
// fixed bin layout and shared read-only across frames and goroutines.
type Topology struct {
	totalBins      int
	octaveCount    int
	notesPerOctave int
	binsPerOctave  int

	octaveOf  []int
	thetaOf   []float64
	bottomBin []int
	topBin    []int
}

// New builds the bin-to-octave mapping. The bin count must divide evenly
// into octaves, and each octave's bin count must divide evenly into notes,
// so every lookup is exact integer math with no rounding drift.
func New(totalBins, octaveCount, notesPerOctave int) (*Topology, error) {
	if totalBins <= 0 {
		return nil, fmt.Errorf("octave: total bin count must be positive, got %d", totalBins)
	}
	if octaveCount <= 0 {
		return nil, fmt.Errorf("octave: octave count must be positive, got %d", octaveCount)
	}
	if notesPerOctave <= 0 {
		return nil, fmt.Errorf("octave: notes per octave must be positive, got %d", notesPerOctave)
	}
	if totalBins%octaveCount != 0 {
		return nil, fmt.Errorf("octave: %d bins do not divide evenly into %d octaves", totalBins, octaveCount)
	}

	binsPerOctave := totalBins / octaveCount
	if binsPerOctave%notesPerOctave != 0 {
		return nil, fmt.Errorf("octave: %d bins per octave do not divide evenly into %d notes", binsPerOctave, notesPerOctave)
	}

	t := &Topology{
		totalBins:      totalBins,
		octaveCount:    octaveCount,
		notesPerOctave: notesPerOctave,
		binsPerOctave:  binsPerOctave,
		octaveOf:       make([]int, totalBins),
		thetaOf:        make([]float64, totalBins),
		bottomBin:      make([]int, octaveCount),
		topBin:         make([]int, octaveCount),
	}

	for o := 0; o < octaveCount; o++ {
		t.bottomBin[o] = o * binsPerOctave
		t.topBin[o] = (o+1)*binsPerOctave - 1
	}

	for b := 0; b < totalBins; b++ {
		o := b / binsPerOctave
		t.octaveOf[b] = o
		t.thetaOf[b] = float64(b-t.bottomBin[o]) / float64(binsPerOctave)
	}

	return t, nil
}

// TotalBins returns the spectrum length the topology was built for
func (t *Topology) TotalBins() int {
	return t.totalBins
}

// OctaveCount returns the number of octave ranges
func (t *Topology) OctaveCount() int {
	return t.octaveCount
}

// NotesPerOctave returns the note subdivision of each octave
func (t *Topology) NotesPerOctave() int {
	return t.notesPerOctave
}

// BinsPerOctave returns the number of bins in every octave range
func (t *Topology) BinsPerOctave() int {
	return t.binsPerOctave
}

// PointsPerNote returns how many bins render one note
func (t *Topology) PointsPerNote() int {
	return t.binsPerOctave / t.notesPerOctave
}

// Octave returns the octave index for a bin in [0, TotalBins)
func (t *Topology) Octave(bin int) int {
	return t.octaveOf[bin]
}

// Theta returns the bin's clockwise angular fraction in [0, 1) within
// its octave, measured from 12 o'clock
func (t *Topology) Theta(bin int) float64 {
	return t.thetaOf[bin]
}

// Position returns octave index and angular fraction together
func (t *Topology) Position(bin int) (int, float64) {
	return t.octaveOf[bin], t.thetaOf[bin]
}

// BottomBin returns the first bin of octave o (inclusive)
func (t *Topology) BottomBin(o int) int {
	return t.bottomBin[o]
}

// TopBin returns the last bin of octave o (inclusive)
func (t *Topology) TopBin(o int) int {
	return t.topBin[o]
}
