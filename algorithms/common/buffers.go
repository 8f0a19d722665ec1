package common

// Snapshot holds a sanitized copy of one spectrum frame. The upstream
// analysis thread may rewrite its magnitude array at audio rate, so a
// generator loads the frame into its own Snapshot before iterating and
// then observes one consistent, already-clamped view for the whole
// curve computation. The backing array is allocated once and refilled
// per frame.
type Snapshot struct {
	data []float64
}

// NewSnapshot creates a snapshot buffer for spectra of the given length
func NewSnapshot(size int) *Snapshot {
	if size < 0 {
		size = 0
	}
	return &Snapshot{
		data: make([]float64, size),
	}
}

// Load copies spectrum into the snapshot, clamping every magnitude to
// [0, 1] and zeroing non-finite values. A short source leaves the tail
// silent; extra source bins are ignored.
func (s *Snapshot) Load(spectrum []float64) {
	SanitizeAmplitudes(s.data, spectrum)
}

// At returns the sanitized magnitude for one bin
func (s *Snapshot) At(bin int) float64 {
	return s.data[bin]
}

// Data exposes the sanitized frame; valid until the next Load
func (s *Snapshot) Data() []float64 {
	return s.data
}

// Len returns the snapshot's bin count
func (s *Snapshot) Len() int {
	return len(s.data)
}
