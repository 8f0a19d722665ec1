package curves

import (
	"github.com/Treata11/MuVis-v2.1.1/algorithms/geometry"
)

// OctaveCurve is the closed polygon rendered for one octave in
// elliptical mode: an undecorated inner pass walked counter-clockwise,
// the bulged data pass walked clockwise, joined at the 12 o'clock seam.
// First and last point coincide.
type OctaveCurve struct {
	Octave int              `json:"octave"`
	Points []geometry.Point `json:"points"`
}

// SpiralCurve is the single closed path of spiral mode, spanning every
// octave: the baseline runs from the outermost turn into the center,
// the data pass back out, and the final point returns to the start.
type SpiralCurve struct {
	Points []geometry.Point `json:"points"`
}

// LissajousCurve is one synthesized figure for a pair of non-silent
// peaks: exactly the configured sample count of points, not explicitly
// closed (closure depends on the frequency ratio). Hue indexes the
// caller's palette and stays within [0, peak count).
type LissajousCurve struct {
	Hue    int              `json:"hue"`
	Points []geometry.Point `json:"points"`
}
