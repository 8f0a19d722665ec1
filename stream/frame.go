package stream

import (
	"fmt"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/geometry"
	"github.com/Treata11/MuVis-v2.1.1/curves"
)

// Mode names the curve family a frame carries
type Mode string

const (
	ModeElliptical Mode = "elliptical"
	ModeSpiral     Mode = "spiral"
	ModeLissajous  Mode = "lissajous"
)

// Valid reports whether the mode is one of the three curve families
func (m Mode) Valid() bool {
	switch m {
	case ModeElliptical, ModeSpiral, ModeLissajous:
		return true
	}
	return false
}

// ParseMode converts a mode name as used on the command line
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("stream: unknown mode %q", s)
	}
	return m, nil
}

// Frame is one rendered frame on the wire. Points are flattened to
// [x, y] pairs so the payload stays compact and independent of the
// internal point representation.
type Frame struct {
	Mode   Mode    `json:"mode"`
	Time   float64 `json:"time"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Curves []Curve `json:"curves"`
}

// Curve is one polyline of a frame. Octave is meaningful in elliptical
// mode, Hue in lissajous mode; both ride along as zero otherwise.
type Curve struct {
	Octave int          `json:"octave"`
	Hue    int          `json:"hue"`
	Points [][2]float64 `json:"points"`
}

func flattenPoints(points []geometry.Point) [][2]float64 {
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// EllipticalFrame packages the per-octave polygons of one frame
func EllipticalFrame(now float64, vp curves.Viewport, ocs []curves.OctaveCurve) *Frame {
	f := &Frame{
		Mode:   ModeElliptical,
		Time:   now,
		Width:  vp.Width,
		Height: vp.Height,
		Curves: make([]Curve, len(ocs)),
	}
	for i, oc := range ocs {
		f.Curves[i] = Curve{Octave: oc.Octave, Points: flattenPoints(oc.Points)}
	}
	return f
}

// SpiralFrame packages the single spiral path of one frame
func SpiralFrame(now float64, vp curves.Viewport, sc curves.SpiralCurve) *Frame {
	return &Frame{
		Mode:   ModeSpiral,
		Time:   now,
		Width:  vp.Width,
		Height: vp.Height,
		Curves: []Curve{{Points: flattenPoints(sc.Points)}},
	}
}

// LissajousFrame packages the synthesized figures of one frame
func LissajousFrame(now float64, vp curves.Viewport, lcs []curves.LissajousCurve) *Frame {
	f := &Frame{
		Mode:   ModeLissajous,
		Time:   now,
		Width:  vp.Width,
		Height: vp.Height,
		Curves: make([]Curve, len(lcs)),
	}
	for i, lc := range lcs {
		f.Curves[i] = Curve{Hue: lc.Hue, Points: flattenPoints(lc.Points)}
	}
	return f
}
