package curves

import (
	"github.com/Treata11/MuVis-v2.1.1/algorithms/common"
	"github.com/Treata11/MuVis-v2.1.1/algorithms/geometry"
)

// Viewport is the drawable area in screen units, origin top-left,
// y growing down. Generators take it per call so the host can resize
// freely between frames.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the viewport midpoint
func (v Viewport) Center() geometry.Point {
	return geometry.Point{X: v.Width / 2, Y: v.Height / 2}
}

// HalfWidth returns half the horizontal extent
func (v Viewport) HalfWidth() float64 {
	return v.Width / 2
}

// HalfHeight returns half the vertical extent
func (v Viewport) HalfHeight() float64 {
	return v.Height / 2
}

// Clamp constrains a point into the viewport rectangle
func (v Viewport) Clamp(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: common.Clamp(p.X, 0, v.Width),
		Y: common.Clamp(p.Y, 0, v.Height),
	}
}

// normalized zeroes negative extents so degenerate viewports collapse
// to a point instead of mirroring the curves
func (v Viewport) normalized() Viewport {
	if v.Width < 0 {
		v.Width = 0
	}
	if v.Height < 0 {
		v.Height = 0
	}
	return v
}
