// Package raster converts straight segments between integer grid points
// into ordered sequences of colored grid cells. Every function here is
// pure: the same endpoints always produce the same cells, in the same
// order, with no side effects and no hidden state.
package raster

import (
	"image/color"
	"math"
)

// Point identifies a cell on an unbounded integer grid. Negative
// coordinates are legal; clipping to a visible canvas is the caller's
// concern.
type Point struct {
	X, Y int
}

// Cell is a grid cell emitted by a rasterizer together with its
// coverage. Coverage is in [0, 1]: 1 means fully opaque foreground,
// values in between are anti-aliased blends toward the background.
type Cell struct {
	Point
	Coverage float64
}

// Algorithm selects a line rasterization algorithm.
type Algorithm int

const (
	// DDA samples the line at max(|dx|,|dy|)+1 evenly spaced positions
	// and rounds each sample to the nearest cell.
	DDA Algorithm = iota
	// Bresenham walks the dominant axis with an integer decision error.
	Bresenham
	// Wu emits anti-aliased cell pairs whose coverages sum to one.
	Wu
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case DDA:
		return "DDA"
	case Bresenham:
		return "Bresenham"
	case Wu:
		return "Wu"
	default:
		return "Unknown"
	}
}

// Rasterize returns the ordered cells approximating the segment from
// start to end under the given algorithm. A zero-length segment
// (start == end) yields exactly one fully opaque cell. Unknown
// algorithm values return nil.
func Rasterize(algo Algorithm, start, end Point) []Cell {
	switch algo {
	case DDA:
		return ddaLine(start, end)
	case Bresenham:
		return bresenhamLine(start, end)
	case Wu:
		return wuLine(start, end)
	default:
		return nil
	}
}

// Blend returns the display color for a cell with the given coverage: a
// linear interpolation of each channel from bg (coverage 0) to fg
// (coverage 1), rounded to nearest. Coverage outside [0, 1] is clamped.
func Blend(fg, bg color.RGBA, coverage float64) color.RGBA {
	if coverage < 0 {
		coverage = 0
	}
	if coverage > 1 {
		coverage = 1
	}
	lerp := func(b, f uint8) uint8 {
		return uint8(math.Round(float64(b) + coverage*(float64(f)-float64(b))))
	}
	return color.RGBA{
		R: lerp(bg.R, fg.R),
		G: lerp(bg.G, fg.G),
		B: lerp(bg.B, fg.B),
		A: lerp(bg.A, fg.A),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
