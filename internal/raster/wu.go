package raster

import "math"

// wuLine emits an anti-aliased line. It walks the dominant axis one
// cell per step while accumulating the real-valued minor coordinate;
// each interior step emits the two cells straddling that coordinate,
// with coverages split by its fractional part (the pair always sums to
// one). When the minor coordinate lands exactly on a cell, a single
// fully opaque cell is emitted instead of an opaque+empty pair. The
// two true endpoints are always emitted as single fully opaque cells.
func wuLine(start, end Point) []Cell {
	dx := end.X - start.X
	dy := end.Y - start.Y
	adx, ady := abs(dx), abs(dy)
	if adx == 0 && ady == 0 {
		return []Cell{{Point: start, Coverage: 1}}
	}

	if ady <= adx {
		return wuWalk(start.X, start.Y, end.X, end.Y, sign(dx), float64(dy)/float64(adx), false)
	}
	// Steep line: swap axis roles to avoid gaps.
	return wuWalk(start.Y, start.X, end.Y, end.X, sign(dy), float64(dx)/float64(ady), true)
}

// wuWalk iterates the major coordinate from u0 to u1 by the signed
// step su, advancing the real-valued minor coordinate by vInc per
// step. swapped reports that the major axis is y, so emitted (u, v)
// pairs are transposed back to (x, y).
func wuWalk(u0, v0, u1, v1, su int, vInc float64, swapped bool) []Cell {
	cells := make([]Cell, 0, 2*abs(u1-u0))
	emit := func(u, v int, coverage float64) {
		p := Point{X: u, Y: v}
		if swapped {
			p = Point{X: v, Y: u}
		}
		cells = append(cells, Cell{Point: p, Coverage: coverage})
	}

	emit(u0, v0, 1)
	v := float64(v0)
	for u := u0 + su; u != u1; u += su {
		v += vInc
		floor := math.Floor(v)
		frac := v - floor
		if frac == 0 {
			emit(u, int(floor), 1)
			continue
		}
		emit(u, int(floor), 1-frac)
		emit(u, int(floor)+1, frac)
	}
	emit(u1, v1, 1)
	return cells
}
