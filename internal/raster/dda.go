package raster

import "math"

// ddaLine samples the segment at max(|dx|,|dy|)+1 evenly spaced
// real-valued positions, starting at start and ending at end, and
// rounds each sample to the nearest cell. All cells are fully opaque.
func ddaLine(start, end Point) []Cell {
	dx := end.X - start.X
	dy := end.Y - start.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return []Cell{{Point: start, Coverage: 1}}
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	cells := make([]Cell, 0, steps+1)
	x := float64(start.X)
	y := float64(start.Y)
	for i := 0; i <= steps; i++ {
		cells = append(cells, Cell{
			Point:    Point{X: int(math.Round(x)), Y: int(math.Round(y))},
			Coverage: 1,
		})
		x += xInc
		y += yInc
	}
	return cells
}
