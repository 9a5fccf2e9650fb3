package raster

// bresenhamLine walks the dominant axis one cell per step, using the
// doubled minor-axis delta as an integer decision error for when to
// step the minor axis. It emits exactly max(|dx|,|dy|)+1 fully opaque
// cells and lands exactly on both endpoints in all four octant sign
// combinations.
//
// On a tie (error exactly zero, the ideal line crossing a cell
// boundary midpoint) the minor axis steps only when its step direction
// is negative. Ties are then resolved toward the same absolute cell
// from either direction, so a segment and its reverse emit the same
// cell set.
func bresenhamLine(start, end Point) []Cell {
	dx := end.X - start.X
	dy := end.Y - start.Y
	sx, sy := sign(dx), sign(dy)
	adx, ady := abs(dx), abs(dy)

	major, minor := adx, ady
	majorStepX, majorStepY := sx, 0
	minorStepX, minorStepY := 0, sy
	minorSign := sy
	if ady > adx {
		major, minor = ady, adx
		majorStepX, majorStepY = 0, sy
		minorStepX, minorStepY = sx, 0
		minorSign = sx
	}

	cells := make([]Cell, 0, major+1)
	d := 2*minor - major
	x, y := start.X, start.Y
	for i := 0; i <= major; i++ {
		cells = append(cells, Cell{Point: Point{X: x, Y: y}, Coverage: 1})
		if d > 0 || (d == 0 && minorSign < 0) {
			x += minorStepX
			y += minorStepY
			d -= 2 * major
		}
		d += 2 * minor
		x += majorStepX
		y += majorStepY
	}
	return cells
}
