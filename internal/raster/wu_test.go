package raster

import (
	"math"
	"testing"
)

func TestWuEndpointsOpaque(t *testing.T) {
	segments := [][2]Point{
		{{0, 0}, {7, 3}},
		{{0, 0}, {3, 7}},
		{{2, 5}, {-6, 1}},
		{{-1, -1}, {-4, -9}},
		{{0, 0}, {5, 5}},
	}
	for _, seg := range segments {
		cells := wuLine(seg[0], seg[1])
		if len(cells) < 2 {
			t.Fatalf("%v-%v: only %d cells emitted", seg[0], seg[1], len(cells))
		}
		first, last := cells[0], cells[len(cells)-1]
		if first.Point != seg[0] || first.Coverage != 1 {
			t.Errorf("%v-%v: first cell %v coverage %v, expected opaque start", seg[0], seg[1], first.Point, first.Coverage)
		}
		if last.Point != seg[1] || last.Coverage != 1 {
			t.Errorf("%v-%v: last cell %v coverage %v, expected opaque end", seg[0], seg[1], last.Point, last.Coverage)
		}
	}
}

// TestWuCoverageConservation checks that the total coverage emitted for
// each step along the dominant axis is exactly 1: anti-aliasing spreads
// a cell's worth of ink across two cells, it never loses any.
func TestWuCoverageConservation(t *testing.T) {
	segments := [][2]Point{
		{{0, 0}, {7, 3}},
		{{0, 0}, {3, 7}},
		{{2, 5}, {-6, 1}},
		{{4, -2}, {-1, 9}},
	}
	for _, seg := range segments {
		cells := wuLine(seg[0], seg[1])

		dx := abs(seg[1].X - seg[0].X)
		dy := abs(seg[1].Y - seg[0].Y)
		steep := dy > dx
		perStep := make(map[int]float64)
		for _, c := range cells {
			if steep {
				perStep[c.Y] += c.Coverage
			} else {
				perStep[c.X] += c.Coverage
			}
		}

		if want := max(dx, dy) + 1; len(perStep) != want {
			t.Errorf("%v-%v: %d dominant-axis steps covered, expected %d", seg[0], seg[1], len(perStep), want)
		}
		for step, total := range perStep {
			if math.Abs(total-1) > 1e-9 {
				t.Errorf("%v-%v: step %d has total coverage %v, expected 1", seg[0], seg[1], step, total)
			}
		}
	}
}

func TestWuShallowLine(t *testing.T) {
	// (0,0)-(4,2): interior columns cross y = 0.5, 1.0, 1.5.
	want := []Cell{
		{Point{0, 0}, 1},
		{Point{1, 0}, 0.5},
		{Point{1, 1}, 0.5},
		{Point{2, 1}, 1},
		{Point{3, 1}, 0.5},
		{Point{3, 2}, 0.5},
		{Point{4, 2}, 1},
	}
	cells := wuLine(Point{0, 0}, Point{4, 2})
	if len(cells) != len(want) {
		t.Fatalf("(0,0)-(4,2) returned %d cells, expected %d: %v", len(cells), len(want), cells)
	}
	for i, c := range cells {
		if c.Point != want[i].Point {
			t.Errorf("cell %d is %v, expected %v", i, c.Point, want[i].Point)
		}
		if math.Abs(c.Coverage-want[i].Coverage) > 1e-9 {
			t.Errorf("cell %d at %v has coverage %v, expected %v", i, c.Point, c.Coverage, want[i].Coverage)
		}
	}
}

// TestWuSteepMirrorsShallow checks that a steep line is the transpose
// of its mirrored shallow line, so axis swapping introduces no gaps or
// coverage changes.
func TestWuSteepMirrorsShallow(t *testing.T) {
	shallow := wuLine(Point{0, 0}, Point{7, 3})
	steep := wuLine(Point{0, 0}, Point{3, 7})
	if len(shallow) != len(steep) {
		t.Fatalf("shallow emitted %d cells, steep emitted %d", len(shallow), len(steep))
	}
	for i := range shallow {
		if steep[i].X != shallow[i].Y || steep[i].Y != shallow[i].X {
			t.Errorf("cell %d: steep %v is not the transpose of shallow %v", i, steep[i].Point, shallow[i].Point)
		}
		if math.Abs(steep[i].Coverage-shallow[i].Coverage) > 1e-9 {
			t.Errorf("cell %d: steep coverage %v, shallow coverage %v", i, steep[i].Coverage, shallow[i].Coverage)
		}
	}
}

func TestWuAxisAlignedNoBlending(t *testing.T) {
	segments := [][2]Point{
		{{0, 0}, {5, 0}},
		{{0, 0}, {0, 5}},
		{{3, 3}, {-2, 3}},
	}
	for _, seg := range segments {
		cells := wuLine(seg[0], seg[1])
		want := max(abs(seg[1].X-seg[0].X), abs(seg[1].Y-seg[0].Y)) + 1
		if len(cells) != want {
			t.Fatalf("%v-%v: %d cells, expected %d single opaque cells", seg[0], seg[1], len(cells), want)
		}
		for _, c := range cells {
			if c.Coverage != 1 {
				t.Errorf("%v-%v: cell %v has coverage %v, expected no blending on an axis-aligned line", seg[0], seg[1], c.Point, c.Coverage)
			}
		}
	}
}
