package playback

import (
	"testing"

	"github.com/getkid/GIIS/internal/raster"
)

func makeCells(n int) []raster.Cell {
	cells := make([]raster.Cell, n)
	for i := range cells {
		cells[i] = raster.Cell{Point: raster.Point{X: i}, Coverage: 1}
	}
	return cells
}

func TestInstantReveal(t *testing.T) {
	p := New(makeCells(5), 0)
	revealed := p.Update(0)
	if len(revealed) != 5 {
		t.Fatalf("instant mode revealed %d cells on first update, expected all 5", len(revealed))
	}
	if !p.Done() {
		t.Error("player not done after instant reveal")
	}
	if more := p.Update(1); more != nil {
		t.Errorf("update after completion revealed %v, expected nothing", more)
	}
}

func TestPacedReveal(t *testing.T) {
	p := New(makeCells(3), 0.05)

	// The first cell appears on the first update.
	if revealed := p.Update(0); len(revealed) != 1 || revealed[0].X != 0 {
		t.Fatalf("first update revealed %v, expected cell 0", revealed)
	}
	// Not enough time for the next cell.
	if revealed := p.Update(0.049); len(revealed) != 0 {
		t.Fatalf("early update revealed %v, expected nothing", revealed)
	}
	// Crossing the interval reveals exactly one more.
	if revealed := p.Update(0.001); len(revealed) != 1 || revealed[0].X != 1 {
		t.Fatalf("interval update revealed %v, expected cell 1", revealed)
	}
	if p.Done() {
		t.Error("player done with one cell still hidden")
	}
	// A long gap reveals the rest, but never more than there is.
	if revealed := p.Update(1); len(revealed) != 1 || revealed[0].X != 2 {
		t.Fatalf("final update revealed %v, expected cell 2", revealed)
	}
	if !p.Done() {
		t.Error("player not done after revealing every cell")
	}

	visible := p.Visible()
	if len(visible) != 3 {
		t.Errorf("Visible returned %d cells, expected 3", len(visible))
	}
}

func TestEmptySequence(t *testing.T) {
	p := New(nil, 0.05)
	if !p.Done() {
		t.Error("player over an empty sequence should already be done")
	}
	if revealed := p.Update(1); revealed != nil {
		t.Errorf("empty player revealed %v", revealed)
	}
}
