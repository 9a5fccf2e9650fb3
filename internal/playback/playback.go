// Package playback reveals a precomputed cell sequence over time. The
// rasterizer produces its whole output in one call; revealing it cell
// by cell is purely a presentation concern, driven by the frame tick.
package playback

import "github.com/getkid/GIIS/internal/raster"

// Player reveals a cell sequence either instantly or one cell per
// fixed interval.
type Player struct {
	cells    []raster.Cell
	interval float64 // seconds between reveals; 0 means instant
	elapsed  float64
	visible  int
}

// New returns a Player over cells. interval is the delay in seconds
// between consecutive reveals; 0 (or negative) reveals everything on
// the first update. In paced mode the first cell appears on the first
// update rather than after one full interval.
func New(cells []raster.Cell, interval float64) *Player {
	return &Player{
		cells:    cells,
		interval: interval,
		elapsed:  interval,
	}
}

// Update advances the player by dt seconds and returns the cells newly
// revealed during this update, in order.
func (p *Player) Update(dt float64) []raster.Cell {
	if p.visible >= len(p.cells) {
		return nil
	}
	if p.interval <= 0 {
		revealed := p.cells[p.visible:]
		p.visible = len(p.cells)
		return revealed
	}
	p.elapsed += dt
	start := p.visible
	for p.elapsed >= p.interval && p.visible < len(p.cells) {
		p.elapsed -= p.interval
		p.visible++
	}
	return p.cells[start:p.visible]
}

// Visible returns the revealed prefix of the sequence.
func (p *Player) Visible() []raster.Cell {
	return p.cells[:p.visible]
}

// Done reports whether every cell has been revealed.
func (p *Player) Done() bool {
	return p.visible >= len(p.cells)
}
