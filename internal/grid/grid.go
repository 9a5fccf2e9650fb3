// Package grid maps between window pixels and grid cells and draws the
// cell grid onto a render surface.
package grid

import (
	"image/color"

	"github.com/getkid/GIIS/internal/raster"
	"github.com/getkid/GIIS/internal/render"
)

// CellAt converts a window pixel position to the grid cell containing
// it. Cells are cellSize pixels square, with cell (0,0) anchored at the
// window origin.
func CellAt(px, py, cellSize int) raster.Point {
	return raster.Point{X: floorDiv(px, cellSize), Y: floorDiv(py, cellSize)}
}

// Clip returns the cells that fall inside a cols x rows viewport
// anchored at cell (0,0), preserving order.
func Clip(cells []raster.Cell, cols, rows int) []raster.Cell {
	out := make([]raster.Cell, 0, len(cells))
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= cols || c.Y >= rows {
			continue
		}
		out = append(out, c)
	}
	return out
}

// floorDiv rounds the quotient toward negative infinity, so pixels left
// of or above the origin map to negative cells instead of clustering
// around cell zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Canvas draws the cell grid and rasterized cells onto render images.
type Canvas struct {
	Renderer render.Renderer

	CellSize   int
	LineColor  color.RGBA
	Background color.RGBA
	Outline    color.RGBA
}

// DrawBackground fills dst with the background color and draws grid
// lines every CellSize pixels across the full surface.
func (c *Canvas) DrawBackground(dst render.Image) {
	dst.Fill(c.Background)
	w, h := dst.Size()
	for x := 0; x <= w; x += c.CellSize {
		c.Renderer.StrokeLine(dst, float32(x), 0, float32(x), float32(h), 1, c.LineColor)
	}
	for y := 0; y <= h; y += c.CellSize {
		c.Renderer.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, c.LineColor)
	}
}

// DrawCells draws each cell as a filled, outlined square at its grid
// position, blending partially covered cells toward the background.
// Cells outside the visible surface are dropped.
func (c *Canvas) DrawCells(dst render.Image, cells []raster.Cell, fg color.RGBA) {
	w, h := dst.Size()
	cols := (w + c.CellSize - 1) / c.CellSize
	rows := (h + c.CellSize - 1) / c.CellSize
	size := float32(c.CellSize)
	for _, cell := range Clip(cells, cols, rows) {
		clr := raster.Blend(fg, c.Background, cell.Coverage)
		x := float32(cell.X * c.CellSize)
		y := float32(cell.Y * c.CellSize)
		c.Renderer.FillRect(dst, x, y, size, size, clr)
		c.Renderer.StrokeRect(dst, x, y, size, size, 1, c.Outline)
	}
}
