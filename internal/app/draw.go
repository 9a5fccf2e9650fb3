package app

import (
	"github.com/getkid/GIIS/internal/render"
)

// Radius of the click marker dot, in pixels
const markerRadius = 3

// Draw renders the grid, the drawn segments, click markers, messages,
// and the UI overlay.
func (a *App) Draw(screen render.Image) {
	a.canvas.DrawBackground(screen)

	for _, s := range a.segments {
		a.canvas.DrawCells(screen, s.player.Visible(), a.palette.Foreground)
	}

	for _, m := range a.markers {
		a.renderer.FillCircle(screen, m.x, m.y, markerRadius, a.palette.Marker)
	}

	a.drawMessages(screen)

	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) drawMessages(screen render.Image) {
	_, h := screen.Size()
	for i, msg := range a.messages {
		a.renderer.DrawText(screen, msg.text, 10, h-24-16*i, a.palette.Foreground)
	}
}
