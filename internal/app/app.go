// Package app implements the interactive drawing application: the
// two-click segment state machine, drawn segments, debug playback, and
// on-screen messages.
package app

import (
	"image/color"
	"log"

	"github.com/getkid/GIIS/internal/config"
	"github.com/getkid/GIIS/internal/grid"
	"github.com/getkid/GIIS/internal/playback"
	"github.com/getkid/GIIS/internal/raster"
	"github.com/getkid/GIIS/internal/render"
)

// Delta time for timers (assuming 60 FPS)
const tickSeconds = 1.0 / 60.0

// How long on-screen messages stay visible, in seconds
const messageDuration = 3.0

// Overlay is a UI layer drawn above the canvas that may claim pointer
// input (the toolbar).
type Overlay interface {
	Update()
	Draw(dst render.Image)
	Contains(x, y int) bool
}

// marker is a click indicator dot at a window pixel position.
type marker struct {
	x, y float32
}

// segment is one rasterized line being (or already) revealed.
type segment struct {
	player   *playback.Player
	logCells bool // log each cell as it is revealed (debug mode)
}

// message is an on-screen message that expires after a while.
type message struct {
	text     string
	timeLeft float64
}

// App is the drawing application. It implements render.Game.
type App struct {
	renderer render.Renderer
	input    render.InputManager
	overlay  Overlay
	retitle  func(title string)

	canvas     grid.Canvas
	palette    config.Palette
	debugDelay float64 // seconds between cells in debug playback

	algorithm    raster.Algorithm
	algorithmSet bool
	debug        bool

	pendingStart *raster.Point
	markers      []marker
	segments     []*segment
	messages     []message

	reload     <-chan string
	configPath string
}

// New builds the application from a validated configuration.
func New(r render.Renderer, input render.InputManager, cfg config.Config) (*App, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	return &App{
		renderer:   r,
		input:      input,
		palette:    palette,
		debugDelay: float64(cfg.Draw.DebugDelayMS) / 1000,
		canvas: grid.Canvas{
			Renderer:   r,
			CellSize:   cfg.Grid.CellSize,
			LineColor:  palette.LineColor,
			Background: palette.Background,
			Outline:    color.RGBA{A: 255},
		},
	}, nil
}

// SetOverlay installs the UI layer drawn above the canvas.
func (a *App) SetOverlay(overlay Overlay) {
	a.overlay = overlay
}

// SetRetitle installs the window retitle hook used when an algorithm
// is selected.
func (a *App) SetRetitle(retitle func(title string)) {
	a.retitle = retitle
}

// SetReload installs the configuration change feed. Each event makes
// the app reload the file at path and apply it live.
func (a *App) SetReload(events <-chan string, path string) {
	a.reload = events
	a.configPath = path
}

// SelectAlgorithm makes algo the active line algorithm. Previously
// drawn output is not affected.
func (a *App) SelectAlgorithm(algo raster.Algorithm) {
	a.algorithm = algo
	a.algorithmSet = true
	if a.retitle != nil {
		a.retitle(algo.String())
	}
	log.Printf("Algorithm selected: %s", algo)
}

// SetDebug toggles debug mode: paced cell-by-cell drawing with point
// logging for segments drawn from now on.
func (a *App) SetDebug(enabled bool) {
	a.debug = enabled
	log.Printf("Debug mode: %v", enabled)
}

// Clear wipes drawn segments, markers, and any pending click. The
// grid itself remains.
func (a *App) Clear() {
	a.segments = nil
	a.markers = nil
	a.pendingStart = nil
}

// ShowMessage displays a transient message at the bottom of the
// screen.
func (a *App) ShowMessage(text string) {
	a.messages = append(a.messages, message{text: text, timeLeft: messageDuration})
}

// Update handles input and advances timers.
func (a *App) Update() error {
	dt := tickSeconds

	if a.overlay != nil {
		a.overlay.Update()
	}

	a.drainReload()
	a.updateMessages(dt)

	for _, s := range a.segments {
		revealed := s.player.Update(dt)
		if s.logCells {
			for _, c := range revealed {
				log.Printf("Point: %5d %5d", c.X, c.Y)
			}
		}
	}

	if a.input.IsKeyJustPressed(render.KeyEscape) && a.pendingStart != nil {
		a.pendingStart = nil
		if len(a.markers) > 0 {
			a.markers = a.markers[:len(a.markers)-1]
		}
	}
	if a.input.IsKeyJustPressed(render.KeyC) {
		a.Clear()
	}

	if a.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := a.input.GetCursorPosition()
		if a.overlay == nil || !a.overlay.Contains(x, y) {
			a.handleClick(x, y)
		}
	}

	return nil
}

// handleClick advances the two-click state machine: the first click
// records the start cell, the second rasterizes the segment.
func (a *App) handleClick(px, py int) {
	if !a.algorithmSet {
		a.ShowMessage("No algorithm selected.")
		return
	}

	cell := grid.CellAt(px, py, a.canvas.CellSize)
	a.markers = append(a.markers, marker{x: float32(px), y: float32(py)})

	if a.pendingStart == nil {
		a.pendingStart = &cell
		return
	}

	start := *a.pendingStart
	a.pendingStart = nil

	cells := raster.Rasterize(a.algorithm, start, cell)
	interval := 0.0
	if a.debug {
		interval = a.debugDelay
	}
	a.segments = append(a.segments, &segment{
		player:   playback.New(cells, interval),
		logCells: a.debug,
	})
}

func (a *App) updateMessages(dt float64) {
	kept := a.messages[:0]
	for _, m := range a.messages {
		m.timeLeft -= dt
		if m.timeLeft > 0 {
			kept = append(kept, m)
		}
	}
	a.messages = kept
}

func (a *App) drainReload() {
	if a.reload == nil {
		return
	}
	for {
		select {
		case _, ok := <-a.reload:
			if !ok {
				a.reload = nil
				return
			}
			a.applyConfigFile()
		default:
			return
		}
	}
}

// applyConfigFile reloads the configuration file and applies colors,
// cell size, and debug pacing live. Already-drawn cells keep their
// grid coordinates.
func (a *App) applyConfigFile() {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		a.ShowMessage("Config reload failed.")
		return
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		return
	}

	a.palette = palette
	a.canvas.CellSize = cfg.Grid.CellSize
	a.canvas.LineColor = palette.LineColor
	a.canvas.Background = palette.Background
	a.debugDelay = float64(cfg.Draw.DebugDelayMS) / 1000

	log.Printf("Config reloaded from %s", a.configPath)
	a.ShowMessage("Configuration reloaded.")
}

// Layout implements render.Game: the logical screen tracks the window
// size one to one, so the grid refills the window when it is resized.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
