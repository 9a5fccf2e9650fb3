// Package render defines backend-agnostic rendering, input, and engine
// interfaces so application logic stays independent of the underlying
// graphics library.
package render

import (
	"image"
	"image/color"
)

// Renderer draws primitive shapes and text onto images. It abstracts
// the underlying graphics engine so the drawing logic can be exercised
// without a window.
type Renderer interface {
	// NewImage creates a new image with the given dimensions.
	NewImage(width, height int) Image

	// Shape operations
	FillRect(dst Image, x, y, w, h float32, clr color.Color)
	StrokeRect(dst Image, x, y, w, h, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
}

// Image represents a renderable surface.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Resource management
	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the application reacts to
const (
	KeyC      Key = iota // Clears the canvas
	KeyEscape            // Cancels a pending first click
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the application interface that the engine will call.
type Game interface {
	// Update updates the application logic. It is called every tick
	// (typically 60 times per second).
	Update() error

	// Draw draws the application screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns
	// the logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the main loop with the provided game. This is a
	// blocking call that runs until the window closes.
	RunGame(game Game) error
}
