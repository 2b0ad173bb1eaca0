// Package render abstracts the graphics backend. The simulation never talks
// to a backend directly: it records a scene.Frame, and the Renderer replays
// that frame onto an Image once per presented frame.
package render

import (
	"image"
	"image/color"

	"chosenoffset.com/omegathunder/internal/render/scene"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// NewImage creates an offscreen surface.
	NewImage(width, height int) Image

	// DrawFrame replays a recorded frame onto dst.
	DrawFrame(dst Image, f *scene.Frame)

	// Reinit re-applies the device state frame replay depends on. It is
	// called after the window regains focus; nothing set before losing
	// focus is assumed to have survived.
	Reinit()
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Snapshot copies the current pixels out of the surface.
	Snapshot() image.Image

	// Resource management
	Dispose()
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
