package ebiten

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/omegathunder/internal/render"
	"chosenoffset.com/omegathunder/internal/render/scene"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	sheets    [scene.TextureCount]*ebiten.Image
	alphaTest *ebiten.Shader
	labels    map[string]*ebiten.Image
	stale     bool
}

// NewRenderer creates a new Ebiten-based render. Sprite sheets and the
// alpha test shader are built on the first frame.
func NewRenderer() *EbitenRenderer {
	return &EbitenRenderer{stale: true}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// Reinit drops every device resource so the next frame rebuilds them.
func (r *EbitenRenderer) Reinit() {
	r.stale = true
}

func (r *EbitenRenderer) rebuild() {
	for i, s := range r.sheets {
		if s != nil {
			s.Deallocate()
			r.sheets[i] = nil
		}
	}
	for _, l := range r.labels {
		l.Deallocate()
	}
	r.labels = make(map[string]*ebiten.Image)

	r.sheets = buildSheets()

	if r.alphaTest == nil {
		s, err := ebiten.NewShader(alphaTestSrc)
		if err != nil {
			log.Printf("Warning: alpha test shader unavailable, effects use plain blending: %v", err)
		} else {
			r.alphaTest = s
		}
	}
	r.stale = false
}

// DrawFrame replays f onto dst.
func (r *EbitenRenderer) DrawFrame(dst render.Image, f *scene.Frame) {
	if r.stale {
		r.rebuild()
	}
	screen := dst.(*EbitenImage).img
	p := painter{r: r, dst: screen}
	p.paint(f)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Snapshot reads the pixels back. Ebiten only allows this once the game
// loop runs, so it must be called from Draw.
func (i *EbitenImage) Snapshot() image.Image {
	b := i.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	i.img.ReadPixels(out.Pix)
	return out
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Deallocate()
	}
}

// GetEbitenImage returns the underlying ebiten.Image.
// This is useful for interop with ebiten-specific code.
func (i *EbitenImage) GetEbitenImage() *ebiten.Image {
	return i.img
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game. The loop keeps ticking
// while the window is unfocused so the game sees focus changes, and closing
// the window is reported as an input event instead of ending the loop.
func (e *EbitenEngine) RunGame(game render.Game) error {
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
