// Package scene records what one game frame wants drawn. The simulation
// fills a Frame; a render backend replays it.
package scene

//go:generate go tool mockgen -destination=../../mocks/drawer_mock.go -package=mocks . Drawer

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/render/lighting"
)

// Texture identifies a sprite sheet or a flat texture.
type Texture int

// Textures used by billboards and the HUD.
const (
	TexNone Texture = iota
	TexLaserBlue
	TexLaserRed
	TexExplosion1
	TexExplosion2
	TexExplosion3
	TexRunCharge
	TexLevelUp
	TexDestructShock
	TexDestructCharge
	TexDestructChargeLoop
	TexDestructFlash
	TexFadeWhite
	TexFonts
	textureCount
)

// TextureCount is the number of distinct textures.
const TextureCount = int(textureCount)

// Mesh identifies a model.
type Mesh int

// Models drawn in the world.
const (
	MeshRaiu Mesh = iota
	MeshHoshu
	MeshLaserBlue
	MeshLaserRed
	MeshGround
	MeshStructure1
	MeshStructure2
	MeshStructure3
	MeshStructure4
	MeshFence
	MeshSkydome
)

// Color is a linear RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// Pose is the animation state the renderer applies to the player model.
type Pose struct {
	AimX      float32 // 0 full left, 0.5 centre, 1 full right
	AimY      float32 // 0 full up, 0.5 centre, 1 full down
	Swing     float32 // blade swing weight
	SwingType float32 // 0 first swing, 1 combo swing
	Phase     float32 // normalized time of the active clip
	Tree      string
}

// Model is one mesh placed in the world.
type Model struct {
	Mesh     Mesh
	Position mgl32.Vec3
	Scale    float32
	// Yaw rotates the model (or its turret) about the y axis, in degrees.
	Yaw  float32
	Tint Color
	Pose *Pose
}

// Billboard is a camera-facing quad showing one cell of a 4x4 sheet.
type Billboard struct {
	Texture        Texture
	Normal         mgl32.Vec3
	Position       mgl32.Vec3
	Scale          mgl32.Vec3
	U, V           float32
	AlphaThreshold int
}

// Camera describes the projection for the frame.
type Camera struct {
	View mgl32.Mat4
	Eye  mgl32.Vec3
	FOV  float32
	Near float32
	Far  float32
}

// Glyph is one digit cell of the font sheet.
type Glyph struct {
	U, V float32
}

// HUD is the in-game overlay.
type HUD struct {
	HPFactor   float32
	HPLow      bool
	HP         []Glyph
	MaxHP      []Glyph
	GunLevel   []Glyph
	BladeLevel []Glyph
	Score      []Glyph
	Time       string
	Paused     bool
}

// Menu is the title or help overlay.
type Menu struct {
	Title     string
	Items     []string
	Selection int
	Lines     []string
}

// Summary is the game over overlay.
type Summary struct {
	Win      bool
	Score    []Glyph
	Hours    []Glyph
	Minutes  []Glyph
	Seconds  []Glyph
	Defeated []Glyph
}

// Drawer accepts world-space draw calls.
type Drawer interface {
	DrawModel(m Model)
	DrawBillboard(b Billboard)
}

// Frame is the complete set of draw calls for one presented frame.
type Frame struct {
	Clear      Color
	Camera     Camera
	Ambient    Color
	Lights     []lighting.LightSource
	Models     []Model
	Billboards []Billboard
	HUD        *HUD
	Menu       *Menu
	Summary    *Summary
	Loading    bool

	// ScreenshotPrefix asks the presenter to save the frame after drawing.
	ScreenshotPrefix string
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Reset clears the frame for reuse, keeping slice capacity.
func (f *Frame) Reset() {
	f.Clear = Color{}
	f.Camera = Camera{}
	f.Ambient = Color{}
	f.Lights = f.Lights[:0]
	f.Models = f.Models[:0]
	f.Billboards = f.Billboards[:0]
	f.HUD = nil
	f.Menu = nil
	f.Summary = nil
	f.Loading = false
	f.ScreenshotPrefix = ""
}

// DrawModel records a model.
func (f *Frame) DrawModel(m Model) {
	f.Models = append(f.Models, m)
}

// DrawBillboard records a billboard.
func (f *Frame) DrawBillboard(b Billboard) {
	f.Billboards = append(f.Billboards, b)
}

// SetCamera sets the frame's camera.
func (f *Frame) SetCamera(c Camera) {
	f.Camera = c
}

// SetLights copies the enabled lights into the frame.
func (f *Frame) SetLights(lights []lighting.LightSource) {
	f.Lights = append(f.Lights[:0], lights...)
}
