package lighting

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGB light color with components in [0,1].
type Color struct {
	R, G, B float32
}

// Scale returns c with every component multiplied by f.
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// Named light colors.
var (
	LaserRed        = Color{1, 0.5, 0.5}
	LightningPurple = Color{0.5, 0, 1}
	LightningBlue   = Color{0, 0.9, 1}
	LightningGreen  = Color{0.01, 1, 0.5}
	BlueCyan        = Color{0, 0.5, 1}
	ExplosionOrange = Color{1, 0.6, 0.2}
	White           = Color{1, 1, 1}
)

// Attenuation holds the point light falloff terms.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultAttenuation is used when a caller does not pass explicit terms.
var DefaultAttenuation = Attenuation{Quadratic: 0.05}

// WideAttenuation is the gentler falloff used for explosions and the heal pad.
var WideAttenuation = Attenuation{Quadratic: 0.001}

// LightSource represents a single point light in the game world
type LightSource struct {
	Position    mgl32.Vec3
	Color       Color
	Range       float32
	Attenuation Attenuation
	Enabled     bool
}

// ID names one of the fixed light slots.
type ID int

// Light slots. Structure lights follow StructureLight0 contiguously.
const (
	RaiuLight ID = iota
	ExplosionLight
	HealPadLight
	StructureLight0
)

// MaxStructureLights is the number of structure light slots.
const MaxStructureLights = 5

const lightCount = int(StructureLight0) + MaxStructureLights

// Flicker timing.
const (
	FlickerRate     = 300  // ms between random walk decisions
	OutputVariance  = 0.95 // share of the color the walk may remove
	FlipProbability = 0.4
	maxWalkSpeed    = 0.01
)

// Flicker is the smoothed random walk that modulates a light's output. It
// keeps its state across calls.
type Flicker struct {
	variance float32
	speed    float32
	inc      float32
	total    float32
}

// NewFlicker returns a walk starting at half variance, not moving.
func NewFlicker() Flicker {
	return Flicker{variance: OutputVariance / 2, inc: 1}
}

// Step advances the walk by elapsed ms and returns the output factor in
// [1-OutputVariance, 1].
func (f *Flicker) Step(rng *rand.Rand, elapsed float32) float32 {
	f.total += elapsed
	if f.total >= FlickerRate {
		if rng.Float32() < FlipProbability {
			f.inc = -f.inc
			f.speed = rng.Float32() * maxWalkSpeed
		}
		f.total -= FlickerRate
	}

	f.variance += f.speed * f.inc * elapsed
	if f.variance < 0 {
		f.variance = 0
	} else if f.variance > OutputVariance {
		f.variance = OutputVariance
	}
	return (1 - OutputVariance) + OutputVariance*f.variance
}

// Variance returns the current walk value.
func (f *Flicker) Variance() float32 { return f.variance }

// Manager handles all light sources in the game
type Manager struct {
	lights       [lightCount]LightSource
	flickers     [lightCount]Flicker
	ambientLight Color
	rng          *rand.Rand
}

// NewManager creates a new lighting manager
func NewManager(rng *rand.Rand) *Manager {
	m := &Manager{
		ambientLight: Color{0.25, 0.25, 0.25},
		rng:          rng,
	}
	for i := range m.flickers {
		m.flickers[i] = NewFlicker()
	}
	return m
}

// SetAmbientLight sets the global ambient light level
func (m *Manager) SetAmbientLight(c Color) {
	m.ambientLight = c
}

// AmbientLight returns the current ambient light level
func (m *Manager) AmbientLight() Color {
	return m.ambientLight
}

// Update moves a light, sets its color and range and, when flicker is set,
// advances that light's random walk and scales the color by it. An omitted
// attenuation uses DefaultAttenuation.
func (m *Manager) Update(id ID, c Color, pos mgl32.Vec3, lightRange, elapsed float32, flicker bool, atten ...Attenuation) {
	a := DefaultAttenuation
	if len(atten) > 0 {
		a = atten[0]
	}
	if flicker {
		c = c.Scale(m.flickers[id].Step(m.rng, elapsed))
	}
	l := &m.lights[id]
	l.Position = pos
	l.Color = c
	l.Range = lightRange
	l.Attenuation = a
}

// Enable turns a light on.
func (m *Manager) Enable(id ID) { m.lights[id].Enabled = true }

// Disable turns a light off.
func (m *Manager) Disable(id ID) { m.lights[id].Enabled = false }

// Light returns a copy of one light slot.
func (m *Manager) Light(id ID) LightSource { return m.lights[id] }

// DisableAll turns every light off.
func (m *Manager) DisableAll() {
	for i := range m.lights {
		m.lights[i].Enabled = false
	}
}

// GetAllLights returns all enabled light sources
func (m *Manager) GetAllLights() []LightSource {
	lights := make([]LightSource, 0, lightCount)
	for _, l := range m.lights {
		if l.Enabled {
			lights = append(lights, l)
		}
	}
	return lights
}
