package entity

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/collision"
)

// Health pad tuning.
const (
	HealSpawnLimit   = 60_000 // ms
	healChanceHigh   = 0.0001
	healChanceLow    = 0.01
	healSpawnBorder  = BoundaryX - 8
	healLowHPPercent = 0.75
)

// HealChance is the per tick spawn chance for a player at hp.
func HealChance(hp int) float32 {
	if float32(hp) > RaiuMaxHP*healLowHPPercent {
		return healChanceHigh
	}
	return healChanceLow
}

// HealPad is the single electric fence pickup.
type HealPad struct {
	Position  mgl32.Vec3
	Sphere    collision.Sphere
	HealAmt   int
	Draw      bool
	Particles bool
}

// Spawn places the pad if it is not already out and the roll passes.
func (p *HealPad) Spawn(rng *rand.Rand, chance float32) bool {
	if p.Draw || chance < rng.Float32() {
		return false
	}
	x := rng.Float32()*healSpawnBorder*2 - healSpawnBorder
	p.Place(mgl32.Vec3{x, 0, SpawnZ})
	p.HealAmt = HealAmount
	p.Draw = true
	p.Particles = true
	return true
}

// Place moves the pad and its bounding sphere.
func (p *HealPad) Place(pos mgl32.Vec3) {
	p.Position = pos
	p.Sphere = sphereAt(pos, HealPadCenterY, HealPadRadius)
}

// Scroll moves the pad toward the player.
func (p *HealPad) Scroll(distance float32) {
	p.Place(p.Position.Sub(mgl32.Vec3{0, 0, distance}))
}

// Consume turns off the particles once the pad has healed.
func (p *HealPad) Consume() {
	p.Particles = false
}

// Remove takes the pad out of the world.
func (p *HealPad) Remove() {
	p.Draw = false
	p.Particles = false
}
