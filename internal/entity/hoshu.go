package entity

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/collision"
	"chosenoffset.com/omegathunder/internal/position"
	"chosenoffset.com/omegathunder/internal/timer"
	"chosenoffset.com/omegathunder/internal/vmath"
)

// Enemy tuning.
const (
	EnemyGunDelay   = 1000
	EnemyLaserSpeed = 750
	EnemySpawnRate  = 0.05
	hoshuHP         = 100
	hoshuScore      = 200
	hoshuExp        = 100
	hoshuGunDamage  = 10
	maxFireRate     = 0.1
)

// hoshuNormal is the direction an unrotated turret faces.
var hoshuNormal = mgl32.Vec3{0, 0, -1}

// Hoshu is one enemy slot.
type Hoshu struct {
	Position  mgl32.Vec3
	Sphere    collision.Sphere
	Level     int
	HP        int
	Score     int
	Exp       int
	GunDamage int
	Gun       timer.Cooldown
	FireRate  float32
	Lasers    LaserRing
	Draw      bool

	Explosion     timer.Timer
	ExplosionType int // 1..3 once chosen, 0 before
	ExplosionSnd  bool
	BladeMark1    bool
	BladeMark2    bool
	// TurretYaw is the last aim angle in degrees.
	TurretYaw float32
}

// Exploding reports whether the death effect is playing.
func (h *Hoshu) Exploding() bool { return h.Explosion.Running() }

// Place moves the enemy and its bounding sphere.
func (h *Hoshu) Place(pos mgl32.Vec3) {
	h.Position = pos
	h.Sphere = sphereAt(pos, HoshuCenterY, HoshuRadius)
}

// Scroll moves the enemy toward the player by the world distance.
func (h *Hoshu) Scroll(distance float32) {
	h.Place(h.Position.Sub(mgl32.Vec3{0, 0, distance}))
}

// TryExplode starts the explosion when hp is gone and no explosion is
// running. It reports whether this call started it.
func (h *Hoshu) TryExplode() bool {
	if h.Explosion.Running() || h.HP > 0 {
		return false
	}
	h.Explosion.Start()
	return true
}

// BladeHit applies swing damage at most once per swing and reports whether
// any damage landed.
func (h *Hoshu) BladeHit(b *Blade, damage int) bool {
	hit := false
	if b.First {
		if !h.BladeMark1 {
			h.HP -= damage
			h.BladeMark1 = true
			hit = true
		}
		if b.Second && !h.BladeMark2 {
			h.HP -= damage
			h.BladeMark2 = true
			hit = true
		}
	}
	return hit
}

// ClearBladeMarks makes the enemy vulnerable to the next swing.
func (h *Hoshu) ClearBladeMarks() {
	h.BladeMark1 = false
	h.BladeMark2 = false
}

// Deactivate frees the slot.
func (h *Hoshu) Deactivate() {
	h.Explosion.Stop()
	h.ExplosionType = 0
	h.ExplosionSnd = false
	h.Draw = false
}

// Aim turns the turret toward target, clamped to the turret's arc, and
// returns the yaw in degrees.
func (h *Hoshu) Aim(target mgl32.Vec3) float32 {
	view := mgl32.Vec3{-(target.X() - h.Position.X()), 0, target.Z() - h.Position.Z()}
	angle := vmath.AngleBetween(hoshuNormal, view)
	if view.X()-hoshuNormal.X() < 0 {
		angle = -angle
	}
	if angle > position.RotateRightMax {
		angle = position.RotateRightMax
	} else if angle < position.RotateLeftMax {
		angle = position.RotateLeftMax
	}
	h.TurretYaw = angle
	return angle
}

// Fire launches a laser along the turret when the cooldown and the fire
// rate roll allow it.
func (h *Hoshu) Fire(rng *rand.Rand) *Laser {
	if !h.Gun.Ready() {
		return nil
	}
	if h.Lasers.Lasers[h.Lasers.Index()].Draw {
		return nil
	}
	if h.FireRate < rng.Float32() {
		return nil
	}
	l := h.Lasers.Next()
	muzzle := h.Sphere.Center.Sub(mgl32.Vec3{0, 0.5, 0})
	dir := vmath.RotateY(hoshuNormal, h.TurretYaw)
	l.Launch(muzzle, LaserRadius*EnemyLaserScale, dir, EnemyLaserSpeed)
	h.Gun.Reset()
	return l
}

// HoshuPool is the fixed set of enemy slots. Spawns go round robin over the
// first Cap slots and only into a free slot.
type HoshuPool struct {
	Slots []Hoshu
	// Cap is the number of slots currently in use.
	Cap   int
	Count int
	index int
}

// NewHoshuPool returns MaxEnemyCount free slots with cap slots in use.
func NewHoshuPool(cap int) *HoshuPool {
	p := &HoshuPool{Slots: make([]Hoshu, MaxEnemyCount)}
	for i := range p.Slots {
		p.Slots[i].Lasers = NewLaserRing(HoshuMaxLaserCount)
	}
	p.Reset(cap)
	return p
}

// Reset frees every slot.
func (p *HoshuPool) Reset(cap int) {
	for i := range p.Slots {
		h := &p.Slots[i]
		h.Deactivate()
		h.ClearBladeMarks()
		h.Lasers.Reset()
	}
	p.Cap = cap
	p.Count = 0
	p.index = 0
}

// Raise grows the number of usable slots.
func (p *HoshuPool) Raise(n int) {
	p.Cap += n
	if p.Cap > len(p.Slots) {
		p.Cap = len(p.Slots)
	}
}

// Index is the slot the next spawn goes to.
func (p *HoshuPool) Index() int { return p.index }

// Spawn activates the slot at the spawn index with the given level when that
// slot is free and the chance roll passes. It returns the slot or nil. Lasers
// the previous occupant fired keep flying.
func (p *HoshuPool) Spawn(rng *rand.Rand, chance float32, level int) *Hoshu {
	h := &p.Slots[p.index]
	if h.Draw {
		return nil
	}
	if chance < rng.Float32() {
		return nil
	}
	x := rng.Float32()*BoundaryX*2 - BoundaryX
	h.Place(mgl32.Vec3{x, 0, SpawnZ})
	h.Level = level
	h.HP = hoshuHP * level
	h.Score = hoshuScore * level
	h.Exp = hoshuExp * level
	h.GunDamage = hoshuGunDamage * level
	h.Gun = timer.NewCooldown(EnemyGunDelay)
	h.Gun.Reset()
	h.FireRate = rng.Float32() * maxFireRate
	h.Explosion.Stop()
	h.ExplosionType = 0
	h.ExplosionSnd = false
	h.ClearBladeMarks()
	h.TurretYaw = 0
	h.Draw = true

	p.Count++
	p.index = (p.index + 1) % p.Cap
	return h
}

// Active returns the slots in use, drawn or not.
func (p *HoshuPool) Active() []Hoshu { return p.Slots[:p.Cap] }
