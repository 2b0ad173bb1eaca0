package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/collision"
	"chosenoffset.com/omegathunder/internal/timer"
)

// Player weapon tuning.
const (
	GunDelay       = 250 // ms between shots
	LaserSpeed     = 1000
	BladeDelay     = 750 // ms a swing sequence lasts
	ComboFrom      = 150 // second swing window, ms into the first
	ComboTo        = 350
	SwingActive    = 300 // blade hurts for this long on a single swing
	ComboActive    = 400 // and this long when the combo follows
	HealAmount     = RaiuMaxHP / 4
	gunBaseDamage  = 25
	bladeInitDmg   = 40
	bladeLevelDmg  = 50
	gunMuzzleShift = 1.0
)

// Swing is what a blade press started.
type Swing int

const (
	// SwingNone means the press did nothing.
	SwingNone Swing = iota
	// SwingFirst started a new swing.
	SwingFirst
	// SwingCombo chained the second swing.
	SwingCombo
)

// Blade is the melee swing state. Swing two only chains from inside the
// combo window of swing one.
type Blade struct {
	Timer  timer.Timer
	First  bool
	Second bool
	Delay  float32
}

// Press handles a blade button press.
func (b *Blade) Press() Swing {
	s := SwingNone
	if !b.Timer.Running() {
		b.Timer.Start()
		b.First = true
		s = SwingFirst
	}
	if b.First && !b.Second && b.Timer.Within(ComboFrom, ComboTo) {
		b.Second = true
		s = SwingCombo
	}
	return s
}

// Active reports whether the blade currently hurts.
func (b *Blade) Active() bool {
	if !b.Timer.Running() {
		return false
	}
	if b.Second {
		return b.Timer.Elapsed() <= ComboActive
	}
	return b.First && b.Timer.Elapsed() <= SwingActive
}

// Advance moves the swing forward and ends it after Delay. It returns the
// activity the swing had at the start of the tick.
func (b *Blade) Advance(elapsed float32) (active bool) {
	if !b.Timer.Running() {
		return false
	}
	active = b.Active()
	if b.Timer.Reached(b.Delay) {
		b.Cancel()
	} else {
		b.Timer.Advance(elapsed)
	}
	return active
}

// Cancel ends any swing.
func (b *Blade) Cancel() {
	b.Timer.Stop()
	b.First = false
	b.Second = false
}

// Raiu is the player.
type Raiu struct {
	Position mgl32.Vec3
	Heading  mgl32.Vec3
	Sphere   collision.Sphere

	HP          int
	BladeLevel  int
	BladeDamage int
	Blade       Blade
	GunLevel    int
	GunDamage   int
	Gun         timer.Cooldown
	Exp         int
	Lasers      LaserRing
}

// NewRaiu returns a full health level one player.
func NewRaiu() *Raiu {
	r := &Raiu{Lasers: NewLaserRing(RaiuMaxLaserCount)}
	r.Reset()
	return r
}

// Reset restores the starting loadout.
func (r *Raiu) Reset() {
	r.Position = mgl32.Vec3{}
	r.Heading = mgl32.Vec3{0, 0, 1}
	r.HP = RaiuMaxHP
	r.BladeLevel = 1
	r.BladeDamage = bladeInitDmg * r.BladeLevel
	r.Blade = Blade{Delay: BladeDelay}
	r.GunLevel = 1
	r.GunDamage = gunBaseDamage * r.GunLevel
	r.Gun = timer.NewCooldown(GunDelay)
	r.Exp = 0
	r.Lasers.Reset()
	r.Place(r.Position, r.Heading)
}

// Place moves the player and its bounding sphere.
func (r *Raiu) Place(pos, heading mgl32.Vec3) {
	r.Position = pos
	r.Heading = heading
	r.Sphere = sphereAt(pos, RaiuCenterY, RaiuRadius)
}

// Fire launches a laser from the gun if the cooldown and the ring allow it.
func (r *Raiu) Fire() *Laser {
	if !r.Gun.Ready() {
		return nil
	}
	l := r.Lasers.Next()
	if l == nil {
		return nil
	}
	r.Gun.Reset()
	muzzle := r.Sphere.Center.Add(mgl32.Vec3{gunMuzzleShift, 0, 0})
	l.Launch(muzzle, LaserRadius, r.Heading, LaserSpeed)
	return l
}

// Damage removes hp, never below zero, and reports whether the player is
// down.
func (r *Raiu) Damage(n int) bool {
	r.HP -= n
	if r.HP < 0 {
		r.HP = 0
	}
	return r.HP == 0
}

// Heal adds hp up to the maximum.
func (r *Raiu) Heal(n int) {
	r.HP += n
	if r.HP > RaiuMaxHP {
		r.HP = RaiuMaxHP
	}
}

// HPFactor is hp as a share of the maximum, in [0,1].
func (r *Raiu) HPFactor() float32 {
	if r.HP <= 0 {
		return 0
	}
	return float32(r.HP) / RaiuMaxHP
}

// LevelUp raises both weapons when the experience for the current level is
// reached. It reports whether a level was gained.
func (r *Raiu) LevelUp(thresholds [MaxLevel]int) bool {
	lv := r.BladeLevel
	if r.GunLevel < lv {
		lv = r.GunLevel
	}
	if lv >= MaxLevel || r.Exp < thresholds[lv] {
		return false
	}
	r.BladeLevel++
	r.BladeDamage = bladeLevelDmg * r.BladeLevel
	r.GunLevel++
	r.GunDamage = gunBaseDamage * r.GunLevel
	r.Gun.Fill()
	r.Exp = 0
	return true
}
