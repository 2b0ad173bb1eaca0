package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/collision"
	"chosenoffset.com/omegathunder/internal/timer"
)

// LaserState is the lifecycle stage of a projectile. The three states are
// exhaustive.
type LaserState int

const (
	// LaserIdle is a recycled projectile waiting in its ring.
	LaserIdle LaserState = iota
	// LaserTraveling is drawn and moving.
	LaserTraveling
	// LaserHitEffect is drawn as a hit flash.
	LaserHitEffect
)

func (s LaserState) String() string {
	switch s {
	case LaserTraveling:
		return "traveling"
	case LaserHitEffect:
		return "hit_effect"
	default:
		return "idle"
	}
}

// NoTarget marks a laser that has not locked onto an enemy.
const NoTarget = -1

// Laser is a projectile fired by the player or an enemy.
type Laser struct {
	Position   mgl32.Vec3
	Sphere     collision.Sphere
	Trajectory collision.Trajectory
	// Travel is the displacement accumulated since firing.
	Travel mgl32.Vec3
	// WorldShift is the world scroll accumulated since firing.
	WorldShift float32
	Hit        bool
	HitIndex   int
	// Destroyed is set when an enemy laser is deflected by the blade.
	Destroyed bool
	Draw      bool
	HitTimer  timer.Timer
}

// State reports the lifecycle stage.
func (l *Laser) State() LaserState {
	switch {
	case !l.Draw:
		return LaserIdle
	case l.HitTimer.Running():
		return LaserHitEffect
	default:
		return LaserTraveling
	}
}

// Launch places the laser at pos and sends it along dir.
func (l *Laser) Launch(pos mgl32.Vec3, radius float32, dir mgl32.Vec3, velocity float32) {
	l.Recycle()
	l.Position = pos
	l.Sphere = collision.Sphere{Center: pos, Radius: radius}
	l.Trajectory = collision.Trajectory{Direction: dir.Normalize(), Velocity: velocity}
	l.Draw = true
}

// Recycle returns the laser to its idle state.
func (l *Laser) Recycle() {
	l.Travel = mgl32.Vec3{}
	l.WorldShift = 0
	l.Trajectory = collision.Trajectory{Direction: mgl32.Vec3{0, 0, -1}}
	l.Hit = false
	l.HitIndex = NoTarget
	l.Destroyed = false
	l.Draw = false
	l.HitTimer.Stop()
}

// Move advances the laser in a straight line.
func (l *Laser) Move(elapsed float32) {
	d := l.Trajectory.Velocity * elapsed / 1000
	l.Position = l.Position.Add(l.Trajectory.Direction.Mul(d))
	l.Sphere.Center = l.Position
}

// MoveShifted advances a player laser. Its displacement accumulates every
// tick and the world scroll since firing is taken back out of z, so the
// shot keeps pace with a world that moves toward the player.
func (l *Laser) MoveShifted(elapsed, worldDistance float32) {
	l.Travel = l.Travel.Add(l.Trajectory.Direction.Mul(l.Trajectory.Velocity * elapsed / 1000))
	l.WorldShift += worldDistance
	l.Position = l.Position.Add(mgl32.Vec3{l.Travel.X(), l.Travel.Y(), l.Travel.Z() - l.WorldShift})
	l.Sphere.Center = l.Position
}

// Deflect marks an enemy laser as destroyed by the blade and slows it.
func (l *Laser) Deflect(fullSpeed float32) {
	l.Destroyed = true
	if l.Trajectory.Velocity == fullSpeed {
		l.Trajectory.Velocity *= 0.10
	}
}

// PastPlayerRange reports whether a player laser left the play field.
func (l *Laser) PastPlayerRange() bool {
	p := l.Position
	return abs(p.X()) >= MaxProjectileDistance || abs(p.Y()) >= MaxProjectileDistance || p.Z() >= MaxProjectileDistance
}

// PastEnemyRange reports whether an enemy laser left the play field. With
// strict set all three axes are tested; otherwise only depth counts.
func (l *Laser) PastEnemyRange(strict bool) bool {
	p := l.Position
	if strict {
		return abs(p.X()) >= 1000 || abs(p.Y()) >= 1000 || abs(p.Z()) >= MaxProjectileDistance
	}
	return abs(p.Z()) >= MaxProjectileDistance
}

// LaserRing is a fixed set of lasers fired round robin.
type LaserRing struct {
	Lasers []Laser
	next   int
}

// NewLaserRing returns a ring of n idle lasers.
func NewLaserRing(n int) LaserRing {
	r := LaserRing{Lasers: make([]Laser, n)}
	r.Reset()
	return r
}

// Reset recycles every laser and rewinds the index.
func (r *LaserRing) Reset() {
	for i := range r.Lasers {
		r.Lasers[i].Recycle()
	}
	r.next = 0
}

// Next returns the laser at the firing index and advances the index, or nil
// when that laser is still in flight.
func (r *LaserRing) Next() *Laser {
	l := &r.Lasers[r.next]
	if l.Draw {
		return nil
	}
	r.next = (r.next + 1) % len(r.Lasers)
	return l
}

// Index returns the next firing index.
func (r *LaserRing) Index() int { return r.next }

// Active counts drawn lasers.
func (r *LaserRing) Active() int {
	n := 0
	for i := range r.Lasers {
		if r.Lasers[i].Draw {
			n++
		}
	}
	return n
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
