// Package collision provides the two sphere tests the simulation uses: a
// swept test for moving spheres and a plain static overlap test.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Seconds is the sweep window the game uses, in milliseconds.
const Seconds = 1000.0

// Sphere is a bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Trajectory is a direction and a speed in units per second.
type Trajectory struct {
	Direction mgl32.Vec3
	Velocity  float32
}

// Relation is the result of a swept test.
type Relation int

const (
	// Outside means the spheres do not meet within the window.
	Outside Relation = iota
	// Intersect means the spheres meet at a time inside the window.
	Intersect
	// Inside means the spheres already overlap at the start of the window.
	Inside
)

func (r Relation) String() string {
	switch r {
	case Intersect:
		return "intersect"
	case Inside:
		return "inside"
	default:
		return "outside"
	}
}

// velocityPerMs returns the displacement of t over one millisecond.
func (t Trajectory) velocityPerMs() mgl32.Vec3 {
	if t.Velocity == 0 {
		return mgl32.Vec3{}
	}
	return t.Direction.Normalize().Mul(t.Velocity / 1000)
}

// SweptSphereCollision moves a along ta and b along tb for timeUnit
// milliseconds and reports whether they touch. The returned time is in
// milliseconds from the start of the window; it is zero or negative when the
// spheres already overlap.
func SweptSphereCollision(a Sphere, ta Trajectory, timeUnit float32, b Sphere, tb Trajectory) (Relation, float32) {
	d := a.Center.Sub(b.Center)
	v := ta.velocityPerMs().Sub(tb.velocityPerMs())
	r := a.Radius + b.Radius

	qa := v.Dot(v)
	qb := 2 * d.Dot(v)
	qc := d.Dot(d) - r*r

	if qc <= 0 {
		if qa == 0 {
			return Inside, 0
		}
		disc := qb*qb - 4*qa*qc
		t0 := (-qb - float32(math.Sqrt(float64(disc)))) / (2 * qa)
		return Inside, t0
	}

	if qa == 0 {
		return Outside, 0
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return Outside, 0
	}
	t0 := (-qb - float32(math.Sqrt(float64(disc)))) / (2 * qa)
	if t0 < 0 || t0 > timeUnit {
		return Outside, 0
	}
	return Intersect, t0
}

// StaticSphereOverlap reports whether a and b touch right now.
func StaticSphereOverlap(a, b Sphere) bool {
	return a.Center.Sub(b.Center).Len() <= a.Radius+b.Radius
}
