// Package vmath holds the few scalar and vector helpers the game needs on top
// of mgl32. The world is left-handed: +x is right, +y is up, +z is forward.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the up vector used for every camera and strafe computation.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Forward is the fixed forward axis of the lane the player runs along.
var Forward = mgl32.Vec3{0, 0, 1}

// Lerp returns a + t*(b-a).
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// InverseLerp blends from end toward start as t goes from 0 to 1:
// t=1 yields start and t=0 yields end.
func InverseLerp(start, end, t float32) float32 {
	return start - (1-t)*(start-end)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RotateXY rotates v by pitch degrees about the x axis and then by yaw
// degrees about the y axis.
func RotateXY(v mgl32.Vec3, pitch, yaw float32) mgl32.Vec3 {
	rx := mgl32.Rotate3DX(mgl32.DegToRad(pitch))
	ry := mgl32.Rotate3DY(mgl32.DegToRad(yaw))
	return ry.Mul3(rx).Mul3x1(v)
}

// RotateY rotates v by yaw degrees about the y axis.
func RotateY(v mgl32.Vec3, yaw float32) mgl32.Vec3 {
	return mgl32.Rotate3DY(mgl32.DegToRad(yaw)).Mul3x1(v)
}

// AngleBetween returns the unsigned angle between a and b in degrees.
func AngleBetween(a, b mgl32.Vec3) float32 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	c := a.Dot(b) / (la * lb)
	c = Clamp(c, -1, 1)
	return mgl32.RadToDeg(float32(math.Acos(float64(c))))
}

// Ray is a half line starting at Origin.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Plane is the set of points p with Normal·p + D = 0.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// GroundPlane is y = 0.
var GroundPlane = Plane{Normal: WorldUp}

// IntersectPlane reports where r crosses p, provided the crossing lies within
// maxDist units of the ray origin. Both faces of the plane count.
func (r Ray) IntersectPlane(p Plane, maxDist float32) (mgl32.Vec3, bool) {
	denom := p.Normal.Dot(r.Direction)
	if mgl32.Abs(denom) < mgl32.Epsilon {
		return mgl32.Vec3{}, false
	}
	t := -(p.Normal.Dot(r.Origin) + p.D) / denom
	if t < 0 || t*r.Direction.Len() > maxDist {
		return mgl32.Vec3{}, false
	}
	return r.Origin.Add(r.Direction.Mul(t)), true
}

// LookAt builds the view matrix for a camera at eye looking at target.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}
