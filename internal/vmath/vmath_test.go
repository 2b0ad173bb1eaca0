package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInverseLerpEndpoints(t *testing.T) {
	if got := InverseLerp(100, 0, 1); got != 100 {
		t.Errorf("Expected 100 at t=1, got %f", got)
	}
	if got := InverseLerp(100, 0, 0); got != 0 {
		t.Errorf("Expected 0 at t=0, got %f", got)
	}
	if got := InverseLerp(500, 100, 0.5); got != 300 {
		t.Errorf("Expected 300 at t=0.5, got %f", got)
	}
}

func TestRotateXYMatchesLaneConvention(t *testing.T) {
	// positive yaw turns right (+x), positive pitch looks down (-y)
	right := RotateXY(Forward, 0, 90)
	if !right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Expected yaw 90 to face +x, got %v", right)
	}
	down := RotateXY(Forward, 90, 0)
	if !down.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5) {
		t.Errorf("Expected pitch 90 to face -y, got %v", down)
	}
}

func TestAngleBetween(t *testing.T) {
	got := AngleBetween(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 0, 0})
	if mgl32.Abs(got-90) > 1e-3 {
		t.Errorf("Expected 90 degrees, got %f", got)
	}
	if got := AngleBetween(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}); got != 0 {
		t.Errorf("Expected 0 for a zero vector, got %f", got)
	}
}

func TestRayIntersectGround(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, -2, 0}, Direction: mgl32.Vec3{0, 1, 0}}
	p, ok := r.IntersectPlane(GroundPlane, 20)
	if !ok {
		t.Fatal("Expected an intersection")
	}
	if !p.ApproxEqual(mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected origin, got %v", p)
	}

	// too far away
	r.Origin = mgl32.Vec3{0, -30, 0}
	if _, ok := r.IntersectPlane(GroundPlane, 20); ok {
		t.Error("Expected no intersection past max distance")
	}

	// pointing away
	r = Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, 1, 0}}
	if _, ok := r.IntersectPlane(GroundPlane, 20); ok {
		t.Error("Expected no intersection behind the ray")
	}

	// parallel
	r = Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, 0, 1}}
	if _, ok := r.IntersectPlane(GroundPlane, 20); ok {
		t.Error("Expected no intersection for a parallel ray")
	}
}
