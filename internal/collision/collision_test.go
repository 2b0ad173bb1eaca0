package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSweptSphereCollision(t *testing.T) {
	forward := Trajectory{Direction: mgl32.Vec3{0, 0, 1}, Velocity: 1000}
	still := Trajectory{Direction: mgl32.Vec3{0, 0, -1}}

	tests := []struct {
		name     string
		a        Sphere
		ta       Trajectory
		b        Sphere
		tb       Trajectory
		relation Relation
		minTime  float32
		maxTime  float32
	}{
		{
			name:     "head on within window",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
			ta:       forward,
			b:        Sphere{Center: mgl32.Vec3{0, 0, 502}, Radius: 1},
			tb:       still,
			relation: Intersect,
			minTime:  499,
			maxTime:  501,
		},
		{
			name:     "closing speeds add",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
			ta:       forward,
			b:        Sphere{Center: mgl32.Vec3{0, 0, 1502}, Radius: 1},
			tb:       Trajectory{Direction: mgl32.Vec3{0, 0, -1}, Velocity: 1000},
			relation: Intersect,
			minTime:  749,
			maxTime:  751,
		},
		{
			name:     "too far for the window",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
			ta:       forward,
			b:        Sphere{Center: mgl32.Vec3{0, 0, 3000}, Radius: 1},
			tb:       still,
			relation: Outside,
		},
		{
			name:     "moving apart",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
			ta:       forward,
			b:        Sphere{Center: mgl32.Vec3{0, 0, -10}, Radius: 1},
			tb:       still,
			relation: Outside,
		},
		{
			name:     "lateral miss",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
			ta:       forward,
			b:        Sphere{Center: mgl32.Vec3{5, 0, 100}, Radius: 1},
			tb:       still,
			relation: Outside,
		},
		{
			name:     "already overlapping",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 2},
			ta:       forward,
			b:        Sphere{Center: mgl32.Vec3{0, 0, 1}, Radius: 2},
			tb:       still,
			relation: Inside,
			minTime:  -10,
			maxTime:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, ct := SweptSphereCollision(tt.a, tt.ta, Seconds, tt.b, tt.tb)
			if rel != tt.relation {
				t.Fatalf("Expected %v, got %v", tt.relation, rel)
			}
			if rel != Outside && (ct < tt.minTime || ct > tt.maxTime) {
				t.Errorf("Expected time in [%f,%f], got %f", tt.minTime, tt.maxTime, ct)
			}
		})
	}
}

func TestSweptStationaryOverlap(t *testing.T) {
	a := Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1}
	rel, ct := SweptSphereCollision(a, Trajectory{}, Seconds, a, Trajectory{})
	if rel != Inside || ct != 0 {
		t.Errorf("Expected inside at 0, got %v at %f", rel, ct)
	}
	b := Sphere{Center: mgl32.Vec3{10, 0, 0}, Radius: 1}
	if rel, _ := SweptSphereCollision(a, Trajectory{}, Seconds, b, Trajectory{}); rel != Outside {
		t.Errorf("Expected outside for two still spheres apart, got %v", rel)
	}
}

func TestStaticSphereOverlap(t *testing.T) {
	a := Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1}
	if !StaticSphereOverlap(a, Sphere{Center: mgl32.Vec3{2, 0, 0}, Radius: 1}) {
		t.Error("Expected touching spheres to overlap")
	}
	if StaticSphereOverlap(a, Sphere{Center: mgl32.Vec3{2.5, 0, 0}, Radius: 1}) {
		t.Error("Expected separated spheres not to overlap")
	}
}
