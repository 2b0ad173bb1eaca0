package ebiten

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/hud"
	"chosenoffset.com/omegathunder/internal/render/scene"
)

func testCamera() scene.Camera {
	eye := mgl32.Vec3{0, 10, -50}
	return scene.Camera{
		View: mgl32.LookAtV(eye, mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 1, 0}),
		Eye:  eye,
		FOV:  60,
		Near: 1,
		Far:  5000,
	}
}

func TestProjectorCentersLookTarget(t *testing.T) {
	p, ok := newProjector(testCamera(), 800, 600)
	if !ok {
		t.Fatal("Expected a projector")
	}
	x, y, depth, ok := p.project(mgl32.Vec3{0, 10, 0})
	if !ok {
		t.Fatal("Expected the look target to be visible")
	}
	if abs(x-400) > 0.01 || abs(y-300) > 0.01 {
		t.Errorf("Expected (400, 300), got (%v, %v)", x, y)
	}
	if abs(depth-50) > 0.01 {
		t.Errorf("Expected depth 50, got %v", depth)
	}
}

func TestProjectorKeepsPositiveXOnTheRight(t *testing.T) {
	p, _ := newProjector(testCamera(), 800, 600)
	x, _, _, ok := p.project(mgl32.Vec3{20, 10, 0})
	if !ok {
		t.Fatal("Expected the point to be visible")
	}
	if x <= 400 {
		t.Errorf("Expected +x right of centre, got %v", x)
	}
	_, y, _, _ := p.project(mgl32.Vec3{0, 30, 0})
	if y >= 300 {
		t.Errorf("Expected +y above centre, got %v", y)
	}
}

func TestProjectorRejectsPointsBehindCamera(t *testing.T) {
	p, _ := newProjector(testCamera(), 800, 600)
	if _, _, _, ok := p.project(mgl32.Vec3{0, 10, -100}); ok {
		t.Error("Expected a point behind the camera to be rejected")
	}
}

func TestProjectorSize(t *testing.T) {
	p, _ := newProjector(testCamera(), 800, 600)
	// at 60 degrees the half height of the view at depth d is d*tan(30)
	want := float32(300 / 0.57735)
	if got := p.size(1, 1); abs(got-want) > 0.5 {
		t.Errorf("Expected %v pixels, got %v", want, got)
	}
	if p.size(10, 20) >= p.size(10, 10) {
		t.Error("Expected farther objects to shrink")
	}
}

func TestNoProjectorWithoutCamera(t *testing.T) {
	if _, ok := newProjector(scene.Camera{}, 800, 600); ok {
		t.Error("Expected no projector for a frame without a camera")
	}
}

func TestGlyphDigitRoundTrip(t *testing.T) {
	for d := 0; d <= 9; d++ {
		g := hud.Digits(d, 1)
		if len(g) != 1 {
			t.Fatalf("Expected one glyph for %d, got %d", d, len(g))
		}
		if got := glyphDigit(g[0]); got != d {
			t.Errorf("Expected digit %d, got %d", d, got)
		}
	}
}

func TestChannelClamps(t *testing.T) {
	if got := channel(200, 2); got != 255 {
		t.Errorf("Expected 255, got %d", got)
	}
	if got := channel(200, -1); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := channel(200, 0.5); got != 100 {
		t.Errorf("Expected 100, got %d", got)
	}
}

func TestYawDir(t *testing.T) {
	d := yawDir(90)
	if abs(d.X()-1) > 1e-5 || abs(d.Z()) > 1e-5 {
		t.Errorf("Expected (1, 0, 0), got %v", d)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
