package fx_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/mock/gomock"

	"chosenoffset.com/omegathunder/internal/fx"
	"chosenoffset.com/omegathunder/internal/mocks"
	"chosenoffset.com/omegathunder/internal/render/scene"
)

func explosionCue(loop bool) fx.Cue {
	return fx.Cue{
		Sheet:          scene.TexExplosion1,
		Normal:         fx.BillboardNormal,
		Position:       mgl32.Vec3{1, 2, 3},
		Scale:          mgl32.Vec3{10, 10, 10},
		Duration:       1000,
		AlphaThreshold: fx.DefaultAlpha,
		Loop:           loop,
	}
}

func TestPlayAtZeroDrawsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	drawer := mocks.NewMockDrawer(ctrl)
	drawer.EXPECT().DrawBillboard(gomock.Any()).Times(0)

	if fx.Play(drawer, explosionCue(false), 0) {
		t.Error("Expected no draw at elapsed 0")
	}
	// a looping cue at an exact multiple of its duration wraps to zero
	if fx.Play(drawer, explosionCue(true), 2000) {
		t.Error("Expected no draw at elapsed 2*duration when looping")
	}
}

func TestPlayDrawsCountdownFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	drawer := mocks.NewMockDrawer(ctrl)

	var got scene.Billboard
	drawer.EXPECT().DrawBillboard(gomock.Any()).Do(func(b scene.Billboard) { got = b }).Times(1)

	if !fx.Play(drawer, explosionCue(false), 250) {
		t.Fatal("Expected a draw")
	}
	// (1000-250)/1000*15 = 11.25 -> frame 11 -> u offset[3], v offset[2]
	if got.U != 0 || got.V != 0.25 {
		t.Errorf("Expected uv (0, 0.25), got (%f, %f)", got.U, got.V)
	}
	if got.Texture != scene.TexExplosion1 || got.AlphaThreshold != fx.DefaultAlpha {
		t.Errorf("Expected cue fields to pass through, got %+v", got)
	}
}

func TestEffectiveTime(t *testing.T) {
	tests := []struct {
		duration, elapsed float32
		loop              bool
		want              float32
	}{
		{1000, 0, false, 0},
		{1000, 400, false, 400},
		{1000, 2500, false, 1000},
		{1000, 2000, true, 0},
		{1000, 2500, true, 500},
		{500, 1250, true, 250},
	}
	for _, tt := range tests {
		if got := fx.EffectiveTime(tt.duration, tt.elapsed, tt.loop); got != tt.want {
			t.Errorf("EffectiveTime(%v, %v, %v): expected %v, got %v", tt.duration, tt.elapsed, tt.loop, tt.want, got)
		}
	}
}

func TestFrameCountsDown(t *testing.T) {
	if f := fx.FrameAt(1000, 1000); f != 0 {
		t.Errorf("Expected frame 0 at the end, got %d", f)
	}
	if f := fx.FrameAt(1000, 1); f != 14 {
		t.Errorf("Expected frame 14 just after the start, got %d", f)
	}
	prev := fx.FrameCount
	for ms := float32(1); ms <= 1000; ms += 10 {
		f := fx.FrameAt(1000, ms)
		if f > prev {
			t.Fatalf("frame went up from %d to %d at %f", prev, f, ms)
		}
		prev = f
	}
}

func TestFrameUV(t *testing.T) {
	tests := []struct {
		frame int
		u, v  float32
	}{
		{0, 0.75, 0.75},
		{3, 0, 0.75},
		{4, 0.75, 0.5},
		{15, 0, 0},
	}
	for _, tt := range tests {
		u, v := fx.FrameUV(tt.frame)
		if u != tt.u || v != tt.v {
			t.Errorf("frame %d: expected (%f,%f), got (%f,%f)", tt.frame, tt.u, tt.v, u, v)
		}
	}
}
