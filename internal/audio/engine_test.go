package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const testRate = 8000

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Options{SampleRate: testRate, SFXVolume: 90, BGMVolume: 90})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return e
}

// pull reads d worth of frames and returns the peak absolute sample.
func pull(t *testing.T, e *Engine, d time.Duration) float64 {
	t.Helper()
	frames := int(d.Seconds() * testRate)
	p := make([]byte, frames*8)
	n, err := e.Read(p)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != len(p) {
		t.Fatalf("Expected %d bytes, got %d", len(p), n)
	}
	peak := 0.0
	for i := 0; i+4 <= n; i += 4 {
		s := math.Abs(float64(math.Float32frombits(binary.LittleEndian.Uint32(p[i:]))))
		if s > peak {
			peak = s
		}
	}
	return peak
}

func TestNewEngineRejectsBadRate(t *testing.T) {
	if _, err := NewEngine(Options{}); err == nil {
		t.Error("Expected an error for a zero sample rate")
	}
}

func TestOneShotFinishes(t *testing.T) {
	e := newTestEngine(t)
	e.Play(SoundSelect, false)
	if !e.IsPlaying(SoundSelect) {
		t.Fatal("Expected select to be playing")
	}
	pull(t, e, 100*time.Millisecond)
	if !e.IsPlaying(SoundSelect) {
		t.Error("Expected select to still be playing after 100ms")
	}
	pull(t, e, 600*time.Millisecond)
	if e.IsPlaying(SoundSelect) {
		t.Error("Expected select to have finished")
	}
}

func TestLoopKeepsPlayingUntilStopped(t *testing.T) {
	e := newTestEngine(t)
	e.Play(SoundFootsteps, true)
	pull(t, e, 2*time.Second)
	if !e.IsPlaying(SoundFootsteps) {
		t.Error("Expected looping footsteps to keep playing")
	}
	e.Stop(SoundFootsteps)
	if e.IsPlaying(SoundFootsteps) {
		t.Error("Expected footsteps to stop")
	}
	if peak := pull(t, e, 100*time.Millisecond); peak != 0 {
		t.Errorf("Expected silence after stop, got peak %f", peak)
	}
}

func TestRestartIgnoresStaleCallback(t *testing.T) {
	e := newTestEngine(t)
	e.Play(SoundLaser, false)
	pull(t, e, 200*time.Millisecond)
	e.Play(SoundLaser, false)
	// the first copy was cut off, the second is still going
	pull(t, e, 50*time.Millisecond)
	if !e.IsPlaying(SoundLaser) {
		t.Error("Expected the restarted laser to be playing")
	}
}

func TestMuteKeepsTiming(t *testing.T) {
	e := newTestEngine(t)
	e.SetMuted(true)
	e.Play(SoundSelect, false)
	if peak := pull(t, e, 100*time.Millisecond); peak != 0 {
		t.Errorf("Expected muted output, got peak %f", peak)
	}
	if !e.IsPlaying(SoundSelect) {
		t.Error("Expected muted sound to keep playing")
	}
	pull(t, e, 600*time.Millisecond)
	if e.IsPlaying(SoundSelect) {
		t.Error("Expected muted sound to finish on time")
	}
}

func TestVolumeAndFrequency(t *testing.T) {
	e := newTestEngine(t)
	if v := e.Volume(SoundGameBGM); v != 90 {
		t.Errorf("Expected bgm volume 90, got %f", v)
	}
	e.SetVolume(SoundGameBGM, 150)
	if v := e.Volume(SoundGameBGM); v != 100 {
		t.Errorf("Expected volume clamped to 100, got %f", v)
	}
	if f := e.BaseFrequency(SoundFootsteps); f != testRate {
		t.Errorf("Expected base frequency %d, got %f", testRate, f)
	}
	e.Play(SoundFootsteps, true)
	e.SetFrequency(SoundFootsteps, testRate*1.75)
	pull(t, e, 100*time.Millisecond)
	if !e.IsPlaying(SoundFootsteps) {
		t.Error("Expected footsteps to keep playing at a new rate")
	}
}

func TestSpatialize(t *testing.T) {
	heading := mgl32.Vec3{0, 0, 1}

	gain, pan := Spatialize(mgl32.Vec3{}, heading, mgl32.Vec3{0, 0, 500}, 1000, 3000)
	if gain != 1 || pan != 0 {
		t.Errorf("Expected full gain centred, got %f %f", gain, pan)
	}

	gain, _ = Spatialize(mgl32.Vec3{}, heading, mgl32.Vec3{0, 0, 2000}, 1000, 3000)
	if gain != 0.5 {
		t.Errorf("Expected gain 0.5 at twice the min distance, got %f", gain)
	}

	far, _ := Spatialize(mgl32.Vec3{}, heading, mgl32.Vec3{0, 0, 9000}, 1000, 3000)
	atMax, _ := Spatialize(mgl32.Vec3{}, heading, mgl32.Vec3{0, 0, 3000}, 1000, 3000)
	if far != atMax {
		t.Errorf("Expected gain held beyond max distance, got %f vs %f", far, atMax)
	}

	_, pan = Spatialize(mgl32.Vec3{}, heading, mgl32.Vec3{100, 0, 0}, 1000, 3000)
	if pan != 1 {
		t.Errorf("Expected a source on +x to pan right, got %f", pan)
	}
	_, pan = Spatialize(mgl32.Vec3{}, heading, mgl32.Vec3{-100, 0, 0}, 1000, 3000)
	if pan != -1 {
		t.Errorf("Expected a source on -x to pan left, got %f", pan)
	}
}

func TestCatalogDurations(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < SoundCount; i++ {
		def := Definition(SoundID(i))
		want := e.format.SampleRate.N(def.Duration)
		if got := e.buffers[i].Len(); got != want {
			t.Errorf("%s: expected %d frames, got %d", def.Name, want, got)
		}
	}
}
