package world

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/mock/gomock"

	"chosenoffset.com/omegathunder/internal/anim"
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/config"
	"chosenoffset.com/omegathunder/internal/entity"
	"chosenoffset.com/omegathunder/internal/input"
	"chosenoffset.com/omegathunder/internal/mocks"
	"chosenoffset.com/omegathunder/internal/render/scene"
	"chosenoffset.com/omegathunder/internal/timer"
)

// harness records what the world asked the audio device to do.
type harness struct {
	w       *World
	played  map[audio.SoundID]int
	playing map[audio.SoundID]bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		played:  make(map[audio.SoundID]int),
		playing: make(map[audio.SoundID]bool),
	}

	ctrl := gomock.NewController(t)
	p := mocks.NewMockPlayer(ctrl)
	p.EXPECT().Play(gomock.Any(), gomock.Any()).Do(func(id audio.SoundID, loop bool) {
		h.played[id]++
		h.playing[id] = true
	}).AnyTimes()
	p.EXPECT().PlayAt(gomock.Any(), gomock.Any()).Do(func(id audio.SoundID, pos mgl32.Vec3) {
		h.played[id]++
	}).AnyTimes()
	p.EXPECT().Stop(gomock.Any()).Do(func(id audio.SoundID) {
		h.playing[id] = false
	}).AnyTimes()
	p.EXPECT().IsPlaying(gomock.Any()).DoAndReturn(func(id audio.SoundID) bool {
		return h.playing[id]
	}).AnyTimes()
	p.EXPECT().BaseFrequency(gomock.Any()).Return(float32(22050)).AnyTimes()
	p.EXPECT().SetFrequency(gomock.Any(), gomock.Any()).AnyTimes()
	p.EXPECT().SetVolume(gomock.Any(), gomock.Any()).AnyTimes()
	p.EXPECT().SetPosition(gomock.Any(), gomock.Any()).AnyTimes()
	p.EXPECT().SetListener(gomock.Any(), gomock.Any()).AnyTimes()

	h.w = New(Options{
		Audio:     p,
		Anim:      anim.NewRig(),
		Rand:      rand.New(rand.NewPCG(3, 4)),
		Camera:    config.DefaultConfig().Camera,
		SFXVolume: 90,
		BGMVolume: 90,
	})
	return h
}

// running skips the entrance sequence.
func (h *harness) running() *World {
	h.w.state = StateRunning
	return h.w
}

func (h *harness) tick(ms float32) *scene.Frame {
	f := scene.NewFrame()
	h.w.Advance(h.w.Clock(ms))
	h.w.Simulate(f)
	return f
}

func TestNewWorldStartsMusic(t *testing.T) {
	h := newHarness(t)

	if h.w.State() != StateStarting {
		t.Errorf("Expected starting, got %s", h.w.State())
	}
	if h.played[audio.SoundGameBGM] != 1 {
		t.Errorf("Expected the game music once, got %d", h.played[audio.SoundGameBGM])
	}
	if h.w.HoshuLevel != 1 || h.w.Score != 0 {
		t.Errorf("Expected a fresh game, got level %d score %d", h.w.HoshuLevel, h.w.Score)
	}
}

func TestStartingWaitsForStartingSound(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 50; i++ {
		h.tick(16)
	}
	if h.played[audio.SoundStarting] != 0 {
		t.Fatalf("Expected no starting sound before the delay")
	}

	for i := 0; i < 20; i++ {
		h.tick(16)
	}
	if h.played[audio.SoundStarting] != 1 {
		t.Fatalf("Expected the starting sound once, got %d", h.played[audio.SoundStarting])
	}
	if h.w.State() != StateStarting {
		t.Fatalf("Expected starting while the sound plays, got %s", h.w.State())
	}

	h.playing[audio.SoundStarting] = false
	h.tick(16)
	if h.w.State() != StateRunning {
		t.Errorf("Expected running, got %s", h.w.State())
	}
}

func TestControlsIgnoredWhileStarting(t *testing.T) {
	h := newHarness(t)
	h.w.HandleEvent(input.Event{Type: input.KeyPress, Key: input.KeyF})
	if h.w.Paused() {
		t.Errorf("Expected pause to be ignored outside running")
	}
}

func TestMoveLeft(t *testing.T) {
	h := newHarness(t)
	w := h.running()

	w.HandleEvent(input.Event{Type: input.KeyPress, Key: input.KeyA})
	h.tick(1000)

	want := float32(-entity.NormalSpeed / 2)
	if x := w.Pos.Position().X(); x != want {
		t.Errorf("Expected x %v, got %v", want, x)
	}
	if w.Raiu.Position.X() != want {
		t.Errorf("Expected the player to follow, got %v", w.Raiu.Position.X())
	}
}

func TestPauseDefersKeyReset(t *testing.T) {
	h := newHarness(t)
	w := h.running()

	w.HandleEvent(input.Event{Type: input.KeyPress, Key: input.KeyW})
	if w.multiplier != sprintMultiplier || w.spawn.Limit != spawnInterval/2 {
		t.Fatalf("Expected sprint pace, got %v/%v", w.multiplier, w.spawn.Limit)
	}

	w.HandleEvent(input.Event{Type: input.KeyPress, Key: input.KeyF})
	w.HandleEvent(input.Event{Type: input.KeyRelease, Key: input.KeyW})
	if w.multiplier != sprintMultiplier {
		t.Errorf("Expected the release to wait for unpause, got %v", w.multiplier)
	}
	if got := w.Clock(16); got != 0 {
		t.Errorf("Expected no time while paused, got %v", got)
	}

	w.HandleEvent(input.Event{Type: input.KeyPress, Key: input.KeyF})
	h.tick(16)
	if w.multiplier != 1 || w.spawn.Limit != spawnInterval {
		t.Errorf("Expected normal pace after unpause, got %v/%v", w.multiplier, w.spawn.Limit)
	}
}

func TestRestorePausesAfterOneTick(t *testing.T) {
	h := newHarness(t)
	w := h.running()

	w.Restore()
	if got := w.Clock(16); got != 0 {
		t.Errorf("Expected the restored tick to simulate nothing, got %v", got)
	}
	w.Advance(0)
	w.Simulate(scene.NewFrame())
	if !w.Paused() {
		t.Errorf("Expected play to pause after the restored tick")
	}
}

func placeEnemy(w *World, slot int, pos mgl32.Vec3, hp int) *entity.Hoshu {
	e := &w.Enemies.Slots[slot]
	e.Place(pos)
	e.HP = hp
	e.Score = 200
	e.Exp = 100
	e.GunDamage = 10
	e.Gun = timer.NewCooldown(entity.EnemyGunDelay)
	e.Gun.Reset()
	e.Draw = true
	w.Enemies.Count++
	return e
}

func TestBladeComboKillsOnce(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	w.Raiu.BladeDamage = 50
	e := placeEnemy(w, 0, mgl32.Vec3{0, 0, 0}, 100)

	w.HandleEvent(input.Event{Type: input.MouseRightPress})
	h.tick(16)
	if e.HP != 50 {
		t.Fatalf("Expected 50 hp after the first swing, got %d", e.HP)
	}

	w.Raiu.Blade.Timer.Advance(200 - w.Raiu.Blade.Timer.Elapsed())
	w.HandleEvent(input.Event{Type: input.MouseRightPress})
	if h.played[audio.SoundBlade2] != 1 {
		t.Fatalf("Expected the combo sound")
	}
	for i := 0; i < 4; i++ {
		h.tick(16)
	}

	if !e.Exploding() {
		t.Errorf("Expected the enemy to explode")
	}
	if w.Score != 200 || w.Defeated != 1 {
		t.Errorf("Expected one award, got score %d defeated %d", w.Score, w.Defeated)
	}
	if h.played[audio.SoundExplosion] != 1 {
		t.Errorf("Expected one explosion sound, got %d", h.played[audio.SoundExplosion])
	}
	if w.Enemies.Count != 0 {
		t.Errorf("Expected the enemy count to drop once, got %d", w.Enemies.Count)
	}
}

func TestHealPadHealsOnce(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	w.Raiu.HP = 900
	w.Pad.Place(mgl32.Vec3{0, 0, 0})
	w.Pad.HealAmt = entity.HealAmount
	w.Pad.Draw = true
	w.Pad.Particles = true

	for i := 0; i < 5; i++ {
		h.tick(16)
	}

	if w.Raiu.HP != entity.RaiuMaxHP {
		t.Errorf("Expected hp clamped to %d, got %d", entity.RaiuMaxHP, w.Raiu.HP)
	}
	if h.played[audio.SoundNice] != 1 {
		t.Errorf("Expected one heal sound, got %d", h.played[audio.SoundNice])
	}
	if w.Pad.Particles {
		t.Errorf("Expected the pad to be consumed")
	}
	if !w.healFX.Running() {
		t.Errorf("Expected the heal effect to run")
	}
}

func TestSpawnWaitsForFreeSlot(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	placeEnemy(w, w.Enemies.Index(), mgl32.Vec3{0, 0, entity.SpawnZ}, 100)

	for i := 0; i < 200; i++ {
		h.tick(0)
	}

	for i := range w.Enemies.Active() {
		if i != 0 && w.Enemies.Slots[i].Draw {
			t.Fatalf("Expected no spawn past an occupied slot, got slot %d", i)
		}
	}
	if w.Enemies.Count != 1 {
		t.Errorf("Expected one enemy, got %d", w.Enemies.Count)
	}
}

func TestPlayerLaserRecyclesOutOfRange(t *testing.T) {
	h := newHarness(t)
	w := h.running()

	w.HandleEvent(input.Event{Type: input.MouseLeftPress})
	if h.played[audio.SoundLaser] != 1 {
		t.Fatalf("Expected the laser sound")
	}
	l := &w.Raiu.Lasers.Lasers[0]
	if l.State() != entity.LaserTraveling {
		t.Fatalf("Expected a traveling laser, got %s", l.State())
	}

	for i := 0; i < 100 && l.Draw; i++ {
		h.tick(16)
	}
	if l.State() != entity.LaserIdle {
		t.Errorf("Expected the laser to be recycled, got %s", l.State())
	}
}

func TestPlayerLaserLocksFirstTarget(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	if w.Enemies.Cap < 2 {
		w.Enemies.Cap = 2
	}
	w.Raiu.GunDamage = 25
	first := placeEnemy(w, 0, mgl32.Vec3{0, 0, 60}, 100)
	second := placeEnemy(w, 1, mgl32.Vec3{0, 0, 60}, 100)

	l := w.Raiu.Lasers.Next()
	l.Launch(first.Sphere.Center, entity.LaserRadius, mgl32.Vec3{0, 0, 1}, 0)

	h.tick(0)
	if !l.Hit || l.HitIndex != 0 {
		t.Fatalf("Expected the shot locked on slot 0, got hit %v index %d", l.Hit, l.HitIndex)
	}
	if first.HP != 75 {
		t.Errorf("Expected 75 hp on the locked enemy, got %d", first.HP)
	}
	if l.State() != entity.LaserHitEffect {
		t.Fatalf("Expected the hit effect, got %s", l.State())
	}

	for i := 0; i < 5; i++ {
		h.tick(16)
	}
	if first.HP != 75 {
		t.Errorf("Expected no damage while the hit effect runs, got %d", first.HP)
	}
	if second.HP != 100 {
		t.Errorf("Expected the second enemy untouched, got %d", second.HP)
	}
	if !l.Draw {
		t.Fatal("Expected the shot to stay up during the hit effect")
	}

	l.HitTimer.Advance(entity.FXNormalDuration + 1 - l.HitTimer.Elapsed())
	h.tick(0)
	if l.Draw {
		t.Errorf("Expected the shot recycled after the hit effect")
	}
	if second.HP != 100 {
		t.Errorf("Expected the second enemy untouched, got %d", second.HP)
	}
}

func TestEnemyLaserEndsGame(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	w.Raiu.HP = 5
	e := &w.Enemies.Slots[0]
	e.GunDamage = 10
	e.Lasers.Lasers[0].Launch(w.Raiu.Sphere.Center, entity.LaserRadius, mgl32.Vec3{0, 0, -1}, entity.EnemyLaserSpeed)

	h.tick(16)
	h.tick(16)

	if w.State() != StateEnding {
		t.Errorf("Expected game ending, got %s", w.State())
	}
	if hurt := h.played[audio.SoundHurt1] + h.played[audio.SoundHurt2]; hurt != 1 {
		t.Errorf("Expected one hurt sound, got %d", hurt)
	}
	if w.move != 0 {
		t.Errorf("Expected movement cleared, got %v", w.move)
	}
}

func TestEndingAwardsRemainingEnemies(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	placeEnemy(w, 3, mgl32.Vec3{0, 0, entity.SpawnZ}, 100)
	w.setState(StateEnding)

	for i := 0; i < 30 && h.played[audio.SoundEnding] == 0; i++ {
		h.tick(100)
	}
	if h.played[audio.SoundEnding] != 1 {
		t.Fatalf("Expected the ending sound after the trip")
	}
	if w.Speed() != 0 {
		t.Errorf("Expected the world to stop, got speed %v", w.Speed())
	}

	h.playing[audio.SoundEnding] = false
	f := h.tick(100)

	if w.State() != StateOver {
		t.Fatalf("Expected game over, got %s", w.State())
	}
	if f.Clear != (scene.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("Expected a white clear, got %v", f.Clear)
	}
	if w.Score != 200 || w.Defeated != 1 {
		t.Errorf("Expected the remaining enemy awarded, got score %d defeated %d", w.Score, w.Defeated)
	}
}

func TestEnemyLevelUp(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	w.hoshusDefeated = w.enemyLevels[1]

	h.tick(16)

	if w.HoshuLevel != 2 {
		t.Errorf("Expected enemy level 2, got %d", w.HoshuLevel)
	}
	if h.played[audio.SoundAlarm] != 1 {
		t.Errorf("Expected the alarm, got %d", h.played[audio.SoundAlarm])
	}
}

func TestPlayerLevelUpRaisesEnemySlots(t *testing.T) {
	h := newHarness(t)
	w := h.running()
	w.Raiu.Exp = w.playerLevels[1]

	h.tick(16)

	if w.Raiu.GunLevel != 2 || w.Enemies.Cap != 2*levelUpSlots {
		t.Errorf("Expected level 2 with %d slots, got %d with %d", 2*levelUpSlots, w.Raiu.GunLevel, w.Enemies.Cap)
	}
	if h.played[audio.SoundLevelUp] != 1 {
		t.Errorf("Expected the level up sound, got %d", h.played[audio.SoundLevelUp])
	}
}
