// Package world is the game screen simulation. It owns the chase camera, the
// player, the enemy pool, every projectile, the health pad and the scrolling
// scenery, and runs the starting, running and ending sequences over them.
//
// One tick is driven by the caller in a fixed order:
//
//	elapsed := w.Clock(wall)
//	w.Advance(elapsed)       // timers, camera, speed, levels
//	w.HandleEvent(ev)        // at most one event
//	w.SetMouseMovement(dx, dy)
//	w.Simulate(frame)        // scenery, state branch, draw calls
//
// All state is owned by the World; nothing here is safe for concurrent use.
package world

import (
	"log"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/anim"
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/config"
	"chosenoffset.com/omegathunder/internal/entity"
	"chosenoffset.com/omegathunder/internal/input"
	"chosenoffset.com/omegathunder/internal/position"
	"chosenoffset.com/omegathunder/internal/render/lighting"
	"chosenoffset.com/omegathunder/internal/timer"
	"chosenoffset.com/omegathunder/internal/vmath"
)

// State is the stage of the game screen.
type State int

const (
	// StateStarting plays the entrance sequence.
	StateStarting State = iota
	// StateRunning is normal play.
	StateRunning
	// StateEnding plays the trip and self destruct sequence.
	StateEnding
	// StateOver means the ending finished and the game over screen is next.
	StateOver
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateEnding:
		return "game_ending"
	case StateOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Sequence timing in ms.
const (
	entranceDelay   = 1000
	entranceBoostAt = 2900
	entranceSlowAt  = 3200
	entranceSlowFor = 1000
	runChargeFrom   = 500
	runChargeTo     = 2900
	endingSpeedFor  = 2000
	cameraLerpFor   = 500
	healFXFor       = 2 * entity.FXNormalDuration
)

// Pace and mix.
const (
	spawnInterval    = 1000
	sprintMultiplier = 1.75
	walkMultiplier   = 0.75
	entranceBoost    = 5
	bgmStartVolume   = 60
	bgmFadeIn        = 0.20
	bgmFadeOut       = 0.12
	pausedBGMShare   = 0.75
	footstepShare    = 0.95
	// levelUpSlots is how many enemy slots each player level unlocks.
	levelUpSlots = entity.MaxEnemyCount / entity.MaxLevel
)

// gameStart is where the position controller is initialised. The lane pins
// y and z, so only x survives the first update.
var gameStart = mgl32.Vec3{0, 5, -100}

// Options wires a World to its collaborators.
type Options struct {
	Audio  audio.Player
	Anim   anim.Animator
	Rand   *rand.Rand
	Camera config.CameraConfig

	SFXVolume float32
	BGMVolume float32

	// StrictBounds recycles enemy lasers on any axis instead of depth only.
	StrictBounds bool
}

// World is the game screen context.
type World struct {
	audio  audio.Player
	anim   anim.Animator
	rng    *rand.Rand
	camera config.CameraConfig
	strict bool

	sfxVolume float32
	bgmVolume float32

	Pos        *position.Controller
	Raiu       *entity.Raiu
	Enemies    *entity.HoshuPool
	Pad        entity.HealPad
	Ground     entity.Ground
	Structures entity.Structures
	Lights     *lighting.Manager

	state      State
	paused     bool
	keyChanged bool
	restored   bool
	updateOnce bool
	force      bool

	Score          int
	Defeated       int
	hoshusDefeated int
	HoshuLevel     int
	playerLevels   [entity.MaxLevel]int
	enemyLevels    [entity.MaxLevel]int

	gameTime    float32
	elapsed     float32
	speed       float32
	multiplier  float32
	distance    float32
	move        position.MoveFlags
	mouseX      int
	mouseY      int
	aimX        int
	aimY        int
	bladeActive bool

	spawn     timer.Cooldown
	healSpawn timer.Cooldown
	healFX    timer.Timer
	levelUpFX timer.Timer
	padClock  float32

	entranceDelay timer.Cooldown
	entrance      timer.Timer
	startSFX      bool
	run           timer.Timer
	endingSpeed   float32
	ending        timer.Timer

	bgm       float32
	sndPaused bool
}

// New returns a world ready for the starting sequence.
func New(opts Options) *World {
	w := &World{
		audio:     opts.Audio,
		anim:      opts.Anim,
		rng:       opts.Rand,
		camera:    opts.Camera,
		strict:    opts.StrictBounds,
		sfxVolume: opts.SFXVolume,
		bgmVolume: opts.BGMVolume,
		Raiu:      entity.NewRaiu(),
		Enemies:   entity.NewHoshuPool(levelUpSlots),
		Lights:    lighting.NewManager(opts.Rand),
	}
	w.playerLevels, w.enemyLevels = entity.LevelThresholds()
	w.Reset()
	return w
}

// Reset prepares a new game and starts the game music.
func (w *World) Reset() {
	w.Pos = position.NewController(gameStart, vmath.Forward, entity.NormalSpeed/2)
	if w.camera.TetherDistance > 0 {
		w.Pos.SetTetherDistance(w.camera.TetherDistance)
	}
	if w.camera.EyeLevel > 0 {
		w.Pos.SetEyeLevel(w.camera.EyeLevel)
	}
	w.force = true

	w.Raiu.Reset()
	w.Raiu.Place(w.Pos.Position(), w.Pos.Heading())
	w.Enemies.Reset(levelUpSlots)
	w.Pad = entity.HealPad{}
	w.Pad.Place(mgl32.Vec3{0, 0, entity.StructureSpawnZ})
	w.Ground = entity.NewGround()
	w.Structures.Reset()
	w.Lights.DisableAll()
	w.Lights.SetAmbientLight(dimAmbient)

	w.state = StateStarting
	w.paused = false
	w.keyChanged = false
	w.restored = false
	w.updateOnce = false

	w.Score = 0
	w.Defeated = 0
	w.hoshusDefeated = 0
	w.HoshuLevel = 1

	w.gameTime = 0
	w.elapsed = 0
	w.speed = 0
	w.multiplier = 1
	w.distance = 0
	w.move = 0
	w.mouseX, w.mouseY = 0, 0
	w.aimX, w.aimY = 0, 0
	w.bladeActive = false

	w.spawn = timer.NewCooldown(spawnInterval)
	w.healSpawn = timer.Cooldown{Limit: entity.HealSpawnLimit}
	w.healFX.Stop()
	w.levelUpFX.Stop()
	w.padClock = 0

	w.entranceDelay = timer.Cooldown{Limit: entranceDelay}
	w.entrance.Stop()
	w.startSFX = false
	w.run.Stop()
	w.endingSpeed = 0
	w.ending.Stop()

	w.sndPaused = false
	w.bgm = min(bgmStartVolume, w.bgmVolume)
	w.audio.SetVolume(audio.SoundFootsteps, w.sfxVolume*footstepShare)
	w.audio.SetVolume(audio.SoundGameBGM, w.bgm)
	w.audio.Play(audio.SoundGameBGM, true)
}

// State returns the current stage.
func (w *World) State() State { return w.state }

// Paused reports whether play is frozen.
func (w *World) Paused() bool { return w.paused }

// GameTime returns the play time in ms.
func (w *World) GameTime() float32 { return w.gameTime }

// Speed returns the current world speed in units per second.
func (w *World) Speed() float32 { return w.speed }

// Distance returns how far the world scrolled this tick.
func (w *World) Distance() float32 { return w.distance }

func (w *World) setState(s State) {
	if w.state == s {
		return
	}
	log.Printf("Game state: %s -> %s", w.state, s)
	w.state = s
	if s == StateEnding {
		w.move = 0
	}
}

// Restore resumes the world after the window regained focus. The camera is
// forced back into place on the next update and running play pauses itself
// after one tick.
func (w *World) Restore() {
	w.paused = false
	w.restored = true
	w.force = true
}

// Clock turns wall clock time since the last tick into the time the tick
// simulates. Paused play and the first running tick after a restore
// simulate nothing.
func (w *World) Clock(wall float32) float32 {
	if w.restored {
		switch w.state {
		case StateRunning:
			w.updateOnce = true
			return 0
		default:
			w.restored = false
		}
	}
	if w.paused {
		return 0
	}
	return wall
}

// Advance runs the clocks, the camera, the world speed and levelling for one
// tick of elapsed ms.
func (w *World) Advance(elapsed float32) {
	w.elapsed = elapsed
	switch w.state {
	case StateRunning:
		w.gameTime = min(w.gameTime+elapsed, entity.MaxGameTime)
	case StateEnding:
		w.endingSpeed += elapsed
	}

	w.spawn.Advance(elapsed)
	w.Raiu.Gun.Advance(elapsed)
	for i := range w.Enemies.Slots {
		if h := &w.Enemies.Slots[i]; h.Draw {
			h.Gun.Advance(elapsed)
		}
	}
	w.healSpawn.Advance(elapsed)

	if !w.paused {
		w.updateCamera(elapsed)
	}
	w.updateSpeed()
	w.distance = w.speed * w.multiplier * elapsed / 1000
	w.Raiu.Place(w.Pos.Position(), w.Pos.Heading())

	w.levelUp()

	if !w.paused && w.keyChanged {
		w.move = 0
		w.setPace(1, spawnInterval)
		w.keyChanged = false
	}
}

func (w *World) updateCamera(elapsed float32) {
	var res position.Result
	switch w.state {
	case StateRunning:
		res = w.Pos.Update(elapsed, w.move, w.mouseY, w.mouseX, w.force)
	case StateEnding:
		w.Pos.LerpCameraStart(min(w.endingSpeed, cameraLerpFor), cameraLerpFor)
		res = w.Pos.Update(elapsed, w.move, 0, 0, w.force)
	default:
		res = w.Pos.Update(elapsed, w.move, 0, 0, w.force)
	}
	w.force = false
	w.aimX, w.aimY = res.YRotate, res.XRotate
	w.audio.SetListener(res.Position, res.Heading)
}

func (w *World) updateSpeed() {
	switch w.state {
	case StateRunning:
		w.speed = entity.NormalSpeed * w.multiplier
	case StateEnding:
		if w.multiplier != 1 {
			w.multiplier = 1
		}
		if w.endingSpeed <= endingSpeedFor {
			w.speed = vmath.InverseLerp(entity.NormalSpeed, 0, (endingSpeedFor-w.endingSpeed)/endingSpeedFor)
		} else {
			w.speed = 0
		}
	}
}

func (w *World) levelUp() {
	if w.Raiu.LevelUp(w.playerLevels) {
		w.levelUpFX.Start()
		w.Enemies.Raise(levelUpSlots)
		log.Printf("Level up: gun %d, blade %d, enemy slots %d", w.Raiu.GunLevel, w.Raiu.BladeLevel, w.Enemies.Cap)
	}
	if w.HoshuLevel < entity.MaxLevel && w.hoshusDefeated >= w.enemyLevels[w.HoshuLevel] {
		w.HoshuLevel++
		w.hoshusDefeated = 0
		w.audio.Play(audio.SoundAlarm, false)
		log.Printf("Enemy level up: %d", w.HoshuLevel)
	}
}

// setPace sets the speed multiplier, the matching footstep rate and the
// enemy spawn interval.
func (w *World) setPace(multiplier, spawnLimit float32) {
	w.multiplier = multiplier
	w.audio.SetFrequency(audio.SoundFootsteps, w.audio.BaseFrequency(audio.SoundFootsteps)*multiplier)
	w.spawn.Limit = spawnLimit
}

func isMoveKey(k input.Key) bool {
	return k == input.KeyW || k == input.KeyA || k == input.KeyS || k == input.KeyD
}

// HandleEvent applies one play control. Controls only work while running;
// movement keys touched while paused are reset on unpause.
func (w *World) HandleEvent(ev input.Event) {
	if w.state != StateRunning {
		return
	}
	switch ev.Type {
	case input.KeyPress:
		if ev.Key == input.KeyF {
			w.paused = !w.paused
			return
		}
		if w.paused {
			w.keyChanged = w.keyChanged || isMoveKey(ev.Key)
			return
		}
		switch ev.Key {
		case input.KeyW:
			w.setPace(sprintMultiplier, spawnInterval/2)
		case input.KeyS:
			w.setPace(walkMultiplier, spawnInterval*2)
		case input.KeyA:
			w.move |= position.MoveLeft
		case input.KeyD:
			w.move |= position.MoveRight
		}

	case input.KeyRelease:
		if w.paused {
			w.keyChanged = w.keyChanged || isMoveKey(ev.Key)
			return
		}
		switch ev.Key {
		case input.KeyW, input.KeyS:
			w.setPace(1, spawnInterval)
		case input.KeyA:
			w.move &^= position.MoveLeft
		case input.KeyD:
			w.move &^= position.MoveRight
		}

	case input.MouseLeftPress:
		if !w.paused && w.Raiu.Fire() != nil {
			w.audio.Play(audio.SoundLaser, false)
		}

	case input.MouseRightPress:
		if w.paused {
			return
		}
		switch w.Raiu.Blade.Press() {
		case entity.SwingFirst:
			w.audio.Play(audio.SoundBlade1, false)
		case entity.SwingCombo:
			w.audio.Play(audio.SoundBlade2, false)
			w.audio.Play(audio.SoundGrunt, false)
		}
	}
}

// SetMouseMovement stores the mouse motion the next camera update uses.
func (w *World) SetMouseMovement(dx, dy int) {
	w.mouseX, w.mouseY = dx, dy
}
