package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/anim"
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/entity"
	"chosenoffset.com/omegathunder/internal/fx"
	"chosenoffset.com/omegathunder/internal/hud"
	"chosenoffset.com/omegathunder/internal/render/lighting"
	"chosenoffset.com/omegathunder/internal/render/scene"
	"chosenoffset.com/omegathunder/internal/vmath"
)

// Self destruct timeline, ms into the ending clip.
const (
	shockFrom      = 0
	shockTo        = 1000
	chargeFrom     = 2000
	chargeTo       = 3000
	chargeLoopFrom = 3000
	chargeLoopTo   = 5000
	flashFrom      = 6000
	flashTo        = 10000
)

// Simulate scrolls the scenery, runs the branch of the current state and
// records the frame.
func (w *World) Simulate(f *scene.Frame) {
	elapsed := w.elapsed

	f.Clear = skyColor
	f.SetCamera(scene.Camera{
		View: w.Pos.View(),
		Eye:  w.Pos.Eye(),
		FOV:  w.camera.FOV,
		Near: w.camera.Near,
		Far:  w.camera.Far,
	})

	w.Ground.Scroll(w.distance)
	w.drawGround(f)
	w.Structures.Update(w.rng, w.distance, w.paused)
	w.drawStructures(f)

	switch w.state {
	case StateStarting:
		w.starting(f, elapsed)
	case StateRunning:
		w.running(f, elapsed)
	case StateEnding:
		w.gameEnding(f, elapsed)
	}

	f.Ambient = toSceneColor(w.Lights.AmbientLight())
	f.SetLights(w.Lights.GetAllLights())
	if w.state == StateRunning || w.state == StateEnding {
		f.HUD = hud.Build(hud.Stats{
			HP:         w.Raiu.HP,
			MaxHP:      entity.RaiuMaxHP,
			GunLevel:   w.Raiu.GunLevel,
			BladeLevel: w.Raiu.BladeLevel,
			Score:      w.Score,
			GameTimeMs: int(w.gameTime),
			Paused:     w.paused,
		})
	}

	if w.restored && w.updateOnce {
		w.paused = true
		w.restored = false
		w.updateOnce = false
	}
}

func (w *World) fadeInBGM() {
	if w.bgm < w.bgmVolume {
		w.bgm += bgmFadeIn
		w.audio.SetVolume(audio.SoundGameBGM, w.bgm)
	} else {
		w.bgm = w.bgmVolume
		w.audio.SetVolume(audio.SoundGameBGM, w.bgm)
	}
}

// raiuLightDefault parks the player light just behind the player.
func (w *World) raiuLightDefault(elapsed float32) {
	c := w.Raiu.Sphere.Center
	pos := mgl32.Vec3{w.Raiu.Position.X(), c.Y(), c.Z() - 2}
	w.Lights.Update(lighting.RaiuLight, lighting.BlueCyan, pos, 100, elapsed, false)
	w.Lights.Enable(lighting.RaiuLight)
}

func (w *World) starting(f *scene.Frame, elapsed float32) {
	w.entranceDelay.Advance(elapsed)
	delayed := w.entranceDelay.Ready()
	if !w.startSFX && delayed {
		w.audio.Play(audio.SoundStarting, false)
		w.startSFX = true
	}
	w.fadeInBGM()

	if !w.entrance.Running() {
		w.entrance.Start()
	} else if delayed {
		w.entrance.Advance(elapsed)
	}
	if !delayed {
		return
	}

	if w.startSFX && !w.audio.IsPlaying(audio.SoundStarting) {
		w.setState(StateRunning)
		w.startSFX = false
	}

	t := w.entrance.Elapsed()
	if t >= entranceBoostAt {
		if w.speed == 0 {
			w.speed = entity.NormalSpeed * entranceBoost
		} else if t >= entranceSlowAt {
			p := vmath.Clamp((entranceSlowFor-(t-entranceSlowAt))/entranceSlowFor, 0, 1)
			w.speed = vmath.InverseLerp(entity.NormalSpeed*entranceBoost, entity.NormalSpeed, p)
		}
	}

	if w.entrance.Within(runChargeFrom, runChargeTo) {
		pos := mgl32.Vec3{0, 1, -1}
		fx.Play(f, fx.Cue{
			Sheet:          scene.TexRunCharge,
			Normal:         fx.BillboardNormal,
			Position:       pos,
			Scale:          mgl32.Vec3{7, 3, 1},
			Duration:       runChargeTo - runChargeFrom,
			AlphaThreshold: fx.DefaultAlpha,
			Loop:           true,
		}, t)
		w.Lights.Update(lighting.RaiuLight, lighting.LightningBlue, pos, 300, elapsed, true)
		w.Lights.Enable(lighting.RaiuLight)
	} else if t > runChargeTo {
		w.raiuLightDefault(elapsed)
	}

	w.anim.UpdateMotion(anim.ClipEntrance, t/1000, false)
	w.anim.UpdateTree(anim.TreeEntrance)
	w.drawRaiu(f)
}

func (w *World) gameEnding(f *scene.Frame, elapsed float32) {
	for i := range w.Enemies.Active() {
		h := &w.Enemies.Slots[i]
		if h.Draw {
			if w.recycleEnemy(h) {
				continue
			}
			h.Scroll(w.distance)
			w.audio.SetPosition(audio.SoundEnemyLaser, h.Sphere.Center)
			if h.Exploding() {
				w.explode(f, h, elapsed)
			} else {
				h.Aim(w.Raiu.Position)
				w.drawHoshu(f, h)
			}
		}
		w.enemyLasers(f, h, elapsed, false)
	}

	freq := w.audio.BaseFrequency(audio.SoundFootsteps) * w.speed / entity.NormalSpeed
	w.audio.SetFrequency(audio.SoundFootsteps, freq)
	if !w.audio.IsPlaying(audio.SoundFootsteps) {
		w.audio.Play(audio.SoundFootsteps, true)
	}
	if w.Raiu.Blade.Timer.Running() {
		w.Raiu.Blade.Cancel()
	}

	if w.endingSpeed <= endingSpeedFor {
		w.anim.UpdateMotion(anim.ClipTrip, w.endingSpeed/1000, false)
		w.anim.UpdateTree(anim.TreeTrip)
	} else {
		switch {
		case !w.ending.Running():
			w.ending.Start()
			w.audio.Play(audio.SoundEnding, false)
		case !w.audio.IsPlaying(audio.SoundEnding):
			f.Clear = scene.Color{R: 1, G: 1, B: 1}
			w.setState(StateOver)
		default:
			w.ending.Advance(elapsed)
		}
		t := w.ending.Elapsed()
		w.anim.UpdateMotion(anim.ClipSelfDestruct, t/1000, false)
		w.anim.UpdateTree(anim.TreeSelfDestruct)

		if w.bgm > 0 && t >= shockFrom {
			w.bgm = max(0, w.bgm-bgmFadeOut)
			w.audio.SetVolume(audio.SoundGameBGM, w.bgm)
			if w.bgm == 0 {
				w.audio.Stop(audio.SoundGameBGM)
			}
		}
		w.selfDestruct(f, t, elapsed)
	}

	if w.state != StateOver {
		c := w.Raiu.Sphere.Center
		w.audio.SetListener(mgl32.Vec3{w.Raiu.Position.X(), c.Y(), w.Raiu.Position.Z()}, w.Pos.Heading())
		w.drawRaiu(f)
		return
	}

	for i := range w.Enemies.Slots {
		h := &w.Enemies.Slots[i]
		if h.Draw {
			w.Score = entity.AddScore(w.Score, h.Score)
			h.Deactivate()
			w.Defeated++
			w.hoshusDefeated++
		}
	}
}

func (w *World) selfDestruct(f *scene.Frame, t, elapsed float32) {
	c := w.Raiu.Sphere.Center
	cue := fx.Cue{
		Normal:         fx.BillboardNormal,
		Duration:       entity.FXNormalDuration,
		AlphaThreshold: fx.DefaultAlpha,
	}
	var fxTime float32
	lightRange := float32(300)

	switch {
	case t >= shockFrom && t <= shockTo:
		cue.Sheet = scene.TexDestructShock
		cue.Position = mgl32.Vec3{c.X(), 1, 1}
		cue.Scale = mgl32.Vec3{4, 4, 4}
		fxTime = t
		lightRange = 100
	case t >= chargeFrom && t <= chargeTo:
		p := (entity.FXNormalDuration - (t - chargeFrom)) / entity.FXNormalDuration
		cue.Sheet = scene.TexDestructCharge
		cue.Position = mgl32.Vec3{c.X(), vmath.Lerp(2, 0, p), c.Z()}
		cue.Scale = mgl32.Vec3{7, 7, 7}
		fxTime = t - chargeFrom
	case t >= chargeLoopFrom && t <= chargeLoopTo:
		p := (entity.FXNormalDuration - (t - chargeLoopFrom)) / entity.FXNormalDuration
		cue.Sheet = scene.TexDestructChargeLoop
		cue.Position = mgl32.Vec3{c.X(), vmath.Lerp(4, 2, p), 0}
		cue.Scale = mgl32.Vec3{7, 7, 7}
		cue.Duration = entity.FXNormalDuration / 2
		cue.Loop = true
		fxTime = t - chargeLoopFrom
	case t >= flashFrom && t <= flashTo:
		cue.Sheet = scene.TexDestructFlash
		cue.Position = mgl32.Vec3{c.X(), 5.5, -10}
		cue.Scale = mgl32.Vec3{17, 10, 1}
		cue.AlphaThreshold = 50
		fx.Play(f, cue, t-flashFrom)
		return
	default:
		return
	}

	fx.Play(f, cue, fxTime)
	w.Lights.Update(lighting.RaiuLight, lighting.LightningPurple, cue.Position, lightRange, elapsed, true)
	w.Lights.Enable(lighting.RaiuLight)
}
