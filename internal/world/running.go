package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/anim"
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/collision"
	"chosenoffset.com/omegathunder/internal/entity"
	"chosenoffset.com/omegathunder/internal/fx"
	"chosenoffset.com/omegathunder/internal/position"
	"chosenoffset.com/omegathunder/internal/render/lighting"
	"chosenoffset.com/omegathunder/internal/render/scene"
	"chosenoffset.com/omegathunder/internal/vmath"
)

// Effect sizes.
const (
	explosionScale     = 10
	explosionLightMax  = 100
	enemyHitScale      = 4
	playerHitScale     = 8
	playerHitOffsetZ   = 5
	levelUpScale       = 5
	aimClipSeconds     = 0.63
	healLightRange     = 300
	explosionTypeCount = 3
)

// enemyDirection is how every enemy moves relative to the player.
var enemyDirection = mgl32.Vec3{0, 0, -1}

func (w *World) running(f *scene.Frame, elapsed float32) {
	// every enemy sees the swing as it was at the start of the tick
	w.bladeActive = w.Raiu.Blade.Active()

	w.runningAudio()
	w.healPad(f, elapsed)

	if w.spawn.Ready() && !w.paused {
		if w.Enemies.Spawn(w.rng, entity.EnemySpawnRate, w.HoshuLevel) != nil {
			w.spawn.Reset()
		}
	}

	for i := range w.Enemies.Active() {
		h := &w.Enemies.Slots[i]
		if h.Draw && !w.recycleEnemy(h) {
			h.Scroll(w.distance)
			w.audio.SetPosition(audio.SoundEnemyLaser, h.Sphere.Center)
			w.bladeStrike(h)
			if h.Exploding() {
				w.explode(f, h, elapsed)
			} else {
				h.Aim(w.Raiu.Position)
				w.drawHoshu(f, h)
				if !w.paused {
					if h.Fire(w.rng) != nil {
						w.audio.PlayAt(audio.SoundEnemyLaser, h.Sphere.Center)
					}
				}
			}
		}
		w.enemyLasers(f, h, elapsed, true)
	}

	w.playerLasers(f, elapsed)
	w.levelUpEffect(f, elapsed)
	w.animateRun(elapsed)
	w.healEffect(f, elapsed)
	w.drawRaiu(f)
}

func (w *World) runningAudio() {
	if !w.paused {
		if w.sndPaused {
			w.audio.SetVolume(audio.SoundGameBGM, w.bgmVolume)
			w.audio.Play(audio.SoundFootsteps, true)
			w.sndPaused = false
		} else if !w.audio.IsPlaying(audio.SoundFootsteps) {
			w.audio.Play(audio.SoundFootsteps, true)
		}
		return
	}
	if w.audio.IsPlaying(audio.SoundFootsteps) {
		w.audio.Stop(audio.SoundFootsteps)
		w.audio.SetVolume(audio.SoundGameBGM, w.bgmVolume*pausedBGMShare)
		w.sndPaused = true
	}
}

func (w *World) healPad(f *scene.Frame, elapsed float32) {
	p := &w.Pad
	if w.healSpawn.Ready() && !w.paused {
		if p.Spawn(w.rng, entity.HealChance(w.Raiu.HP)) {
			w.audio.SetPosition(audio.SoundFence, p.Sphere.Center)
			w.audio.Play(audio.SoundFence, true)
			w.Lights.Update(lighting.HealPadLight, lighting.LightningGreen, p.Sphere.Center, healLightRange, elapsed, true, lighting.WideAttenuation)
			w.Lights.Enable(lighting.HealPadLight)
			w.padClock = 0
		}
	}

	if p.Draw {
		if p.Position.Z() <= entity.RecycleZ {
			p.Remove()
			w.Lights.Disable(lighting.HealPadLight)
			w.healSpawn.Set(entity.HealSpawnLimit / 2)
			w.audio.Stop(audio.SoundFence)
		} else {
			p.Scroll(w.distance)
			w.audio.SetPosition(audio.SoundFence, p.Sphere.Center)

			// touch is tested at ground level
			feet := collision.Sphere{
				Center: mgl32.Vec3{w.Raiu.Sphere.Center.X(), w.Raiu.Position.Y(), w.Raiu.Sphere.Center.Z()},
				Radius: w.Raiu.Sphere.Radius,
			}
			base := collision.Sphere{Center: p.Position, Radius: p.Sphere.Radius}
			if collision.StaticSphereOverlap(feet, base) && !w.healFX.Running() {
				w.Raiu.Heal(p.HealAmt)
				w.audio.Play(audio.SoundNice, false)
				w.healFX.Start()
				p.Consume()
				w.Lights.Disable(lighting.HealPadLight)
				w.audio.Stop(audio.SoundFence)
				w.healSpawn.Reset()
			}
			f.DrawModel(scene.Model{Mesh: scene.MeshFence, Position: p.Position, Scale: 1, Tint: white})
		}
	}

	if p.Particles {
		w.Lights.Update(lighting.HealPadLight, lighting.LightningGreen, p.Sphere.Center, healLightRange, elapsed, true, lighting.WideAttenuation)
		w.Lights.Enable(lighting.HealPadLight)
		w.padClock += elapsed
		fx.Play(f, fx.Cue{
			Sheet:          scene.TexRunCharge,
			Normal:         fx.BillboardNormal,
			Position:       p.Sphere.Center,
			Scale:          mgl32.Vec3{10, 6, 1},
			Duration:       entity.FXNormalDuration,
			AlphaThreshold: 50,
			Loop:           true,
		}, w.padClock)
	}
}

// recycleEnemy frees a slot that scrolled behind the player and reports
// whether it did. An enemy that was already defeated left the count when
// it died.
func (w *World) recycleEnemy(h *entity.Hoshu) bool {
	if h.Position.Z() > entity.RecycleZ {
		return false
	}
	if !h.Exploding() {
		w.Enemies.Count--
	} else {
		w.Lights.Disable(lighting.ExplosionLight)
	}
	h.Deactivate()
	return true
}

// defeat rewards the kill and starts the explosion, once per activation.
func (w *World) defeat(h *entity.Hoshu) {
	if !h.TryExplode() {
		return
	}
	w.Score = entity.AddScore(w.Score, h.Score)
	w.Raiu.Exp += h.Exp
	w.Defeated++
	w.hoshusDefeated++
	w.Enemies.Count--
}

func (w *World) bladeStrike(h *entity.Hoshu) {
	if !w.bladeActive {
		h.ClearBladeMarks()
		return
	}
	if !collision.StaticSphereOverlap(w.Raiu.Sphere, h.Sphere) {
		return
	}
	h.BladeHit(&w.Raiu.Blade, w.Raiu.BladeDamage)
	if h.HP <= 0 {
		w.defeat(h)
	}
}

func (w *World) explode(f *scene.Frame, h *entity.Hoshu, elapsed float32) {
	t := h.Explosion.Elapsed()
	lightRange := explosionLightMax * vmath.Clamp(1-t/entity.FXNormalDuration, 0, 1)
	w.Lights.Update(lighting.ExplosionLight, lighting.ExplosionOrange, h.Sphere.Center, lightRange, elapsed, true, lighting.WideAttenuation)
	w.Lights.Enable(lighting.ExplosionLight)

	if h.ExplosionType == 0 {
		h.ExplosionType = w.rng.IntN(explosionTypeCount) + 1
	}
	if !h.ExplosionSnd {
		w.audio.PlayAt(audio.SoundExplosion, h.Sphere.Center)
		h.ExplosionSnd = true
	}

	if t > entity.FXNormalDuration {
		h.Deactivate()
		w.Lights.Disable(lighting.ExplosionLight)
		return
	}

	sheet := scene.TexExplosion3
	scale := float32(explosionScale)
	switch h.ExplosionType {
	case 1:
		sheet = scene.TexExplosion1
		scale *= 2
	case 2:
		sheet = scene.TexExplosion2
	}
	fx.Play(f, fx.Cue{
		Sheet:          sheet,
		Normal:         fx.BillboardNormal,
		Position:       h.Sphere.Center,
		Scale:          mgl32.Vec3{scale, scale, scale},
		Duration:       entity.FXNormalDuration,
		AlphaThreshold: fx.DefaultAlpha,
	}, t)
	h.Explosion.Advance(elapsed)
}

// enemyLasers moves the lasers of one enemy slot. Lasers outlive the enemy
// that fired them, so this runs for drawn and free slots alike. With hits
// unset the lasers fly through the player.
func (w *World) enemyLasers(f *scene.Frame, h *entity.Hoshu, elapsed float32, hits bool) {
	r := w.Raiu
	for j := range h.Lasers.Lasers {
		l := &h.Lasers.Lasers[j]
		if !l.Draw {
			continue
		}
		if l.PastEnemyRange(w.strict) {
			l.Recycle()
			continue
		}

		if hits {
			dx := r.Sphere.Center.X() - l.Sphere.Center.X()
			dz := r.Sphere.Center.Z() - l.Sphere.Center.Z()
			d := mgl32.Vec2{dx, dz}.Len()
			if d <= r.Sphere.Radius*2 && abs(dx) <= r.Sphere.Radius {
				if w.bladeActive {
					l.Deflect(entity.EnemyLaserSpeed)
				}
				if !l.Hit && !l.Destroyed {
					if w.rng.IntN(2) == 0 {
						w.audio.Play(audio.SoundHurt1, false)
					} else {
						w.audio.Play(audio.SoundHurt2, false)
					}
					if r.Damage(h.GunDamage) {
						w.setState(StateEnding)
					}
					l.Hit = true
				}
				l.HitTimer.Start()
			}
		}

		if l.HitTimer.Running() {
			pos := mgl32.Vec3{r.Position.X(), r.Sphere.Center.Y(), r.Position.Z() + 1}
			if l.Destroyed {
				pos = l.Position
			}
			if l.HitTimer.Elapsed() > entity.FXNormalDuration {
				l.Recycle()
				continue
			}
			fx.Play(f, fx.Cue{
				Sheet:          scene.TexLaserRed,
				Normal:         fx.BillboardNormal,
				Position:       pos,
				Scale:          mgl32.Vec3{enemyHitScale, enemyHitScale, enemyHitScale},
				Duration:       entity.FXNormalDuration / 2,
				AlphaThreshold: fx.DefaultAlpha,
			}, l.HitTimer.Elapsed())
			l.HitTimer.Advance(elapsed)
		} else {
			w.drawLaser(f, scene.MeshLaserRed, l, entity.EnemyLaserScale)
		}
		l.Move(elapsed)
	}
}

// playerLasers moves the player's shots and resolves their hits. A shot
// locks onto the first enemy it is found to intersect and ignores every
// other enemy from then on.
func (w *World) playerLasers(f *scene.Frame, elapsed float32) {
	r := w.Raiu
	slots := w.Enemies.Active()
	enemyPath := collision.Trajectory{Direction: enemyDirection, Velocity: w.speed * w.multiplier}

	for i := range r.Lasers.Lasers {
		l := &r.Lasers.Lasers[i]
		if !l.Draw {
			continue
		}
		if l.PastPlayerRange() {
			l.Recycle()
			continue
		}
		if !w.paused {
			l.MoveShifted(elapsed, w.distance)
		}

		j := 0
		if l.Hit {
			j = l.HitIndex
		}
		for ; j < len(slots); j++ {
			h := &slots[j]
			if h.Draw {
				rel, t := collision.SweptSphereCollision(l.Sphere, l.Trajectory, collision.Seconds, h.Sphere, enemyPath)
				sticky := l.Hit && l.HitIndex == j
				if rel != collision.Outside || sticky {
					if !l.Hit {
						l.Hit = true
						l.HitIndex = j
					}
					if rel != collision.Outside && t <= 0 && !l.HitTimer.Running() && !h.Exploding() {
						h.HP -= r.GunDamage
						if h.HP <= 0 {
							w.defeat(h)
						} else {
							l.HitTimer.Start()
						}
					}
				}
			}
			if l.Hit {
				break
			}
		}

		if !l.HitTimer.Running() {
			w.drawLaser(f, scene.MeshLaserBlue, l, 1)
			continue
		}
		if l.HitTimer.Elapsed() > entity.FXNormalDuration {
			l.Recycle()
			continue
		}
		target := slots[l.HitIndex].Sphere.Center
		fx.Play(f, fx.Cue{
			Sheet:          scene.TexLaserBlue,
			Normal:         fx.BillboardNormal,
			Position:       mgl32.Vec3{target.X(), target.Y(), target.Z() - playerHitOffsetZ},
			Scale:          mgl32.Vec3{playerHitScale, playerHitScale, playerHitScale},
			Duration:       entity.FXNormalDuration / 2,
			AlphaThreshold: fx.DefaultAlpha,
		}, l.HitTimer.Elapsed())
		l.HitTimer.Advance(elapsed)
	}
}

func (w *World) levelUpEffect(f *scene.Frame, elapsed float32) {
	if !w.levelUpFX.Running() {
		return
	}
	t := w.levelUpFX.Elapsed()
	if t == 0 {
		w.audio.Play(audio.SoundLevelUp, false)
	}
	fx.Play(f, fx.Cue{
		Sheet:          scene.TexLevelUp,
		Normal:         fx.BillboardNormal,
		Position:       w.Raiu.Sphere.Center,
		Scale:          mgl32.Vec3{levelUpScale, levelUpScale, levelUpScale},
		Duration:       entity.FXNormalDuration,
		AlphaThreshold: fx.DefaultAlpha,
	}, t)
	if w.levelUpFX.Reached(entity.FXNormalDuration) {
		w.levelUpFX.Stop()
	} else {
		w.levelUpFX.Advance(elapsed)
	}
}

// aimBlend maps an aim angle onto a blend weight: 0 at lo, 0.5 centred and
// 1 at hi.
func aimBlend(v, lo, hi int) float32 {
	switch {
	case v < 0:
		return 0.5 - float32(v)/float32(lo)*0.5
	case v > 0:
		return 0.5 + float32(v)/float32(hi)*0.5
	default:
		return 0.5
	}
}

func (w *World) animateRun(elapsed float32) {
	if !w.run.Running() {
		w.run.Start()
	} else {
		w.run.Advance(elapsed)
	}
	w.anim.UpdateMotion(anim.ClipRun, w.run.Elapsed()/1000*w.multiplier, true)
	for _, c := range []anim.Clip{anim.ClipAimUp, anim.ClipAimDown, anim.ClipAimLeft, anim.ClipAimRight} {
		w.anim.UpdateMotion(c, aimClipSeconds, true)
	}

	b := &w.Raiu.Blade
	b.Advance(elapsed)
	var swing, swingType float32
	if b.Timer.Running() {
		t := b.Timer.Elapsed() / 1000
		w.anim.UpdateMotion(anim.ClipSwing1, t, false)
		w.anim.UpdateMotion(anim.ClipSwing2, t, false)
		swing = 1
		if b.Second {
			swingType = 1
		}
	}

	w.anim.SetBlend(anim.NodeAimLR, aimBlend(w.aimX, position.RotateLeftMax, position.RotateRightMax))
	w.anim.SetBlend(anim.NodeAimUD, aimBlend(w.aimY, position.RotateUpMax, position.RotateDownMax))
	w.anim.SetBlend(anim.NodeAimUDLR, 0.5)
	w.anim.SetBlend(anim.NodeSwing, swingType)
	w.anim.SetBlend(anim.NodeAdderAimSwing, swing)
	w.anim.SetBlend(anim.NodeAdderRunAim, 1)
	w.anim.UpdateTree(anim.TreeMovement)
}

func (w *World) healEffect(f *scene.Frame, elapsed float32) {
	switch {
	case w.healFX.Running() && w.healFX.Elapsed() < healFXFor:
		r := w.Raiu
		pos := mgl32.Vec3{r.Position.X(), r.Sphere.Center.Y() - 2, r.Position.Z() - 1}
		fx.Play(f, fx.Cue{
			Sheet:          scene.TexRunCharge,
			Normal:         fx.BillboardNormal,
			Position:       pos,
			Scale:          mgl32.Vec3{7, 3, 1},
			Duration:       entity.FXNormalDuration,
			AlphaThreshold: fx.DefaultAlpha,
			Loop:           true,
		}, w.healFX.Elapsed())
		w.Lights.Update(lighting.RaiuLight, lighting.LightningBlue, pos, 300, elapsed, true)
		w.Lights.Enable(lighting.RaiuLight)
		w.healFX.Advance(elapsed)
	case w.healFX.Running():
		w.raiuLightDefault(elapsed)
		w.healFX.Stop()
	default:
		w.raiuLightDefault(elapsed)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
