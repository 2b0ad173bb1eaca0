package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/entity"
	"chosenoffset.com/omegathunder/internal/fx"
	"chosenoffset.com/omegathunder/internal/hud"
	"chosenoffset.com/omegathunder/internal/input"
	"chosenoffset.com/omegathunder/internal/render/scene"
	"chosenoffset.com/omegathunder/internal/screenshot"
)

const (
	overFadeFor      = 3000 // ms the game over timer runs
	overBGMStart     = 50
	overFadeDuration = entity.FXNormalDuration
)

var (
	overClear = scene.Color{A: 1}
	// flatEye frames full screen billboards placed at z = 1.
	flatEye = mgl32.Vec3{0, 0, -2}
)

var fadeWhite = fx.Cue{
	Sheet:    scene.TexFadeWhite,
	Normal:   fx.BillboardNormal,
	Position: mgl32.Vec3{0, 0, 1},
	Scale:    mgl32.Vec3{17, 10, 1},
	Duration: overFadeDuration,
}

type overState struct {
	elapsed float32
	bgm     float32
	entered bool
	summary *scene.Summary
}

func (m *Manager) enterOver() {
	w := m.World
	m.over = overState{
		bgm:     overBGMStart,
		summary: hud.Summary(w.Score, int(w.GameTime()), w.Defeated, entity.WinningScore),
	}
	m.audio.StopAll()
	m.audio.SetVolume(audio.SoundGameOverBGM, m.over.bgm)
	m.audio.SetVolume(audio.SoundSelect, m.cfg.Audio.SFXVolume)
	m.audio.Play(audio.SoundGameOverBGM, true)
}

func (m *Manager) updateOver() error {
	elapsed := m.tick()
	if m.over.elapsed <= overFadeFor {
		m.over.elapsed += elapsed
	}
	if m.over.bgm < m.cfg.Audio.BGMVolume {
		m.over.bgm = min(m.over.bgm+1, m.cfg.Audio.BGMVolume)
		m.audio.SetVolume(audio.SoundGameOverBGM, m.over.bgm)
	}

	shot := false
	if ev, ok := m.input.Poll(); ok {
		if quits(ev) {
			return ErrQuit
		}
		if ev.Pressed(input.KeyF1) {
			shot = true
		}
		if ev.Pressed(input.KeyEnter) && !m.audio.IsPlaying(audio.SoundSelect) {
			m.audio.Play(audio.SoundSelect, false)
			m.over.entered = true
		}
	}
	if m.over.entered && !m.audio.IsPlaying(audio.SoundSelect) {
		m.setScreen(ScreenTitle)
		return nil
	}

	f := m.frame
	f.Reset()
	f.Clear = overClear
	f.Ambient = scene.Color{R: 1, G: 1, B: 1, A: 1}
	f.SetCamera(scene.Camera{
		View: mgl32.LookAtV(flatEye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		Eye:  flatEye,
		FOV:  m.cfg.Camera.FOV,
		Near: m.cfg.Camera.Near,
		Far:  m.cfg.Camera.Far,
	})
	f.Summary = m.over.summary
	fx.Play(f, fadeWhite, m.over.elapsed)
	if shot {
		f.ScreenshotPrefix = screenshot.GameOverPrefix
	}
	return nil
}
