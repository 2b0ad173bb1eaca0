package game

import (
	"log"

	"chosenoffset.com/omegathunder/internal/input"
	"chosenoffset.com/omegathunder/internal/screenshot"
	"chosenoffset.com/omegathunder/internal/world"
)

// enterGame starts a new game. The world is built once and reset for
// every later game.
func (m *Manager) enterGame() {
	if m.World == nil {
		m.World = world.New(world.Options{
			Audio:        m.audio,
			Anim:         m.anim,
			Rand:         m.rng,
			Camera:       m.cfg.Camera,
			SFXVolume:    m.cfg.Audio.SFXVolume,
			BGMVolume:    m.cfg.Audio.BGMVolume,
			StrictBounds: m.cfg.Gameplay.StrictBounds,
		})
	} else {
		m.World.Reset()
	}
	m.suspended = false
	m.input.Flush()
	m.input.MouseMovement()
}

func (m *Manager) updateGame() error {
	wall := m.tick()
	if m.suspended {
		return m.waitForFocus()
	}

	w := m.World
	elapsed := w.Clock(wall)
	w.Advance(elapsed)

	shot := false
	if ev, ok := m.input.Poll(); ok {
		switch {
		case quits(ev):
			return ErrQuit
		case ev.Type == input.WindowInactive:
			m.suspended = true
			log.Println("Window inactive, game suspended")
			return nil
		case ev.Pressed(input.KeyF1):
			shot = true
		default:
			w.HandleEvent(ev)
		}
	}
	w.SetMouseMovement(m.input.MouseMovement())

	// the tick that pauses already advanced the world clock above; it keeps
	// the last running frame on screen, later paused ticks run at zero
	if !w.Paused() || elapsed == 0 {
		m.frame.Reset()
		w.Simulate(m.frame)
	}
	if shot {
		m.frame.ScreenshotPrefix = screenshot.GamePrefix
	}

	if w.State() == world.StateOver {
		m.setScreen(ScreenGameOver)
	}
	return nil
}

// waitForFocus blocks the simulation until the window is active again.
func (m *Manager) waitForFocus() error {
	ev, ok := m.input.Poll()
	if !ok {
		return nil
	}
	switch ev.Type {
	case input.WindowClose:
		return ErrQuit
	case input.WindowActive:
		m.suspended = false
		m.renderer.Reinit()
		m.input.Flush()
		m.input.MouseMovement()
		m.World.Restore()
		m.clockStarted = false
		log.Println("Window active, game restored")
	}
	return nil
}
