package game

import (
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/input"
	"chosenoffset.com/omegathunder/internal/render/scene"
)

var menuClear = scene.Color{R: 0.04, G: 0.05, B: 0.12, A: 1}

var menuItems = []string{"START GAME", "QUIT GAME"}

var helpLines = []string{
	"MOUSE        aim",
	"LEFT CLICK   fire",
	"RIGHT CLICK  blade, click again quickly for a combo",
	"A / D        strafe",
	"W / S        run faster / slower",
	"F            pause",
	"F1           screenshot",
	"ESC          quit",
	"",
	"Destroy the enemies before they wear you down.",
	"",
	"Press ENTER to begin",
}

type titleState struct {
	selection int
}

type helpState struct {
	confirmed bool
}

func (m *Manager) enterTitle() {
	m.title = titleState{}
	m.audio.StopAll()
	m.audio.SetVolume(audio.SoundTitleBGM, m.cfg.Audio.BGMVolume)
	m.audio.SetVolume(audio.SoundSelect, m.cfg.Audio.SFXVolume)
	m.audio.Play(audio.SoundTitleBGM, true)
}

func (m *Manager) updateTitle() error {
	if ev, ok := m.input.Poll(); ok {
		if quits(ev) {
			return ErrQuit
		}
		if ev.Type == input.KeyPress && !m.audio.IsPlaying(audio.SoundSelect) {
			switch ev.Key {
			case input.KeyUp:
				m.title.selection = (m.title.selection + 1) % menuCount
			case input.KeyDown:
				m.title.selection = abs((m.title.selection - 1) % menuCount)
			case input.KeyEnter:
				m.audio.Play(audio.SoundSelect, false)
				if m.title.selection == menuQuit {
					return ErrQuit
				}
				// the select sound carries over into the help screen
				m.audio.Stop(audio.SoundTitleBGM)
				m.setScreen(ScreenHelp)
				return nil
			}
		}
	}

	m.frame.Reset()
	m.frame.Clear = menuClear
	sel := m.title.selection
	if m.audio.IsPlaying(audio.SoundSelect) {
		sel = -1
	}
	m.frame.Menu = &scene.Menu{Title: "OMEGA THUNDER", Items: menuItems, Selection: sel}
	return nil
}

func (m *Manager) updateHelp() error {
	if ev, ok := m.input.Poll(); ok {
		if quits(ev) {
			return ErrQuit
		}
		if ev.Pressed(input.KeyEnter) && !m.audio.IsPlaying(audio.SoundSelect) {
			m.audio.Play(audio.SoundSelect, false)
			m.help.confirmed = true
		}
	}
	if m.help.confirmed && !m.audio.IsPlaying(audio.SoundSelect) {
		m.setScreen(ScreenGame)
		return nil
	}

	m.frame.Reset()
	m.frame.Clear = menuClear
	m.frame.Menu = &scene.Menu{Title: "HOW TO PLAY", Selection: -1, Lines: helpLines}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
