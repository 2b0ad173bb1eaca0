package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"chosenoffset.com/omegathunder/internal/anim"
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/config"
	"chosenoffset.com/omegathunder/internal/input"
	"chosenoffset.com/omegathunder/internal/render"
	"chosenoffset.com/omegathunder/internal/screenshot"
)

// ErrQuit is returned from Update when the player asked to leave. It ends
// the game loop without being a failure.
var ErrQuit = errors.New("quit")

// Screen is the top level screen the manager shows.
type Screen int

// Screens in the order a session normally visits them.
const (
	ScreenTitle Screen = iota
	ScreenHelp
	ScreenGame
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title_screen"
	case ScreenHelp:
		return "help_screen"
	case ScreenGame:
		return "game"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Title menu entries.
const (
	menuStart = iota
	menuQuit
	menuCount
)

// Clock reports monotonic time since an arbitrary origin.
type Clock func() time.Duration

// Options wires a Manager to its collaborators.
type Options struct {
	Renderer    render.Renderer
	Input       input.Source
	Audio       audio.Player
	Anim        anim.Animator
	Rand        *rand.Rand
	Clock       Clock // wall clock when nil
	Screenshots *screenshot.Writer
	Config      *config.Config
}
