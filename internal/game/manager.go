package game

import (
	"log"
	"math/rand/v2"
	"time"

	"chosenoffset.com/omegathunder/internal/anim"
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/config"
	"chosenoffset.com/omegathunder/internal/input"
	"chosenoffset.com/omegathunder/internal/render"
	"chosenoffset.com/omegathunder/internal/render/scene"
	"chosenoffset.com/omegathunder/internal/screenshot"
	"chosenoffset.com/omegathunder/internal/world"
)

// Manager handles the overall game state: the title and help menus, the
// game screen and the game over screen. Every Update records one frame that
// the next Draw replays.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int

	renderer render.Renderer
	input    input.Source
	audio    audio.Player
	anim     anim.Animator
	rng      *rand.Rand
	clock    Clock
	shots    *screenshot.Writer
	cfg      *config.Config

	screen Screen
	frame  *scene.Frame
	World  *world.World

	lastTick     time.Duration
	clockStarted bool
	suspended    bool

	title titleState
	help  helpState
	over  overState
}

// NewManager creates a manager showing the title screen.
func NewManager(opts Options) *Manager {
	if opts.Clock == nil {
		start := time.Now()
		opts.Clock = func() time.Duration { return time.Since(start) }
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Screenshots == nil {
		opts.Screenshots = screenshot.NewWriter(opts.Config.Screenshots.Dir)
	}
	m := &Manager{
		ScreenWidth:  opts.Config.Window.Width,
		ScreenHeight: opts.Config.Window.Height,
		renderer:     opts.Renderer,
		input:        opts.Input,
		audio:        opts.Audio,
		anim:         opts.Anim,
		rng:          opts.Rand,
		clock:        opts.Clock,
		shots:        opts.Screenshots,
		cfg:          opts.Config,
		screen:       ScreenTitle,
		frame:        scene.NewFrame(),
	}
	m.enter(ScreenTitle)
	return m
}

// Screen returns the screen being shown.
func (m *Manager) Screen() Screen { return m.screen }

// Frame returns the frame the next Draw replays.
func (m *Manager) Frame() *scene.Frame { return m.frame }

// Update runs one tick of the current screen.
func (m *Manager) Update() error {
	m.input.Pump()
	switch m.screen {
	case ScreenTitle:
		return m.updateTitle()
	case ScreenHelp:
		return m.updateHelp()
	case ScreenGame:
		return m.updateGame()
	case ScreenGameOver:
		return m.updateOver()
	}
	return nil
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.ScreenWidth = outsideWidth
	m.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// setScreen switches screens. The frame shown until the new screen's first
// update is the loading screen.
func (m *Manager) setScreen(s Screen) {
	log.Printf("Screen: %s -> %s", m.screen, s)
	m.screen = s
	m.frame.Reset()
	m.frame.Loading = true
	m.enter(s)
}

func (m *Manager) enter(s Screen) {
	m.clockStarted = false
	switch s {
	case ScreenTitle:
		m.enterTitle()
	case ScreenHelp:
		m.help = helpState{}
	case ScreenGame:
		m.enterGame()
	case ScreenGameOver:
		m.enterOver()
	}
}

// tick returns the wall clock ms since the previous tick. The first tick
// of a screen and the first after a resume return 0.
func (m *Manager) tick() float32 {
	now := m.clock()
	if !m.clockStarted {
		m.clockStarted = true
		m.lastTick = now
		return 0
	}
	elapsed := now - m.lastTick
	m.lastTick = now
	return float32(elapsed.Microseconds()) / 1000
}

// quits reports whether ev ends the session from any screen.
func quits(ev input.Event) bool {
	return ev.Type == input.WindowClose || ev.Pressed(input.KeyEscape)
}
