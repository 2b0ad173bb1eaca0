package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/omegathunder/internal/input"
)

var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyW:         input.KeyW,
	ebiten.KeyA:         input.KeyA,
	ebiten.KeyS:         input.KeyS,
	ebiten.KeyD:         input.KeyD,
	ebiten.KeyF:         input.KeyF,
	ebiten.KeyEnter:     input.KeyEnter,
	ebiten.KeyEscape:    input.KeyEscape,
	ebiten.KeyF1:        input.KeyF1,
	ebiten.KeyArrowUp:   input.KeyUp,
	ebiten.KeyArrowDown: input.KeyDown,
}

// InputSource turns Ebiten's polled input state into discrete events.
type InputSource struct {
	input.Queue

	focused    bool
	closeSent  bool
	cx, cy     int
	dx, dy     int
	cursorSeen bool
}

// NewInputSource creates an input source. The window is assumed focused.
func NewInputSource() *InputSource {
	return &InputSource{focused: true}
}

// Pump queues the events Ebiten reported since the previous tick.
func (s *InputSource) Pump() {
	if f := ebiten.IsFocused(); f != s.focused {
		s.focused = f
		if f {
			s.Push(input.Event{Type: input.WindowActive})
		} else {
			s.Push(input.Event{Type: input.WindowInactive})
		}
	}
	if ebiten.IsWindowBeingClosed() && !s.closeSent {
		s.closeSent = true
		s.Push(input.Event{Type: input.WindowClose})
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := keyBindings[k]; ok {
			s.Push(input.Event{Type: input.KeyPress, Key: key})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if key, ok := keyBindings[k]; ok {
			s.Push(input.Event{Type: input.KeyRelease, Key: key})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Push(input.Event{Type: input.MouseLeftPress})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.Push(input.Event{Type: input.MouseRightPress})
	}

	x, y := ebiten.CursorPosition()
	if s.cursorSeen {
		s.dx += x - s.cx
		s.dy += y - s.cy
	}
	s.cx, s.cy, s.cursorSeen = x, y, true
}

// MouseMovement returns the cursor motion accumulated since the last call.
func (s *InputSource) MouseMovement() (dx, dy int) {
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}

// Flush drops pending events and motion. The next Pump measures motion from
// wherever the cursor is then.
func (s *InputSource) Flush() {
	s.Clear()
	s.dx, s.dy = 0, 0
	s.cursorSeen = false
}
