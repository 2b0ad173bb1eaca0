// Package input models the discrete events the game reacts to and the
// source that produces them. A Source is polled once per tick and yields at
// most one event per Poll call, so events that arrive in a burst are handled
// over consecutive ticks.
package input

//go:generate go tool mockgen -destination=../mocks/source_mock.go -package=mocks . Source

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyF
	KeyEnter
	KeyEscape
	KeyF1
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyA:
		return "a"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	case KeyF:
		return "f"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyF1:
		return "f1"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "none"
	}
}

// EventType is the kind of an Event.
type EventType int

// Event kinds.
const (
	KeyPress EventType = iota
	KeyRelease
	MouseLeftPress
	MouseRightPress
	WindowInactive
	WindowActive
	WindowClose
)

// Event is one discrete input occurrence.
type Event struct {
	Type EventType
	Key  Key
}

// Pressed reports whether e is a press of k.
func (e Event) Pressed(k Key) bool { return e.Type == KeyPress && e.Key == k }

// Released reports whether e is a release of k.
func (e Event) Released(k Key) bool { return e.Type == KeyRelease && e.Key == k }

// Source produces input for the game loop.
type Source interface {
	// Pump gathers whatever the platform reported since the last tick.
	Pump()
	// Poll returns the next pending event, if any.
	Poll() (Event, bool)
	// MouseMovement returns the relative mouse motion since the last call.
	MouseMovement() (dx, dy int)
	// Flush drops pending events and mouse motion.
	Flush()
}

// Queue is a FIFO of pending events. Backends embed it to implement Poll.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Poll removes and returns the oldest event.
func (q *Queue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0]
	}
	return e, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }

// Clear drops every pending event.
func (q *Queue) Clear() { q.events = q.events[:0] }
