package platform

// EventType identifies input events.
type EventType uint8

const (
	EventQuit EventType = iota
	EventKeyDown
	EventKeyUp
	EventClick
	EventPause // toggle the simulation pause
)

// Direction is a directional key.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit step for the direction in screen coordinates.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Event represents a single input event.
type Event struct {
	Type EventType
	Dir  Direction // for EventKeyDown
	X, Y int       // for EventClick
}

// NewQuitEvent creates a quit event.
func NewQuitEvent() Event {
	return Event{Type: EventQuit}
}

// NewKeyDownEvent creates a directional key press.
func NewKeyDownEvent(dir Direction) Event {
	return Event{Type: EventKeyDown, Dir: dir}
}

// NewKeyUpEvent creates a key release.
func NewKeyUpEvent() Event {
	return Event{Type: EventKeyUp}
}

// NewClickEvent creates a click at arena coordinates.
func NewClickEvent(x, y int) Event {
	return Event{Type: EventClick, X: x, Y: y}
}

// NewPauseEvent creates a pause toggle.
func NewPauseEvent() Event {
	return Event{Type: EventPause}
}
