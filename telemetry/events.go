// Package telemetry provides per-window population statistics, tick timing
// and CSV output.
package telemetry

import "github.com/pthm-cable/pasture/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventBirth EventType = iota
	EventKill
	EventStarve
	EventCapDrop // spawn refused by the population cap
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventBirth:
		return "birth"
	case EventKill:
		return "kill"
	case EventStarve:
		return "starve"
	case EventCapDrop:
		return "cap_drop"
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int64
	Kind components.Kind
}

// NewBirthEvent creates a birth event for a spawned child.
func NewBirthEvent(tick int64, kind components.Kind) Event {
	return Event{Type: EventBirth, Tick: tick, Kind: kind}
}

// NewKillEvent creates a kill event (prey bitten by a wolf).
func NewKillEvent(tick int64) Event {
	return Event{Type: EventKill, Tick: tick, Kind: components.KindSheep}
}

// NewStarveEvent creates a starvation event.
func NewStarveEvent(tick int64) Event {
	return Event{Type: EventStarve, Tick: tick, Kind: components.KindWolf}
}

// NewCapDropEvent creates an event for a spawn refused by the cap.
func NewCapDropEvent(tick int64, kind components.Kind) Event {
	return Event{Type: EventCapDrop, Tick: tick, Kind: kind}
}
