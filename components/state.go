package components

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/platform"
)

// SheepState holds breeding state.
type SheepState struct {
	LastBreed int64 // ms timestamp of the last successful breed (0 until then)
}

// WolfState holds hunting state. Prey and Dog are owned by the world and
// refreshed by it; a wolf only reads them.
type WolfState struct {
	LastFed int64 // ms timestamp of the last kill (0 until then)
	Dog     ecs.Entity
	Prey    []ecs.Entity
}

// PlayerState marks the player avatar.
type PlayerState struct{}

// DogMode is the dog's behavior state.
type DogMode uint8

const (
	DogOrbiting DogMode = iota
	DogMovingToTarget
	DogReturningToCenter
)

// String returns the mode name.
func (m DogMode) String() string {
	switch m {
	case DogOrbiting:
		return "orbiting"
	case DogMovingToTarget:
		return "moving_to_target"
	case DogReturningToCenter:
		return "returning_to_center"
	}
	return "unknown"
}

// DogState holds the dog's command state machine.
type DogState struct {
	Mode     DogMode
	Angle    float64 // orbit angle in degrees, kept in (-360, 360)
	Target   Vec2
	Awaiting bool // a command was started and waits for its destination
	Center   ecs.Entity
}

// Busy reports whether a command is being executed.
func (d *DogState) Busy() bool {
	return d.Mode != DogOrbiting
}

// Sprite holds the texture drawn for an entity. A nil Texture means the
// asset failed to load and the entity is not drawn.
type Sprite struct {
	Texture platform.Texture
}

// Drawable reports whether the sprite has a texture.
func (s *Sprite) Drawable() bool {
	return s.Texture != nil
}
