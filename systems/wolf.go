package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
)

// WolfOutcome reports which branch of the wolf behavior ran.
type WolfOutcome uint8

const (
	WolfStarved  WolfOutcome = iota // tagged dead, did not move
	WolfFled                        // dog too close
	WolfWandered                    // no prey
	WolfHunting                     // moved toward prey, out of reach
	WolfInReach                     // moved toward prey and can bite it
)

// String returns the outcome name.
func (o WolfOutcome) String() string {
	switch o {
	case WolfStarved:
		return "starved"
	case WolfFled:
		return "fled"
	case WolfWandered:
		return "wandered"
	case WolfHunting:
		return "hunting"
	case WolfInReach:
		return "in_reach"
	}
	return "unknown"
}

// WolfParams holds the wolf tuning and the current time.
type WolfParams struct {
	Now      int64
	Arena    Arena
	Speed    int
	StarveMS int64
	FleeDist int
	HuntDist int
}

// MoveWolf runs one tick of wolf behavior, in priority order: starvation,
// dog avoidance, wandering when no prey exists, hunting the nearest prey.
// dogPos is nil when there is no dog. When the outcome is WolfInReach the
// returned target is the prey to bite; the caller resolves the bite with
// WolfInteract and resets LastFed.
func MoveWolf(pos *components.Position, vel *components.Velocity, st *components.WolfState, status *components.Status,
	dogPos *components.Vec2, prey []Candidate, p WolfParams, rng *rand.Rand) (WolfOutcome, ecs.Entity) {
	// 1. Starvation
	if p.Now-st.LastFed > p.StarveMS {
		status.Set(components.StatusDead)
		vel.Vec2 = components.Vec2{}
		return WolfStarved, ecs.Entity{}
	}

	// 2. Dog avoidance
	if dogPos != nil && pos.Within(*dogPos, p.FleeDist) {
		vel.Vec2 = StepToward(*dogPos, pos.Vec2, p.Speed)
		if vel.X == 0 && vel.Y == 0 {
			// Standing on the dog: any direction is away
			vel.X = p.Speed
		}
		pos.Vec2 = p.Arena.Clamp(pos.Add(vel.Vec2))
		return WolfFled, ecs.Entity{}
	}

	// 3. No prey
	if len(prey) == 0 {
		Wander(pos, vel, p.Arena, p.Speed, rng)
		return WolfWandered, ecs.Entity{}
	}

	// 4. Hunt
	target, _ := Nearest(pos.Vec2, prey)
	vel.Vec2 = StepToward(pos.Vec2, target.Pos, p.Speed)
	pos.Vec2 = p.Arena.Clamp(pos.Add(vel.Vec2))

	if pos.Within(target.Pos, p.HuntDist) {
		return WolfInReach, target.E
	}
	return WolfHunting, target.E
}

// WolfInteract kills other when it is live prey. Returns true on a kill.
func WolfInteract(otherTags *components.Tags, otherStatus *components.Status) bool {
	if !otherTags.Has(components.TagPrey) || otherStatus.Is(components.StatusDead) {
		return false
	}
	otherStatus.Set(components.StatusDead)
	return true
}
