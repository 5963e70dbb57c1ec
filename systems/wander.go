package systems

import (
	"math/rand"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
)

// Arena holds the screen size and the inset boundary animals stay within.
type Arena struct {
	Width, Height int
	MinX, MinY    int
	MaxX, MaxY    int
	Overshoot     int
}

// ArenaFromConfig builds the arena from a loaded config.
func ArenaFromConfig(cfg *config.Config) Arena {
	return Arena{
		Width:     cfg.Screen.Width,
		Height:    cfg.Screen.Height,
		MinX:      cfg.Derived.MinX,
		MinY:      cfg.Derived.MinY,
		MaxX:      cfg.Derived.MaxX,
		MaxY:      cfg.Derived.MaxY,
		Overshoot: cfg.Arena.Overshoot,
	}
}

// Contains reports whether p lies inside the inset boundary.
func (a Arena) Contains(p components.Vec2) bool {
	return p.X >= a.MinX && p.X <= a.MaxX && p.Y >= a.MinY && p.Y <= a.MaxY
}

// Clamp pulls p inside the inset boundary.
func (a Arena) Clamp(p components.Vec2) components.Vec2 {
	p.X = clampInt(p.X, a.MinX, a.MaxX)
	p.Y = clampInt(p.Y, a.MinY, a.MaxY)
	return p
}

// RandomPosition returns a uniformly random point inside the inset boundary.
func (a Arena) RandomPosition(rng *rand.Rand) components.Vec2 {
	return components.Vec2{
		X: a.MinX + rng.Intn(a.MaxX-a.MinX+1),
		Y: a.MinY + rng.Intn(a.MaxY-a.MinY+1),
	}
}

// RandomSpeed returns a value uniformly drawn from [-speed, speed].
func RandomSpeed(speed int, rng *rand.Rand) int {
	if speed <= 0 {
		return 0
	}
	return rng.Intn(2*speed+1) - speed
}

// RandomVelocity returns a velocity with both components in [-speed, speed],
// never (0, 0) when speed > 0.
func RandomVelocity(speed int, rng *rand.Rand) components.Vec2 {
	v := components.Vec2{X: RandomSpeed(speed, rng), Y: RandomSpeed(speed, rng)}
	for speed > 0 && v.X == 0 && v.Y == 0 {
		v = components.Vec2{X: RandomSpeed(speed, rng), Y: RandomSpeed(speed, rng)}
	}
	return v
}

// Wander advances pos by vel, reflecting off the inset boundary.
// When the step would cross an edge the position is clamped just inside it,
// the velocity component perpendicular to that edge is reversed and the
// parallel one is redrawn from [-speed, speed]. Returns true on a bounce,
// in which case the position is not advanced this tick.
func Wander(pos *components.Position, vel *components.Velocity, a Arena, speed int, rng *rand.Rand) bool {
	v := vel.Vec2
	next := pos.Add(v)
	hitX, hitY := false, false

	// Vertical edges
	if next.X > a.MaxX {
		pos.X = a.MaxX - a.Overshoot
		hitX = true
	} else if next.X < a.MinX {
		pos.X = a.MinX + a.Overshoot
		hitX = true
	}

	// Horizontal edges
	if next.Y > a.MaxY {
		pos.Y = a.MaxY - a.Overshoot
		hitY = true
	} else if next.Y < a.MinY {
		pos.Y = a.MinY + a.Overshoot
		hitY = true
	}

	switch {
	case hitX && hitY:
		// Corner: plain reflection on both axes
		vel.Vec2 = components.Vec2{X: -v.X, Y: -v.Y}
	case hitX:
		vel.X = -v.X
		vel.Y = redraw(vel.X, speed, rng)
	case hitY:
		vel.Y = -v.Y
		vel.X = redraw(vel.Y, speed, rng)
	default:
		pos.Vec2 = next
	}
	return hitX || hitY
}

// redraw picks a new parallel component, avoiding a standstill when the
// perpendicular one is zero.
func redraw(perp, speed int, rng *rand.Rand) int {
	v := RandomSpeed(speed, rng)
	for speed > 0 && perp == 0 && v == 0 {
		v = RandomSpeed(speed, rng)
	}
	return v
}

// StepToward returns the per-axis unit step from -> to scaled by speed.
func StepToward(from, to components.Vec2, speed int) components.Vec2 {
	return to.Sub(from).Sign().Scale(speed)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
