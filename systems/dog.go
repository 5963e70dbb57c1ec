package systems

import (
	"math"

	"github.com/pthm-cable/pasture/components"
)

// DogParams holds the dog tuning.
type DogParams struct {
	Speed        int
	OrbitRadius  float64
	RotationStep float64 // degrees per tick
	ArriveDist   int
}

// StartCommand arms the dog for a destination. It is refused while a
// command is pending or being executed.
func StartCommand(d *components.DogState) bool {
	if d.Awaiting || d.Busy() {
		return false
	}
	d.Awaiting = true
	return true
}

// EndCommand sends an armed dog to target.
func EndCommand(d *components.DogState, target components.Vec2) bool {
	if !d.Awaiting || d.Mode == components.DogMovingToTarget {
		return false
	}
	d.Awaiting = false
	d.Target = target
	d.Mode = components.DogMovingToTarget
	return true
}

// MoveDog runs one tick of the dog state machine around center, the
// player's current position. An armed dog keeps orbiting until it gets
// its destination.
func MoveDog(pos *components.Position, vel *components.Velocity, d *components.DogState, center components.Vec2, p DogParams) {
	switch d.Mode {
	case components.DogMovingToTarget:
		vel.Vec2 = StepToward(pos.Vec2, d.Target, p.Speed)
		pos.Vec2 = pos.Add(vel.Vec2)
		if pos.Within(d.Target, p.ArriveDist) {
			d.Mode = components.DogReturningToCenter
		}

	case components.DogReturningToCenter:
		vel.Vec2 = StepToward(pos.Vec2, center, p.Speed)
		pos.Vec2 = pos.Add(vel.Vec2)
		if float64(pos.DistSq(center)) < p.OrbitRadius*p.OrbitRadius {
			d.Mode = components.DogOrbiting
		}

	default:
		prev := pos.Vec2
		pos.Vec2 = OrbitPoint(center, p.OrbitRadius, d.Angle)
		vel.Vec2 = pos.Sub(prev)
		d.Angle = AdvanceAngle(d.Angle, p.RotationStep)
	}
}

// OrbitPoint returns the point at angle degrees on the circle of the given
// radius around center.
func OrbitPoint(center components.Vec2, radius, angle float64) components.Vec2 {
	rad := angle * math.Pi / 180
	return components.Vec2{
		X: center.X + int(math.Round(math.Cos(rad)*radius)),
		Y: center.Y + int(math.Round(math.Sin(rad)*radius)),
	}
}

// AdvanceAngle adds step to angle, resetting to 0 once a full turn is
// reached in either direction.
func AdvanceAngle(angle, step float64) float64 {
	angle += step
	if angle >= 360 || angle <= -360 {
		return 0
	}
	return angle
}
