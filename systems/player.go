package systems

import "github.com/pthm-cable/pasture/components"

// PlayerVelocity translates a direction into the player's velocity.
// Components are reduced to their sign so diagonal input is not faster on
// either axis.
func PlayerVelocity(dx, dy, speed int) components.Vec2 {
	return components.Vec2{X: dx, Y: dy}.Sign().Scale(speed)
}

// MovePlayer advances the player and keeps its sprite fully on screen.
func MovePlayer(pos *components.Position, vel *components.Velocity, size components.Size, a Arena) {
	next := pos.Add(vel.Vec2)
	pos.X = clampInt(next.X, 0, max(a.Width-size.W, 0))
	pos.Y = clampInt(next.Y, 0, max(a.Height-size.H, 0))
}
