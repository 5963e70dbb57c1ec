package game

import (
	"log/slog"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/systems"
)

// SetPlayerDirection sets the player's velocity from a direction. Each
// component is reduced to its sign and scaled by the player speed.
func (w *World) SetPlayerDirection(dx, dy int) {
	w.velMap.Get(w.player).Vec2 = systems.PlayerVelocity(dx, dy, w.cfg.Speed.Player)
}

// SetClickInput interprets a click. Without an outstanding command, a click
// close to the dog arms it. With one, the click is the dog's destination.
// Every accepted click toggles the commanding flag.
func (w *World) SetClickInput(x, y int) {
	click := components.Vec2{X: x, Y: y}
	d := w.dogMap.Get(w.dog)

	if !w.commanding {
		dogPos := w.posMap.Get(w.dog).Vec2
		if !click.Within(dogPos, w.cfg.Distance.Click) {
			return
		}
		if systems.StartCommand(d) {
			w.commanding = true
			slog.Debug("dog command started", "tick", w.tick, "x", x, "y", y)
		}
		return
	}

	if systems.EndCommand(d, click) {
		slog.Debug("dog sent", "tick", w.tick, "x", x, "y", y)
	}
	w.commanding = false
}
