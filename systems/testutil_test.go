package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
)

// testArena returns the default 640x480 arena with a 100 margin.
func testArena() Arena {
	return ArenaFromConfig(config.Default())
}

// newEntities creates n distinct entities to use as candidate handles.
func newEntities(t *testing.T, n int) []ecs.Entity {
	t.Helper()
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](world)
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = mapper.NewEntity(&components.Position{})
	}
	return out
}

func vec(x, y int) components.Vec2 {
	return components.Vec2{X: x, Y: y}
}
