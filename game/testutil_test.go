package game

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/platform"
)

// testEnv bundles a world with the headless platform it draws on.
type testEnv struct {
	cfg     *config.Config
	p       *platform.Headless
	surface *platform.HeadlessSurface
	world   *World
}

// newTestEnv builds a world on a headless platform. mutate may adjust the
// default config before the world is created.
func newTestEnv(t *testing.T, seed int64, mutate func(*config.Config)) *testEnv {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
		cfg.ComputeDerived()
	}

	p := platform.NewHeadless()
	if _, err := p.CreateSurface(cfg.Screen.Width, cfg.Screen.Height); err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	textures := LoadTextures(p, cfg.Assets)
	w := NewWorld(cfg, p.Surface, textures, p.Clock, newRand(seed))

	return &testEnv{cfg: cfg, p: p, surface: p.Surface, world: w}
}

// tickAt sets the clock to ms and runs one tick.
func (env *testEnv) tickAt(ms int64) {
	env.p.Clock.Set(ms)
	env.world.Tick()
}

func mustView(t *testing.T, w *World, e ecs.Entity) EntityView {
	t.Helper()
	v, ok := w.View(e)
	if !ok {
		t.Fatalf("entity %v not in snapshot", e)
	}
	return v
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func vec(x, y int) components.Vec2 {
	return components.Vec2{X: x, Y: y}
}
