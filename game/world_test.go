package game

import (
	"slices"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/platform"
	"github.com/pthm-cable/pasture/telemetry"
)

func TestNewWorldCreatesPlayerAndDog(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	player := mustView(t, w, w.Player())
	if player.Kind != components.KindPlayer || player.Pos != vec(304, 224) {
		t.Errorf("player = %+v, want player at (304,224)", player)
	}

	dog := mustView(t, w, w.Dog())
	if dog.Kind != components.KindDog || dog.Pos != vec(344, 224) || dog.DogMode != components.DogOrbiting {
		t.Errorf("dog = %+v, want orbiting at (344,224)", dog)
	}

	c := w.Counts()
	if c.Sheep != 0 || c.Wolves != 0 || c.Population != 1 {
		t.Errorf("counts = %+v, want only the dog counted", c)
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, want 0", w.Score())
	}
}

func TestLoneSheepScenario(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	sheep, ok := w.Spawn(components.KindSheep, vec(200, 200), false)
	if !ok {
		t.Fatal("spawn refused")
	}
	w.SetVelocity(sheep, vec(0, 0))

	for i := 0; i < 1000; i++ {
		env.tickAt(int64(i) * 16)

		if w.Score() != 1 {
			t.Fatalf("tick %d: score = %d, want 1", i, w.Score())
		}
		v := mustView(t, w, sheep)
		if v.Pos.X < 100 || v.Pos.X > 540 || v.Pos.Y < 100 || v.Pos.Y > 380 {
			t.Fatalf("tick %d: sheep at %v left [100,540]x[100,380]", i, v.Pos)
		}
	}
	if w.Ticks() != 1000 {
		t.Errorf("ticks = %d, want 1000", w.Ticks())
	}
}

func TestStarvingWolfScenario(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	wolf, ok := w.Spawn(components.KindWolf, vec(200, 300), false)
	if !ok {
		t.Fatal("spawn refused")
	}

	env.tickAt(4000)
	env.tickAt(8000)
	if !w.Alive(wolf) || len(w.Wolves()) != 1 {
		t.Fatal("wolf died before the starvation threshold")
	}

	env.tickAt(8001)
	if w.Alive(wolf) {
		t.Error("starved wolf still alive")
	}
	if len(w.Wolves()) != 0 {
		t.Errorf("wolves = %v, want empty", w.Wolves())
	}
	for _, v := range w.Snapshot() {
		if v.Entity == wolf {
			t.Error("starved wolf still in the world")
		}
	}
	if w.Counts().Population != 1 {
		t.Errorf("population = %d, want 1", w.Counts().Population)
	}
}

func TestPopulationCap(t *testing.T) {
	env := newTestEnv(t, 1, func(c *config.Config) {
		c.Population.MaxAnimals = 5
	})
	w := env.world

	// The dog counts: room for four animals
	for i := 0; i < 4; i++ {
		if _, ok := w.Spawn(components.KindSheep, vec(0, 0), true); !ok {
			t.Fatalf("spawn %d refused below the cap", i)
		}
	}
	before := w.Counts()

	for _, kind := range []components.Kind{components.KindSheep, components.KindWolf} {
		if _, ok := w.Spawn(kind, vec(200, 200), false); ok {
			t.Errorf("%v spawned at the cap", kind)
		}
	}
	if got := w.Counts(); got != before {
		t.Errorf("counts changed at the cap: %+v -> %+v", before, got)
	}
	if len(w.Snapshot()) != 6 {
		t.Errorf("snapshot has %d entities, want player + dog + 4 sheep", len(w.Snapshot()))
	}
}

func TestSpawnRefusesSingletons(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	for _, kind := range []components.Kind{components.KindPlayer, components.KindDog} {
		if _, ok := w.Spawn(kind, vec(200, 200), false); ok {
			t.Errorf("spawned a second %v", kind)
		}
	}
	if len(w.Snapshot()) != 2 {
		t.Errorf("snapshot has %d entities, want 2", len(w.Snapshot()))
	}
}

func TestRandomSpawnInsideArena(t *testing.T) {
	env := newTestEnv(t, 3, nil)
	w := env.world
	w.SpawnInitialPopulation()

	c := w.Counts()
	if c.Sheep != 10 || c.Wolves != 2 {
		t.Fatalf("counts = %+v, want 10 sheep and 2 wolves", c)
	}
	for _, v := range w.Snapshot() {
		if v.Kind != components.KindSheep && v.Kind != components.KindWolf {
			continue
		}
		if v.Pos.X < 100 || v.Pos.X > 540 || v.Pos.Y < 100 || v.Pos.Y > 380 {
			t.Errorf("%v spawned outside the arena at %v", v.Kind, v.Pos)
		}
		if v.Vel == vec(0, 0) {
			t.Errorf("%v spawned without velocity", v.Kind)
		}
		if v.Kind == components.KindSheep && v.Sex == components.SexNone {
			t.Error("sheep spawned without a sex")
		}
	}
}

// breedingPair returns an env holding a ewe and a ram at the same point,
// spawned with the clock at at.
func breedingPair(t *testing.T, at int64) (env *testEnv, ewe, ram ecs.Entity) {
	t.Helper()
	for seed := int64(1); seed < 64; seed++ {
		env = newTestEnv(t, seed, nil)
		env.p.Clock.Set(at)
		a, _ := env.world.Spawn(components.KindSheep, vec(200, 200), false)
		b, _ := env.world.Spawn(components.KindSheep, vec(200, 200), false)
		sa, sb := mustView(t, env.world, a).Sex, mustView(t, env.world, b).Sex
		if sa == sb {
			continue
		}
		env.world.SetVelocity(a, vec(0, 0))
		env.world.SetVelocity(b, vec(0, 0))
		if sa == components.SexFemale {
			return env, a, b
		}
		return env, b, a
	}
	t.Fatal("no seed produced a ewe and a ram")
	return nil, ecs.Entity{}, ecs.Entity{}
}

func TestBreedingThroughSweeps(t *testing.T) {
	env, ewe, _ := breedingPair(t, 0)
	w := env.world

	// Cooldown counts from the clock epoch
	env.tickAt(3999)
	if w.Score() != 2 {
		t.Fatalf("score = %d before the cooldown elapsed, want 2", w.Score())
	}

	env.tickAt(4000)
	if w.Score() != 3 {
		t.Fatalf("score = %d after breeding, want 3", w.Score())
	}
	sheep := w.Sheep()
	lamb := sheep[len(sheep)-1]
	if got := mustView(t, w, lamb).Pos; got != vec(200, 200) {
		t.Errorf("lamb spawned at %v, want (200,200)", got)
	}
	if mustView(t, w, ewe).Child {
		t.Error("child flag not cleared by the birth sweep")
	}

	// One sweep later the ewe is within her cooldown while a ewe lamb,
	// which never bred, conceives with the ram at once.
	env.p.Clock.Set(5000)
	w.resolveInteractions(5000)
	if mustView(t, w, ewe).Child {
		t.Error("ewe conceived again within the cooldown")
	}
	l := mustView(t, w, lamb)
	if wantChild := l.Sex == components.SexFemale; l.Child != wantChild {
		t.Errorf("%v lamb child = %v, want %v", l.Sex, l.Child, wantChild)
	}
}

func TestLateSpawnedPairBreedsOnFirstSweep(t *testing.T) {
	env, _, _ := breedingPair(t, 10000)

	env.tickAt(10000)
	if got := env.world.Score(); got != 3 {
		t.Errorf("score = %d after the first tick, want 3", got)
	}
}

func TestLateSpawnedWolfStarvesOnFirstTick(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	env.p.Clock.Set(10000)
	wolf, ok := w.Spawn(components.KindWolf, vec(200, 300), false)
	if !ok {
		t.Fatal("spawn refused")
	}

	env.tickAt(10000)
	if w.Alive(wolf) || len(w.Wolves()) != 0 {
		t.Error("wolf that never fed outlived the starvation threshold")
	}
}

func TestPreyKilledMidSweepIsNotMoved(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	// The wolf iterates before the sheep
	w.Spawn(components.KindWolf, vec(200, 200), false)
	sheep, _ := w.Spawn(components.KindSheep, vec(205, 200), false)
	w.SetVelocity(sheep, vec(2, 0))

	env.p.Clock.Set(100)
	w.updateEntities(100)

	v := mustView(t, w, sheep)
	if !v.Dead {
		t.Fatal("sheep in reach was not killed")
	}
	if v.Pos != vec(205, 200) {
		t.Errorf("dead sheep moved to %v", v.Pos)
	}
	// dog and wolf
	if len(env.surface.Blits) != 2 {
		t.Fatalf("got %d blits, want 2", len(env.surface.Blits))
	}
	for _, b := range env.surface.Blits {
		if b.Texture.(*platform.HeadlessTexture).Path == env.cfg.Assets.Sheep {
			t.Error("dead sheep was drawn")
		}
	}
}

func TestSharedPreyKilledOnce(t *testing.T) {
	env := newTestEnv(t, 1, func(c *config.Config) {
		c.Telemetry.WindowTicks = 1
	})
	w := env.world

	var kills []int
	w.SetStatsCallback(func(s telemetry.WindowStats) {
		kills = append(kills, s.Kills)
	})

	a, _ := w.Spawn(components.KindWolf, vec(200, 200), false)
	b, _ := w.Spawn(components.KindWolf, vec(210, 200), false)
	sheep, _ := w.Spawn(components.KindSheep, vec(205, 200), false)
	w.SetVelocity(sheep, vec(0, 0))

	env.tickAt(1000)

	if w.Alive(sheep) {
		t.Fatal("sheep between two wolves survived")
	}
	if !slices.Equal(kills, []int{1}) {
		t.Errorf("kills per window = %v, want [1]", kills)
	}
	fedA := w.wolfMap.Get(a).LastFed == 1000
	fedB := w.wolfMap.Get(b).LastFed == 1000
	if fedA == fedB {
		t.Errorf("fed wolves: a=%v b=%v, want exactly one", fedA, fedB)
	}
}

func TestWolfKillRefreshesPrey(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	wolf, _ := w.Spawn(components.KindWolf, vec(200, 200), false)
	near, _ := w.Spawn(components.KindSheep, vec(205, 200), false)
	far, _ := w.Spawn(components.KindSheep, vec(500, 350), false)
	w.SetVelocity(near, vec(0, 0))
	w.SetVelocity(far, vec(0, 0))

	// Sheep spawned after the wolf are pushed to it
	if prey := w.WolfPrey(wolf); len(prey) != 2 || !slices.Contains(prey, near) || !slices.Contains(prey, far) {
		t.Fatalf("wolf prey = %v, want both sheep", prey)
	}

	env.tickAt(1000)

	if w.Alive(near) {
		t.Fatal("sheep in reach survived")
	}
	if w.Score() != 1 {
		t.Errorf("score = %d, want 1", w.Score())
	}
	if prey := w.WolfPrey(wolf); !slices.Equal(prey, []ecs.Entity{far}) {
		t.Errorf("wolf prey after kill = %v, want [%v]", prey, far)
	}

	// Feeding at 1000 postpones starvation to 9000
	env.tickAt(8500)
	if !w.Alive(wolf) {
		t.Fatal("fed wolf starved early")
	}
	env.tickAt(9001)
	if w.Alive(wolf) {
		t.Error("wolf did not starve 8000ms after its last meal")
	}
}

func TestClickTogglesDogCommand(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world
	dogPos := mustView(t, w, w.Dog()).Pos

	// Far from the dog without a command: ignored
	w.SetClickInput(0, 0)
	if w.Commanding() {
		t.Fatal("far click started a command")
	}

	// Near the dog: armed
	w.SetClickInput(dogPos.X+10, dogPos.Y)
	if !w.Commanding() {
		t.Fatal("click near the dog did not start a command")
	}

	// Destination
	w.SetClickInput(500, 300)
	if w.Commanding() {
		t.Fatal("destination click did not end the command")
	}
	env.tickAt(16)
	if mode := mustView(t, w, w.Dog()).DogMode; mode != components.DogMovingToTarget {
		t.Fatalf("dog mode = %v, want moving_to_target", mode)
	}

	// While the dog is busy a click on it cannot arm a new command
	dogPos = mustView(t, w, w.Dog()).Pos
	w.SetClickInput(dogPos.X, dogPos.Y)
	if w.Commanding() {
		t.Error("command started while the dog was busy")
	}
}

func TestDrawOrderPlayerLast(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world
	w.Spawn(components.KindSheep, vec(200, 200), false)
	w.Spawn(components.KindWolf, vec(400, 300), false)

	env.tickAt(16)

	if env.surface.Background != platform.Grass {
		t.Errorf("background = %v, want grass", env.surface.Background)
	}
	blits := env.surface.Blits
	if len(blits) != 4 {
		t.Fatalf("got %d blits, want 4", len(blits))
	}
	last := blits[len(blits)-1]
	if tex := last.Texture.(*platform.HeadlessTexture); tex.Path != env.cfg.Assets.Player {
		t.Errorf("last blit is %q, want the player", tex.Path)
	}
	player := mustView(t, w, w.Player())
	if last.Dst != (platform.Rect{X: player.Pos.X, Y: player.Pos.Y, W: 32, H: 32}) {
		t.Errorf("player drawn at %+v", last.Dst)
	}
}

func TestMissingAssetIsNotDrawn(t *testing.T) {
	cfg := config.Default()
	p := platform.NewHeadless()
	p.MarkMissing(cfg.Assets.Wolf)
	surface, err := p.CreateSurface(cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		t.Fatal(err)
	}

	textures := LoadTextures(p, cfg.Assets)
	if _, ok := textures[components.KindWolf]; ok {
		t.Fatal("missing wolf texture loaded")
	}

	env := &testEnv{cfg: cfg, p: p, surface: p.Surface}
	env.world = NewWorld(cfg, surface, textures, p.Clock, newRand(1))
	wolf, _ := env.world.Spawn(components.KindWolf, vec(400, 300), false)

	env.tickAt(16)
	if !env.world.Alive(wolf) {
		t.Fatal("wolf without sprite was removed")
	}
	// dog + player only
	if len(env.surface.Blits) != 2 {
		t.Errorf("got %d blits, want 2", len(env.surface.Blits))
	}
}

func TestPlayerDirection(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world

	w.SetPlayerDirection(1, 0)
	env.tickAt(16)
	if got := mustView(t, w, w.Player()).Pos; got != vec(308, 224) {
		t.Errorf("player at %v, want (308,224)", got)
	}

	w.SetPlayerDirection(0, 0)
	env.tickAt(32)
	if got := mustView(t, w, w.Player()).Pos; got != vec(308, 224) {
		t.Errorf("stopped player moved to %v", got)
	}
}

func TestHUD(t *testing.T) {
	env := newTestEnv(t, 1, nil)
	w := env.world
	w.Spawn(components.KindSheep, vec(200, 200), false)

	env.tickAt(16)
	w.DrawHUD(true)

	want := platform.HUD{Tick: 1, Sheep: 1, Wolves: 0, Stopped: true}
	if env.surface.LastHUD != want {
		t.Errorf("HUD = %+v, want %+v", env.surface.LastHUD, want)
	}
}
