// Package game owns the simulation world and the frame loop that drives it.
package game

import (
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/platform"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// World holds the complete simulation state.
type World struct {
	cfg   *config.Config
	arena systems.Arena
	world *ecs.World
	rng   *rand.Rand
	clock platform.Clock

	surface  platform.Surface
	textures Textures

	// Entity mapper and filter over the components every entity carries
	entityMapper *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Size,
		components.Identity,
		components.Tags,
		components.Status,
		components.Sprite,
	]
	entityFilter *ecs.Filter7[
		components.Position,
		components.Velocity,
		components.Size,
		components.Identity,
		components.Tags,
		components.Status,
		components.Sprite,
	]

	// Individual component mappers for lookups
	posMap    *ecs.Map[components.Position]
	velMap    *ecs.Map[components.Velocity]
	sizeMap   *ecs.Map[components.Size]
	idMap     *ecs.Map[components.Identity]
	tagsMap   *ecs.Map[components.Tags]
	statusMap *ecs.Map[components.Status]
	spriteMap *ecs.Map[components.Sprite]

	// Per-kind state
	sheepMap  *ecs.Map[components.SheepState]
	wolfMap   *ecs.Map[components.WolfState]
	dogMap    *ecs.Map[components.DogState]
	playerMap *ecs.Map[components.PlayerState]

	// Per-kind views, in spawn order
	sheep  []ecs.Entity
	wolves []ecs.Entity
	player ecs.Entity
	dog    ecs.Entity

	// prey is the list last pushed to every wolf
	prey []ecs.Entity

	// A dog command is outstanding
	commanding bool

	tick int64

	wolfParams systems.WolfParams
	dogParams  systems.DogParams

	// Scratch buffers reused across ticks
	candidates []systems.Candidate
	females    []systems.Candidate
	males      []systems.Candidate
	neighbors  []systems.Neighbor
	dead       []ecs.Entity
	births     []components.Vec2

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewWorld creates a world holding the player and the dog. Animals are
// added with Spawn.
func NewWorld(cfg *config.Config, surface platform.Surface, textures Textures, clock platform.Clock, rng *rand.Rand) *World {
	world := ecs.NewWorld()

	w := &World{
		cfg:      cfg,
		arena:    systems.ArenaFromConfig(cfg),
		world:    world,
		rng:      rng,
		clock:    clock,
		surface:  surface,
		textures: textures,
		entityMapper: ecs.NewMap7[
			components.Position,
			components.Velocity,
			components.Size,
			components.Identity,
			components.Tags,
			components.Status,
			components.Sprite,
		](world),
		entityFilter: ecs.NewFilter7[
			components.Position,
			components.Velocity,
			components.Size,
			components.Identity,
			components.Tags,
			components.Status,
			components.Sprite,
		](world),
		posMap:    ecs.NewMap[components.Position](world),
		velMap:    ecs.NewMap[components.Velocity](world),
		sizeMap:   ecs.NewMap[components.Size](world),
		idMap:     ecs.NewMap[components.Identity](world),
		tagsMap:   ecs.NewMap[components.Tags](world),
		statusMap: ecs.NewMap[components.Status](world),
		spriteMap: ecs.NewMap[components.Sprite](world),
		sheepMap:  ecs.NewMap[components.SheepState](world),
		wolfMap:   ecs.NewMap[components.WolfState](world),
		dogMap:    ecs.NewMap[components.DogState](world),
		playerMap: ecs.NewMap[components.PlayerState](world),
		wolfParams: systems.WolfParams{
			Speed:    cfg.Speed.Wolf,
			StarveMS: cfg.Timers.StarveMS,
			FleeDist: cfg.Distance.Flee,
			HuntDist: cfg.Distance.Hunt,
		},
		dogParams: systems.DogParams{
			Speed:        cfg.Speed.Dog,
			OrbitRadius:  cfg.Dog.OrbitRadius,
			RotationStep: cfg.Dog.RotationStep,
			ArriveDist:   cfg.Distance.Arrive,
		},
		collector: telemetry.NewCollector(int64(cfg.Telemetry.WindowTicks)),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.WindowTicks),
	}
	w.wolfParams.Arena = w.arena

	// The dog orbits the player and every wolf refers to the dog, so both
	// exist before any animal.
	w.player = w.spawnPlayer()
	w.dog = w.spawnDog(w.player)

	return w
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() int64 {
	return w.tick
}

// Score returns the number of live sheep.
func (w *World) Score() int {
	return len(w.sheep)
}

// Counts holds population sizes.
type Counts struct {
	Sheep      int
	Wolves     int
	Population int // entities counted against the cap
}

// Counts returns the current population sizes.
func (w *World) Counts() Counts {
	return Counts{
		Sheep:      len(w.sheep),
		Wolves:     len(w.wolves),
		Population: w.population(),
	}
}

// population is the number of entities counted against the cap: the dog and
// every animal. The player is not counted.
func (w *World) population() int {
	return 1 + len(w.sheep) + len(w.wolves)
}

// Player returns the player entity.
func (w *World) Player() ecs.Entity {
	return w.player
}

// Dog returns the dog entity.
func (w *World) Dog() ecs.Entity {
	return w.dog
}

// Sheep returns a copy of the live sheep list.
func (w *World) Sheep() []ecs.Entity {
	return slices.Clone(w.sheep)
}

// Wolves returns a copy of the live wolf list.
func (w *World) Wolves() []ecs.Entity {
	return slices.Clone(w.wolves)
}

// Alive reports whether e is still in the world.
func (w *World) Alive(e ecs.Entity) bool {
	return w.world.Alive(e)
}

// Commanding reports whether a dog command is outstanding.
func (w *World) Commanding() bool {
	return w.commanding
}

// WolfPrey returns the prey list held by wolf e, or nil if e is not a wolf.
func (w *World) WolfPrey(e ecs.Entity) []ecs.Entity {
	if !w.world.Alive(e) || !w.wolfMap.Has(e) {
		return nil
	}
	return w.wolfMap.Get(e).Prey
}

// SetVelocity overrides the velocity of e. Returns false if e is gone.
func (w *World) SetVelocity(e ecs.Entity, v components.Vec2) bool {
	if !w.world.Alive(e) || !w.velMap.Has(e) {
		return false
	}
	w.velMap.Get(e).Vec2 = v
	return true
}

// EntityView is a read-only copy of an entity's state.
type EntityView struct {
	Entity  ecs.Entity
	Kind    components.Kind
	Sex     components.Sex
	Pos     components.Vec2
	Vel     components.Vec2
	Size    components.Size
	Dead    bool
	Child   bool
	DogMode components.DogMode
}

// Snapshot returns a view of every entity in ECS iteration order.
func (w *World) Snapshot() []EntityView {
	var out []EntityView
	query := w.entityFilter.Query()
	for query.Next() {
		e := query.Entity()
		pos, vel, size, id, _, status, _ := query.Get()
		v := EntityView{
			Entity: e,
			Kind:   id.Kind,
			Sex:    id.Sex,
			Pos:    pos.Vec2,
			Vel:    vel.Vec2,
			Size:   *size,
			Dead:   status.Is(components.StatusDead),
			Child:  status.Is(components.StatusChild),
		}
		if id.Kind == components.KindDog {
			v.DogMode = w.dogMap.Get(e).Mode
		}
		out = append(out, v)
	}
	return out
}

// View returns the view of a single entity.
func (w *World) View(e ecs.Entity) (EntityView, bool) {
	for _, v := range w.Snapshot() {
		if v.Entity == e {
			return v, true
		}
	}
	return EntityView{}, false
}
