package game

import (
	"log/slog"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// SpawnInitialPopulation adds the configured starting herd and pack at
// random positions.
func (w *World) SpawnInitialPopulation() {
	for i := 0; i < w.cfg.Population.InitialSheep; i++ {
		w.Spawn(components.KindSheep, components.Vec2{}, true)
	}
	for i := 0; i < w.cfg.Population.InitialWolves; i++ {
		w.Spawn(components.KindWolf, components.Vec2{}, true)
	}
}

// Spawn adds an animal at pos, or at a random point inside the arena when
// random is set. Only sheep and wolves can be spawned; the player and the
// dog are created with the world. Requests beyond the population cap are
// dropped and report false.
func (w *World) Spawn(kind components.Kind, pos components.Vec2, random bool) (ecs.Entity, bool) {
	if kind != components.KindSheep && kind != components.KindWolf {
		return ecs.Entity{}, false
	}
	if w.population() >= w.cfg.Population.MaxAnimals {
		w.collector.Record(telemetry.NewCapDropEvent(w.tick, kind))
		slog.Debug("spawn dropped at population cap", "tick", w.tick, "kind", kind.String())
		return ecs.Entity{}, false
	}

	if random {
		pos = w.arena.RandomPosition(w.rng)
	}

	id := components.Identity{Kind: kind}
	speed := w.cfg.Speed.Wolf
	if kind == components.KindSheep {
		speed = w.cfg.Speed.Sheep
		id.Sex = components.SexMale
		if w.rng.Intn(2) == 0 {
			id.Sex = components.SexFemale
		}
	}

	size := w.cfg.Entity.AnimalSize
	entity := w.newEntity(id, pos, systems.RandomVelocity(speed, w.rng), components.Size{W: size, H: size})

	switch kind {
	case components.KindSheep:
		// Breed and feed timers count from the clock epoch, not from spawn
		w.sheepMap.Add(entity, &components.SheepState{LastBreed: 0})
		w.sheep = append(w.sheep, entity)
		// Newborns are huntable right away
		w.refreshPrey()
	case components.KindWolf:
		w.wolfMap.Add(entity, &components.WolfState{LastFed: 0, Dog: w.dog, Prey: w.prey})
		w.wolves = append(w.wolves, entity)
	}

	return entity, true
}

// spawnPlayer creates the player avatar at the center of the screen.
func (w *World) spawnPlayer() ecs.Entity {
	size := components.Size{W: w.cfg.Entity.PlayerSize, H: w.cfg.Entity.PlayerSize}
	pos := components.Vec2{
		X: (w.cfg.Screen.Width - size.W) / 2,
		Y: (w.cfg.Screen.Height - size.H) / 2,
	}
	entity := w.newEntity(components.Identity{Kind: components.KindPlayer}, pos, components.Vec2{}, size)
	w.playerMap.Add(entity, &components.PlayerState{})
	return entity
}

// spawnDog creates the dog orbiting center.
func (w *World) spawnDog(center ecs.Entity) ecs.Entity {
	size := components.Size{W: w.cfg.Entity.AnimalSize, H: w.cfg.Entity.AnimalSize}
	pos := systems.OrbitPoint(w.posMap.Get(center).Vec2, w.dogParams.OrbitRadius, 0)
	entity := w.newEntity(components.Identity{Kind: components.KindDog}, pos, components.Vec2{}, size)
	w.dogMap.Add(entity, &components.DogState{Center: center})
	return entity
}

// newEntity creates an entity with the components every kind carries.
// Capability tags are derived from the identity once, here.
func (w *World) newEntity(id components.Identity, p, v components.Vec2, size components.Size) ecs.Entity {
	pos := components.Position{Vec2: p}
	vel := components.Velocity{Vec2: v}
	tags := components.NewTags(id.CapabilityTags()...)
	var status components.Status
	sprite := components.Sprite{Texture: w.textures[id.Kind]}

	return w.entityMapper.NewEntity(&pos, &vel, &size, &id, &tags, &status, &sprite)
}

// cleanupDead removes entities flagged dead and refreshes the prey list
// when anything was removed.
func (w *World) cleanupDead() {
	// First pass: collect dead entities (must complete before modifying)
	w.dead = w.dead[:0]
	query := w.entityFilter.Query()
	for query.Next() {
		_, _, _, _, _, status, _ := query.Get()
		if status.Is(components.StatusDead) {
			w.dead = append(w.dead, query.Entity())
		}
	}
	if len(w.dead) == 0 {
		return
	}

	// Second pass: remove entities (query iteration complete)
	for _, e := range w.dead {
		switch w.idMap.Get(e).Kind {
		case components.KindSheep:
			w.sheep = removeEntity(w.sheep, e)
		case components.KindWolf:
			w.wolves = removeEntity(w.wolves, e)
		}
		w.world.RemoveEntity(e)
	}

	w.refreshPrey()
}

// refreshPrey rebuilds the list of entities tagged prey and pushes it to
// every wolf. Wolves share the new slice; it is never mutated afterwards.
func (w *World) refreshPrey() {
	prey := make([]ecs.Entity, 0, len(w.sheep))
	query := w.entityFilter.Query()
	for query.Next() {
		_, _, _, _, tags, _, _ := query.Get()
		if tags.Has(components.TagPrey) {
			prey = append(prey, query.Entity())
		}
	}
	w.prey = prey

	for _, wolf := range w.wolves {
		w.wolfMap.Get(wolf).Prey = prey
	}
}

func removeEntity(list []ecs.Entity, e ecs.Entity) []ecs.Entity {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
