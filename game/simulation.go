package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/platform"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// Tick advances the simulation by one frame and draws it. The surface is
// cleared but not presented; the caller presents after any overlay.
func (w *World) Tick() {
	now := w.clock.Now()
	w.perf.StartTick()

	// 1-2. Background, then every animal and the dog: move, then draw
	w.perf.StartPhase(telemetry.PhaseMoveDraw)
	w.surface.Clear(platform.Grass)
	w.updateEntities(now)

	// 3. Player last so it renders on top
	w.perf.StartPhase(telemetry.PhasePlayer)
	w.updatePlayer()

	// 4. Death sweep
	w.perf.StartPhase(telemetry.PhaseDeaths)
	w.cleanupDead()

	// 5. Interaction sweep
	w.perf.StartPhase(telemetry.PhaseInteractions)
	w.resolveInteractions(now)

	// 6. Birth sweep
	w.perf.StartPhase(telemetry.PhaseBirths)
	w.spawnBirths()

	w.tick++

	w.perf.StartPhase(telemetry.PhaseTelemetry)
	w.collector.Sample(len(w.sheep), len(w.wolves))
	w.flushTelemetry(now)

	w.perf.EndTick()
}

// updateEntities moves and draws every entity except the player, in ECS
// iteration order. Entities flagged dead are neither moved nor drawn.
func (w *World) updateEntities(now int64) {
	w.wolfParams.Now = now

	query := w.entityFilter.Query()
	for query.Next() {
		e := query.Entity()
		pos, vel, size, id, _, status, sprite := query.Get()

		if id.Kind == components.KindPlayer || status.Is(components.StatusDead) {
			continue
		}

		switch id.Kind {
		case components.KindSheep:
			systems.MoveSheep(pos, vel, w.arena, w.cfg.Speed.Sheep, w.rng)
		case components.KindWolf:
			w.moveWolf(e, pos, vel, status, now)
		case components.KindDog:
			w.moveDog(e, pos, vel)
		}

		// A wolf may starve during its own move
		if status.Is(components.StatusDead) {
			continue
		}
		w.draw(pos, size, sprite)
	}
}

// moveWolf runs the wolf behavior and resolves a bite when prey is in reach.
func (w *World) moveWolf(e ecs.Entity, pos *components.Position, vel *components.Velocity, status *components.Status, now int64) {
	st := w.wolfMap.Get(e)

	var dogPos *components.Vec2
	if w.world.Alive(st.Dog) {
		p := w.posMap.Get(st.Dog).Vec2
		dogPos = &p
	}

	// Prey killed earlier this tick is no longer a target
	w.candidates = w.candidates[:0]
	for _, p := range st.Prey {
		if !w.world.Alive(p) || w.statusMap.Get(p).Is(components.StatusDead) {
			continue
		}
		w.candidates = append(w.candidates, systems.Candidate{E: p, Pos: w.posMap.Get(p).Vec2})
	}

	outcome, target := systems.MoveWolf(pos, vel, st, status, dogPos, w.candidates, w.wolfParams, w.rng)

	switch outcome {
	case systems.WolfStarved:
		w.collector.Record(telemetry.NewStarveEvent(w.tick))
		slog.Debug("wolf starved", "tick", w.tick, "entity", e.ID())
	case systems.WolfInReach:
		if systems.WolfInteract(w.tagsMap.Get(target), w.statusMap.Get(target)) {
			st.LastFed = now
			w.collector.Record(telemetry.NewKillEvent(w.tick))
			slog.Debug("sheep killed", "tick", w.tick, "entity", target.ID())
		}
	}
}

// moveDog runs the dog state machine around its center.
func (w *World) moveDog(e ecs.Entity, pos *components.Position, vel *components.Velocity) {
	d := w.dogMap.Get(e)
	center := w.posMap.Get(d.Center).Vec2

	prev := d.Mode
	systems.MoveDog(pos, vel, d, center, w.dogParams)
	if d.Mode != prev {
		slog.Debug("dog mode changed", "tick", w.tick, "from", prev.String(), "to", d.Mode.String())
	}
}

// updatePlayer moves and draws the player.
func (w *World) updatePlayer() {
	pos := w.posMap.Get(w.player)
	size := w.sizeMap.Get(w.player)
	systems.MovePlayer(pos, w.velMap.Get(w.player), *size, w.arena)
	w.draw(pos, size, w.spriteMap.Get(w.player))
}

// resolveInteractions invokes interact(a, b) for every ordered pair closer
// than the interaction distance where a is female and b is male.
func (w *World) resolveInteractions(now int64) {
	w.females = w.females[:0]
	w.males = w.males[:0]
	query := w.entityFilter.Query()
	for query.Next() {
		pos, _, _, _, tags, _, _ := query.Get()
		c := systems.Candidate{E: query.Entity(), Pos: pos.Vec2}
		if tags.Has(components.TagFemale) {
			w.females = append(w.females, c)
		}
		if tags.Has(components.TagMale) {
			w.males = append(w.males, c)
		}
	}

	dist := w.cfg.Distance.Interact
	for _, a := range w.females {
		w.neighbors = systems.QueryRadiusInto(w.neighbors[:0], a.Pos, dist, a.E, w.males)
		for _, b := range w.neighbors {
			w.interact(a.E, b.E, now)
		}
	}
}

// interact dispatches a's interaction with b on a's kind.
func (w *World) interact(a, b ecs.Entity, now int64) {
	switch w.idMap.Get(a).Kind {
	case components.KindSheep:
		systems.SheepInteract(w.sheepMap.Get(a), w.tagsMap.Get(a), w.statusMap.Get(a),
			w.tagsMap.Get(b), now, w.cfg.Timers.BreedMS)
	case components.KindWolf:
		systems.WolfInteract(w.tagsMap.Get(b), w.statusMap.Get(b))
	}
}

// spawnBirths clears the child flag of every pregnant sheep and spawns a
// lamb at her position once the scan is complete.
func (w *World) spawnBirths() {
	w.births = w.births[:0]
	query := w.entityFilter.Query()
	for query.Next() {
		pos, _, _, _, tags, status, _ := query.Get()
		if status.Is(components.StatusChild) && tags.Has(components.TagSheep) {
			status.Clear(components.StatusChild)
			w.births = append(w.births, pos.Vec2)
		}
	}

	for _, p := range w.births {
		if _, ok := w.Spawn(components.KindSheep, p, false); ok {
			w.collector.Record(telemetry.NewBirthEvent(w.tick, components.KindSheep))
		}
	}
}
