// Package systems provides the per-kind behaviors and proximity queries of
// the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
)

// Candidate is an entity considered by a proximity query.
type Candidate struct {
	E   ecs.Entity
	Pos components.Vec2
}

// Neighbor holds a nearby entity with precomputed spatial data.
type Neighbor struct {
	E      ecs.Entity
	Pos    components.Vec2
	DX, DY int // delta from query origin
	DistSq int
}

// Nearest returns the candidate minimizing squared distance to origin.
// Ties go to the first candidate encountered. ok is false when cands is empty.
func Nearest(origin components.Vec2, cands []Candidate) (n Neighbor, ok bool) {
	for _, c := range cands {
		d := c.Pos.Sub(origin)
		distSq := d.LenSq()
		if !ok || distSq < n.DistSq {
			n = Neighbor{E: c.E, Pos: c.Pos, DX: d.X, DY: d.Y, DistSq: distSq}
			ok = true
		}
	}
	return n, ok
}

// QueryRadiusInto appends the candidates strictly closer than radius to
// origin, in candidate order, skipping exclude. Reuse dst across calls to
// avoid allocations.
func QueryRadiusInto(dst []Neighbor, origin components.Vec2, radius int, exclude ecs.Entity, cands []Candidate) []Neighbor {
	radiusSq := radius * radius
	for _, c := range cands {
		if c.E == exclude {
			continue
		}
		d := c.Pos.Sub(origin)
		distSq := d.LenSq()
		if distSq < radiusSq {
			dst = append(dst, Neighbor{E: c.E, Pos: c.Pos, DX: d.X, DY: d.Y, DistSq: distSq})
		}
	}
	return dst
}

// QueryRadius returns all candidates within radius of origin.
func QueryRadius(origin components.Vec2, radius int, exclude ecs.Entity, cands []Candidate) []Neighbor {
	return QueryRadiusInto(nil, origin, radius, exclude, cands)
}
