package components

// Vec2 is an integer 2D vector in arena units.
type Vec2 struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s int) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Sign returns the per-axis sign of v (-1, 0 or 1).
func (v Vec2) Sign() Vec2 { return Vec2{sign(v.X), sign(v.Y)} }

// LenSq returns the squared length.
func (v Vec2) LenSq() int { return v.X*v.X + v.Y*v.Y }

// DistSq returns the squared Euclidean distance between v and o.
func (v Vec2) DistSq(o Vec2) int { return v.Sub(o).LenSq() }

// Within reports whether o is strictly closer than d to v.
func (v Vec2) Within(o Vec2, d int) bool { return v.DistSq(o) < d*d }

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Position represents an entity's arena position (top-left of its sprite).
type Position struct {
	Vec2
}

// Velocity represents an entity's per-tick displacement.
type Velocity struct {
	Vec2
}

// Size holds the sprite extent of an entity.
type Size struct {
	W, H int
}
