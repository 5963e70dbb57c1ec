package components

// Capability labels.
const (
	TagSheep    = "sheep"
	TagWolf     = "wolf"
	TagDog      = "dog"
	TagPlayer   = "player"
	TagPrey     = "prey"
	TagPredator = "predator"
	TagMale     = "male"
	TagFemale   = "female"
)

// Transient status labels, see Status.
const (
	TagDead  = "dead"
	TagChild = "child"
)

// Tags is an unordered set of capability labels.
// The zero value is an empty set ready to use.
type Tags struct {
	set map[string]struct{}
}

// NewTags returns a set holding the given labels.
func NewTags(tags ...string) Tags {
	var t Tags
	for _, tag := range tags {
		t.Add(tag)
	}
	return t
}

// Add inserts tag. Adding an existing tag is a no-op.
func (t *Tags) Add(tag string) {
	if t.set == nil {
		t.set = make(map[string]struct{}, 4)
	}
	t.set[tag] = struct{}{}
}

// Has reports whether tag is present.
func (t *Tags) Has(tag string) bool {
	_, ok := t.set[tag]
	return ok
}

// HasAll reports whether every tag is present.
func (t *Tags) HasAll(tags ...string) bool {
	for _, tag := range tags {
		if !t.Has(tag) {
			return false
		}
	}
	return true
}

// Remove deletes tag. Removing a missing tag is a no-op.
func (t *Tags) Remove(tag string) {
	delete(t.set, tag)
}

// Len returns the number of tags.
func (t *Tags) Len() int {
	return len(t.set)
}

// Status holds pending events raised during a tick and consumed by the
// world's sweeps. It is kept apart from Tags so identity never mixes with
// one-shot signals.
type Status uint8

const (
	StatusDead Status = 1 << iota
	StatusChild
)

// Set raises the given flags.
func (s *Status) Set(f Status) { *s |= f }

// Clear lowers the given flags.
func (s *Status) Clear(f Status) { *s &^= f }

// Is reports whether all given flags are raised.
func (s Status) Is(f Status) bool { return s&f == f }

// Has reports whether the status label tag ("dead" or "child") is raised.
func (s Status) Has(tag string) bool {
	switch tag {
	case TagDead:
		return s.Is(StatusDead)
	case TagChild:
		return s.Is(StatusChild)
	}
	return false
}
