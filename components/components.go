// Package components defines ECS components for the simulation.
package components

// Kind identifies the agent kind of an entity. It never changes after spawn.
type Kind uint8

const (
	KindSheep Kind = iota
	KindWolf
	KindPlayer
	KindDog
)

// String returns the kind name, also used as its capability tag.
func (k Kind) String() string {
	switch k {
	case KindSheep:
		return TagSheep
	case KindWolf:
		return TagWolf
	case KindPlayer:
		return TagPlayer
	case KindDog:
		return TagDog
	}
	return "unknown"
}

// Sex is fixed at creation. Only sheep carry one.
type Sex uint8

const (
	SexNone Sex = iota
	SexMale
	SexFemale
)

// String returns the sex as its capability tag.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return TagMale
	case SexFemale:
		return TagFemale
	}
	return ""
}

// Identity holds the immutable attributes of an entity.
type Identity struct {
	Kind Kind
	Sex  Sex
}

// CapabilityTags returns the capability labels implied by an identity.
func (id Identity) CapabilityTags() []string {
	tags := []string{id.Kind.String()}
	switch id.Kind {
	case KindSheep:
		tags = append(tags, TagPrey)
	case KindWolf:
		tags = append(tags, TagPredator)
	}
	if id.Sex != SexNone {
		tags = append(tags, id.Sex.String())
	}
	return tags
}
