package systems

import (
	"math/rand"

	"github.com/pthm-cable/pasture/components"
)

// MoveSheep performs the sheep random walk.
func MoveSheep(pos *components.Position, vel *components.Velocity, a Arena, speed int, rng *rand.Rand) {
	Wander(pos, vel, a, speed, rng)
}

// SheepInteract resolves breeding between self and other.
// Only a female whose cooldown has elapsed gains the child marker, and only
// with a male sheep partner. Returns true when a child was conceived.
func SheepInteract(self *components.SheepState, selfTags *components.Tags, selfStatus *components.Status,
	otherTags *components.Tags, now, cooldownMS int64) bool {
	if !selfTags.Has(components.TagFemale) {
		return false
	}
	if !otherTags.HasAll(components.TagSheep, components.TagMale) {
		return false
	}
	if now-self.LastBreed < cooldownMS {
		return false
	}

	selfStatus.Set(components.StatusChild)
	self.LastBreed = now
	return true
}
