package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType tags the variant of a Combatant
type EntityType string

// Entity types
const (
	EntityTypeCharacter EntityType = "character"
	EntityTypeNPC       EntityType = "npc"
	EntityTypeMonster   EntityType = "monster"
)

// Valid reports whether t is one of the known entity types
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeCharacter, EntityTypeNPC, EntityTypeMonster:
		return true
	}
	return false
}

// Combatant is a session participant: a Character or NPC held by reference,
// or a Monster held as a full record. Monster is set only for the monster
// variant.
type Combatant struct {
	Type    EntityType
	UID     string
	Monster *Monster
}

var (
	_ core.Entity = Combatant{}
	_ core.Entity = (*Session)(nil)
)

// CharacterRef builds the character variant
func CharacterRef(uid string) Combatant {
	return Combatant{Type: EntityTypeCharacter, UID: uid}
}

// NPCRef builds the NPC variant
func NPCRef(uid string) Combatant {
	return Combatant{Type: EntityTypeNPC, UID: uid}
}

// MonsterRecord builds the monster variant
func MonsterRecord(m *Monster) Combatant {
	return Combatant{Type: EntityTypeMonster, UID: m.ID, Monster: m}
}

// GetID returns the combatant identifier
func (c Combatant) GetID() string {
	return c.UID
}

// GetType returns the variant tag
func (c Combatant) GetType() string {
	return string(c.Type)
}

// IsOwned reports whether the session owns the record
func (c Combatant) IsOwned() bool {
	return c.Type == EntityTypeMonster
}

// AsTurnEntry builds the queue slot for this combatant
func (c Combatant) AsTurnEntry() *TurnEntry {
	return &TurnEntry{EntityUID: c.UID, EntityType: c.Type}
}
