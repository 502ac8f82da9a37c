package engine

import (
	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// Operation is a lifecycle command
type Operation string

// Lifecycle operations
const (
	OperationStart    Operation = "start"
	OperationPause    Operation = "pause"
	OperationContinue Operation = "continue"
	OperationStop     Operation = "stop"
	OperationDelete   Operation = "delete"
)

// DefeatPolicy decides what happens to an entity whose hp reaches 0
type DefeatPolicy string

// Defeat policies
const (
	// DefeatPolicyKeep leaves the defeated entity in the turn queue
	DefeatPolicyKeep DefeatPolicy = "keep"

	// DefeatPolicyRemoveFromTurnOrder drops the defeated entity's turn entry
	// but keeps it in the roster
	DefeatPolicyRemoveFromTurnOrder DefeatPolicy = "remove-from-turn-order"
)

// Valid reports whether p is a known policy
func (p DefeatPolicy) Valid() bool {
	return p == DefeatPolicyKeep || p == DefeatPolicyRemoveFromTurnOrder
}

// NewSessionInput describes a session to create
type NewSessionInput struct {
	Name          string
	MasterUID     string
	CampaignName  string
	MapSize       entities.MapSize
	CharacterUIDs []string
	NPCUIDs       []string
	Monsters      []*entities.Monster
}

// AddEntityInput adds a character or NPC by UID, or a monster by record
type AddEntityInput struct {
	Type    entities.EntityType
	UID     string
	Monster *entities.Monster
}

// EntityView is what a roster lookup returns: the owned monster record, or
// the reference, plus the live turn entry when the entity is queued
type EntityView struct {
	Combatant entities.Combatant
	TurnEntry *entities.TurnEntry
}

// EntityPatch lists fields to merge into an entity. Nil fields are left
// alone. Only ArmorClass, HP and MaxHP apply to characters and NPCs.
type EntityPatch struct {
	Name                *string
	MaxHP               *int32
	HP                  *int32
	ArmorClass          *int32
	Enchantments        []string
	IsReactionActivable *bool
	Speed               *int32
	Weapons             []string
	Effects             []entities.Effect
}

// UpdateResult is the entity after a merge
type UpdateResult struct {
	Entity *EntityView

	// Defeated is true when the merge left the entity at 0 hp
	Defeated bool

	// RemovedFromTurnOrder is true when the defeat policy excised the entry
	RemovedFromTurnOrder bool
}

// AttackInput describes one attack. An empty Attack spec rolls a single d20.
// An empty Damage spec resolves the hit without rolling damage.
// TargetArmorClass is used only for characters and NPCs without a tracked
// armor class.
type AttackInput struct {
	AttackerUID      string
	TargetUID        string
	Attack           dice.Spec
	Damage           dice.Spec
	TargetArmorClass *int32
}

// AttackResult reports the rolls and their effect on the target
type AttackResult struct {
	AttackRoll    *dice.Result
	ArmorClass    int32
	Hit           bool
	DamageRoll    *dice.Result
	DamageApplied int32

	// TargetHP is the target's hp afterwards, nil when it is not tracked
	TargetHP             *int32
	Defeated             bool
	RemovedFromTurnOrder bool
}

// SavingThrowInput describes a saving throw. An empty Roll spec rolls a d20.
type SavingThrowInput struct {
	EntityUID       string
	DifficultyClass int32
	Roll            dice.Spec
}

// SavingThrowResult reports the roll against the difficulty class
type SavingThrowResult struct {
	Roll            *dice.Result
	DifficultyClass int32
	Success         bool
}
