package session

import (
	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// CreateSessionInput defines the request for creating a session.
// Monsters with a TemplateKey are prefilled from the SRD stat block; any
// non-zero field on the monster overrides the template.
type CreateSessionInput struct {
	Name          string
	MasterUID     string
	CampaignName  string
	MapSize       entities.MapSize
	CharacterUIDs []string
	NPCUIDs       []string
	Monsters      []*entities.Monster
}

// CreateSessionOutput defines the response for creating a session
type CreateSessionOutput struct {
	Session *entities.Session
}

// GetSessionInput defines the request for getting a session
type GetSessionInput struct {
	SessionID      string
	IncludeHistory bool
}

// GetSessionOutput defines the response for getting a session
type GetSessionOutput struct {
	Session *entities.Session
	History []entities.HistoryMessage
}

// ListSessionsInput filters sessions; empty fields match everything
type ListSessionsInput struct {
	Status    entities.SessionStatus
	MasterUID string
}

// ListSessionsOutput defines the response for listing sessions
type ListSessionsOutput struct {
	Sessions []*entities.Session
}

// LifecycleInput identifies the session a lifecycle operation applies to
type LifecycleInput struct {
	SessionID string
	Author    string
}

// LifecycleOutput holds the session after the transition
type LifecycleOutput struct {
	Session *entities.Session
}

// DeleteSessionInput defines the request for deleting a session
type DeleteSessionInput struct {
	SessionID string
	Author    string
}

// DeleteSessionOutput defines the response for deleting a session
type DeleteSessionOutput struct{}

// EndTurnInput defines the request for ending the active turn
type EndTurnInput struct {
	SessionID string
	EntityUID string
	Author    string
}

// PostponeTurnInput defines the request for postponing the active turn
type PostponeTurnInput struct {
	SessionID string
	EntityUID string
	// Position is where the entry is reinserted among the remaining entries
	Position int
	Author   string
}

// TurnOutput holds the queue after a turn operation
type TurnOutput struct {
	Session *entities.Session
	Active  *entities.TurnEntry
}

// GetTurnInput defines the request for the active turn
type GetTurnInput struct {
	SessionID string
}

// GetTurnOutput defines the response for the active turn
type GetTurnOutput struct {
	Active *entities.TurnEntry
	Queue  []*entities.TurnEntry
}

// AddEntityInput defines the request for adding an entity
type AddEntityInput struct {
	SessionID string
	Type      entities.EntityType
	UID       string
	Monster   *entities.Monster
	Author    string
}

// EntityOutput holds one entity of the session
type EntityOutput struct {
	Entity *engine.EntityView
}

// RemoveEntityInput defines the request for removing an entity
type RemoveEntityInput struct {
	SessionID string
	EntityUID string
	Author    string
}

// RemoveEntityOutput holds the removed entity
type RemoveEntityOutput struct {
	Removed entities.Combatant
}

// GetEntityInput defines the request for getting an entity
type GetEntityInput struct {
	SessionID string
	EntityUID string
}

// UpdateEntityInput defines the request for merging fields into an entity
type UpdateEntityInput struct {
	SessionID string
	EntityUID string
	Patch     *engine.EntityPatch
	Author    string
}

// UpdateEntityOutput holds the merged entity
type UpdateEntityOutput struct {
	Result *engine.UpdateResult
}

// AttackInput defines the request for resolving an attack
type AttackInput struct {
	SessionID        string
	AttackerUID      string
	TargetUID        string
	Attack           dice.Spec
	Damage           dice.Spec
	TargetArmorClass *int32
	Author           string
}

// AttackOutput holds the resolved attack
type AttackOutput struct {
	Result *engine.AttackResult
}

// SavingThrowInput defines the request for a saving throw
type SavingThrowInput struct {
	SessionID       string
	EntityUID       string
	DifficultyClass int32
	Roll            dice.Spec
	Author          string
}

// SavingThrowOutput holds the saving throw outcome
type SavingThrowOutput struct {
	Result *engine.SavingThrowResult
}

// AddEffectInput defines the request for applying an effect
type AddEffectInput struct {
	SessionID string
	EntityUID string
	Effect    entities.Effect
	Author    string
}

// SetReactionInput defines the request for enabling or disabling a reaction
type SetReactionInput struct {
	SessionID string
	EntityUID string
	Enabled   bool
	Author    string
}

// RollDiceInput defines a roll. SessionID is optional; when set the roll is
// written to that session's history.
type RollDiceInput struct {
	SessionID string
	Spec      dice.Spec
	Author    string
}

// RollDiceOutput holds the roll
type RollDiceOutput struct {
	Result *dice.Result
}

// GetHistoryInput defines a window of a session's history
type GetHistoryInput struct {
	SessionID string
	Offset    int64
	Limit     int64
}

// GetHistoryOutput holds the history messages, oldest first
type GetHistoryOutput struct {
	Messages []entities.HistoryMessage
}

// AppendHistoryInput defines a caller-written history message
type AppendHistoryInput struct {
	SessionID  string
	Author     string
	Msg        string
	ActionType entities.ActionType
}

// AppendHistoryOutput holds the stored message
type AppendHistoryOutput struct {
	Message entities.HistoryMessage
}
