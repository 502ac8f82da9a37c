// Package engine holds the session rules: the lifecycle state machine, the
// turn queue, the entity roster and combat resolution. Every method works on
// an in-memory Session and either mutates it completely or not at all;
// persistence is the caller's concern.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-session-api/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// Engine applies session rules to a Session aggregate
type Engine interface {
	// NewSession validates the input and builds a session in the created state
	NewSession(input *NewSessionInput) (*entities.Session, error)

	// Apply runs a lifecycle operation (start, pause, continue, stop, delete)
	Apply(session *entities.Session, op Operation) error

	// Turn queue
	EndTurn(session *entities.Session, entityUID string) error
	PostponeTurn(session *entities.Session, entityUID string, position int) error
	CurrentTurn(session *entities.Session) (*entities.TurnEntry, error)

	// Roster
	AddEntity(session *entities.Session, input *AddEntityInput) (entities.Combatant, error)
	RemoveEntity(session *entities.Session, entityUID string) (entities.Combatant, error)
	GetEntity(session *entities.Session, entityUID string) (*EntityView, error)
	UpdateEntity(session *entities.Session, entityUID string, patch *EntityPatch) (*UpdateResult, error)

	// Combat
	RollDice(spec dice.Spec) (*dice.Result, error)
	Attack(session *entities.Session, input *AttackInput) (*AttackResult, error)
	SavingThrow(session *entities.Session, input *SavingThrowInput) (*SavingThrowResult, error)
	AddEffect(session *entities.Session, entityUID string, effect entities.Effect) error
	SetReaction(session *entities.Session, entityUID string, enabled bool) error
}
