package entities

import "time"

// ActionType classifies a history record
type ActionType string

// Action types
const (
	ActionTypeSession     ActionType = "session"
	ActionTypeTurn        ActionType = "turn"
	ActionTypeEntity      ActionType = "entity"
	ActionTypeAttack      ActionType = "attack"
	ActionTypeSavingThrow ActionType = "saving_throw"
	ActionTypeEffect      ActionType = "effect"
	ActionTypeReaction    ActionType = "reaction"
	ActionTypeDice        ActionType = "dice"
	ActionTypeCustom      ActionType = "custom"
)

// HistoryMessage is one append-only record in a session's log
type HistoryMessage struct {
	Author     string     `json:"author"`
	Msg        string     `json:"msg"`
	ActionType ActionType `json:"action_type"`
	Timestamp  time.Time  `json:"timestamp"`
}
