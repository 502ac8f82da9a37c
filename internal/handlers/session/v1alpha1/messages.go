package v1alpha1

import (
	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// Session messages reuse the entity records, whose JSON form is the wire
// form. Requests carry an optional author for the history log; it defaults
// to the session master.

// CreateSessionRequest creates a session in the created state
type CreateSessionRequest struct {
	Name          string              `json:"name"`
	MasterUID     string              `json:"master_uid"`
	CampaignName  string              `json:"campaign_name,omitempty"`
	MapSize       entities.MapSize    `json:"map_size"`
	CharacterUIDs []string            `json:"character_uids,omitempty"`
	NPCUIDs       []string            `json:"npc_uids,omitempty"`
	Monsters      []*entities.Monster `json:"monsters,omitempty"`
}

// SessionResponse carries one session
type SessionResponse struct {
	Session *entities.Session `json:"session"`
}

// GetSessionRequest reads a session
type GetSessionRequest struct {
	SessionID      string `json:"session_id"`
	IncludeHistory bool   `json:"include_history,omitempty"`
}

// GetSessionResponse carries the session and, when asked for, its history
type GetSessionResponse struct {
	Session *entities.Session         `json:"session"`
	History []entities.HistoryMessage `json:"history,omitempty"`
}

// ListSessionsRequest filters sessions
type ListSessionsRequest struct {
	Status    entities.SessionStatus `json:"status,omitempty"`
	MasterUID string                 `json:"master_uid,omitempty"`
}

// ListSessionsResponse carries the matching sessions
type ListSessionsResponse struct {
	Sessions []*entities.Session `json:"sessions"`
}

// SessionRequest names the session a lifecycle operation or delete applies to
type SessionRequest struct {
	SessionID string `json:"session_id"`
	Author    string `json:"author,omitempty"`
}

// DeleteSessionResponse is empty
type DeleteSessionResponse struct{}

// EndTurnRequest ends the active turn
type EndTurnRequest struct {
	SessionID string `json:"session_id"`
	EntityUID string `json:"entity_uid"`
	Author    string `json:"author,omitempty"`
}

// PostponeTurnRequest moves the active turn back by position places
type PostponeTurnRequest struct {
	SessionID string `json:"session_id"`
	EntityUID string `json:"entity_uid"`
	Position  int    `json:"position"`
	Author    string `json:"author,omitempty"`
}

// TurnResponse carries the session after a turn operation
type TurnResponse struct {
	Session *entities.Session   `json:"session"`
	Active  *entities.TurnEntry `json:"active"`
}

// GetTurnRequest reads the turn queue
type GetTurnRequest struct {
	SessionID string `json:"session_id"`
}

// GetTurnResponse carries the active entry and the queue
type GetTurnResponse struct {
	Active *entities.TurnEntry   `json:"active"`
	Queue  []*entities.TurnEntry `json:"queue"`
}

// Entity is a roster member on the wire
type Entity struct {
	Type      entities.EntityType `json:"type"`
	UID       string              `json:"uid"`
	Monster   *entities.Monster   `json:"monster,omitempty"`
	TurnEntry *entities.TurnEntry `json:"turn_entry,omitempty"`
}

// AddEntityRequest adds a character or NPC by uid, or a monster by record
type AddEntityRequest struct {
	SessionID string              `json:"session_id"`
	Type      entities.EntityType `json:"type"`
	UID       string              `json:"uid,omitempty"`
	Monster   *entities.Monster   `json:"monster,omitempty"`
	Author    string              `json:"author,omitempty"`
}

// EntityRequest names one roster member
type EntityRequest struct {
	SessionID string `json:"session_id"`
	EntityUID string `json:"entity_uid"`
	Author    string `json:"author,omitempty"`
}

// EntityResponse carries one roster member
type EntityResponse struct {
	Entity *Entity `json:"entity"`
}

// EntityPatch lists fields to merge; absent fields are left alone
type EntityPatch struct {
	Name                *string           `json:"name,omitempty"`
	MaxHP               *int32            `json:"max_hp,omitempty"`
	HP                  *int32            `json:"hp,omitempty"`
	ArmorClass          *int32            `json:"armor_class,omitempty"`
	Enchantments        []string          `json:"enchantments,omitempty"`
	IsReactionActivable *bool             `json:"is_reaction_activable,omitempty"`
	Speed               *int32            `json:"speed,omitempty"`
	Weapons             []string          `json:"weapons,omitempty"`
	Effects             []entities.Effect `json:"effects,omitempty"`
}

// UpdateEntityRequest merges a patch into an entity
type UpdateEntityRequest struct {
	SessionID string       `json:"session_id"`
	EntityUID string       `json:"entity_uid"`
	Patch     *EntityPatch `json:"patch"`
	Author    string       `json:"author,omitempty"`
}

// UpdateEntityResponse carries the merged entity
type UpdateEntityResponse struct {
	Entity               *Entity `json:"entity"`
	Defeated             bool    `json:"defeated"`
	RemovedFromTurnOrder bool    `json:"removed_from_turn_order"`
}

// AttackRequest resolves an attack. Empty attack dice roll a single d20.
type AttackRequest struct {
	SessionID        string    `json:"session_id"`
	AttackerUID      string    `json:"attacker_uid"`
	TargetUID        string    `json:"target_uid"`
	Attack           dice.Spec `json:"attack"`
	Damage           dice.Spec `json:"damage"`
	TargetArmorClass *int32    `json:"target_armor_class,omitempty"`
	Author           string    `json:"author,omitempty"`
}

// AttackResponse carries the rolls and their effect
type AttackResponse struct {
	AttackRoll           *dice.Result `json:"attack_roll"`
	ArmorClass           int32        `json:"armor_class"`
	Hit                  bool         `json:"hit"`
	DamageRoll           *dice.Result `json:"damage_roll,omitempty"`
	DamageApplied        int32        `json:"damage_applied"`
	TargetHP             *int32       `json:"target_hp,omitempty"`
	Defeated             bool         `json:"defeated"`
	RemovedFromTurnOrder bool         `json:"removed_from_turn_order"`
}

// SavingThrowRequest rolls a saving throw
type SavingThrowRequest struct {
	SessionID       string    `json:"session_id"`
	EntityUID       string    `json:"entity_uid"`
	DifficultyClass int32     `json:"difficulty_class"`
	Roll            dice.Spec `json:"roll"`
	Author          string    `json:"author,omitempty"`
}

// SavingThrowResponse carries the outcome
type SavingThrowResponse struct {
	Roll            *dice.Result `json:"roll"`
	DifficultyClass int32        `json:"difficulty_class"`
	Success         bool         `json:"success"`
}

// AddEffectRequest applies an effect to a monster
type AddEffectRequest struct {
	SessionID string          `json:"session_id"`
	EntityUID string          `json:"entity_uid"`
	Effect    entities.Effect `json:"effect"`
	Author    string          `json:"author,omitempty"`
}

// SetReactionRequest enables or disables a monster's reaction
type SetReactionRequest struct {
	SessionID string `json:"session_id"`
	EntityUID string `json:"entity_uid"`
	Enabled   bool   `json:"enabled"`
	Author    string `json:"author,omitempty"`
}

// RollDiceRequest rolls a spec, inside a session or standalone
type RollDiceRequest struct {
	SessionID string    `json:"session_id,omitempty"`
	Spec      dice.Spec `json:"spec"`
	Author    string    `json:"author,omitempty"`
}

// RollDiceResponse carries the roll
type RollDiceResponse struct {
	Result *dice.Result `json:"result"`
}

// GetHistoryRequest reads a window of history
type GetHistoryRequest struct {
	SessionID string `json:"session_id"`
	Offset    int64  `json:"offset,omitempty"`
	Limit     int64  `json:"limit,omitempty"`
}

// GetHistoryResponse carries history messages, oldest first
type GetHistoryResponse struct {
	Messages []entities.HistoryMessage `json:"messages"`
}

// AppendHistoryRequest writes a custom history message
type AppendHistoryRequest struct {
	SessionID  string              `json:"session_id"`
	Author     string              `json:"author,omitempty"`
	Msg        string              `json:"msg"`
	ActionType entities.ActionType `json:"action_type,omitempty"`
}

// AppendHistoryResponse carries the stored message
type AppendHistoryResponse struct {
	Message entities.HistoryMessage `json:"message"`
}

// MonsterTemplate is one entry of the SRD monster catalogue
type MonsterTemplate struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ListMonsterTemplatesResponse carries the catalogue
type ListMonsterTemplatesResponse struct {
	Templates []MonsterTemplate `json:"templates"`
}
