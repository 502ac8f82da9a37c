// Package entities provides core data structures for rpg-session-api.
package entities

import (
	"time"
)

// SessionStatus is a point in the session lifecycle
type SessionStatus string

// Session statuses
const (
	SessionStatusCreated SessionStatus = "created"
	SessionStatusOngoing SessionStatus = "ongoing"
	SessionStatusPaused  SessionStatus = "paused"
	SessionStatusStopped SessionStatus = "stopped"
)

// Map size bounds, inclusive, checked when a session is created
const (
	MinMapSize int32 = 10
	MaxMapSize int32 = 100
)

// MapSize is the battle map area in grid units
type MapSize struct {
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
}

// Session is the aggregate root for one running game
type Session struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	MasterUID    string        `json:"master_uid"`
	CampaignName string        `json:"campaign_name,omitempty"`
	MapSize      MapSize       `json:"map_size"`
	Status       SessionStatus `json:"status"`

	// CharacterUIDs and NPCUIDs reference externally owned records
	CharacterUIDs []string `json:"character_uids"`
	NPCUIDs       []string `json:"npc_uids"`

	// Monsters are owned by the session and die with it
	Monsters []*Monster `json:"monsters"`

	// EntityTurn is the turn queue; index 0 holds the active turn
	EntityTurn []*TurnEntry `json:"entity_turn"`

	// Version is bumped on every successful save
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TurnEntry is one slot in the turn queue.
// ArmorClass, HP and MaxHP are optional session-local tracking for
// characters and NPCs, whose full records live elsewhere.
type TurnEntry struct {
	EntityUID  string     `json:"entity_uid"`
	EntityType EntityType `json:"entity_type"`
	ArmorClass *int32     `json:"armor_class,omitempty"`
	HP         *int32     `json:"hp,omitempty"`
	MaxHP      *int32     `json:"max_hp,omitempty"`
}

// ClampHP keeps tracked hp within [0, MaxHP] when both are tracked
func (t *TurnEntry) ClampHP() {
	if t.HP == nil {
		return
	}
	hp := *t.HP
	if hp < 0 {
		hp = 0
	}
	if t.MaxHP != nil && hp > *t.MaxHP {
		hp = *t.MaxHP
	}
	t.HP = &hp
}

// Clone returns a deep copy of the entry
func (t *TurnEntry) Clone() *TurnEntry {
	if t == nil {
		return nil
	}
	out := &TurnEntry{EntityUID: t.EntityUID, EntityType: t.EntityType}
	out.ArmorClass = clonePtr(t.ArmorClass)
	out.HP = clonePtr(t.HP)
	out.MaxHP = clonePtr(t.MaxHP)
	return out
}

// ActiveTurn returns the entry at the front of the queue, or nil
func (s *Session) ActiveTurn() *TurnEntry {
	if len(s.EntityTurn) == 0 {
		return nil
	}
	return s.EntityTurn[0]
}

// TurnIndex returns the queue position of uid, or -1
func (s *Session) TurnIndex(uid string) int {
	for i, entry := range s.EntityTurn {
		if entry.EntityUID == uid {
			return i
		}
	}
	return -1
}

// MonsterIndex returns the position of the owned monster uid, or -1
func (s *Session) MonsterIndex(uid string) int {
	for i, m := range s.Monsters {
		if m.ID == uid {
			return i
		}
	}
	return -1
}

// Combatant resolves uid against the roster lists
func (s *Session) Combatant(uid string) (Combatant, bool) {
	if containsString(s.CharacterUIDs, uid) {
		return CharacterRef(uid), true
	}
	if containsString(s.NPCUIDs, uid) {
		return NPCRef(uid), true
	}
	if i := s.MonsterIndex(uid); i >= 0 {
		return MonsterRecord(s.Monsters[i]), true
	}
	return Combatant{}, false
}

// Roster lists every member in start order: characters, then NPCs, then monsters
func (s *Session) Roster() []Combatant {
	out := make([]Combatant, 0, len(s.CharacterUIDs)+len(s.NPCUIDs)+len(s.Monsters))
	for _, uid := range s.CharacterUIDs {
		out = append(out, CharacterRef(uid))
	}
	for _, uid := range s.NPCUIDs {
		out = append(out, NPCRef(uid))
	}
	for _, m := range s.Monsters {
		out = append(out, MonsterRecord(m))
	}
	return out
}

// Clone returns a deep copy so callers can compute a new state without
// touching the one they read.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	out := *s
	out.CharacterUIDs = append([]string(nil), s.CharacterUIDs...)
	out.NPCUIDs = append([]string(nil), s.NPCUIDs...)

	out.Monsters = make([]*Monster, len(s.Monsters))
	for i, m := range s.Monsters {
		out.Monsters[i] = m.Clone()
	}

	out.EntityTurn = make([]*TurnEntry, len(s.EntityTurn))
	for i, entry := range s.EntityTurn {
		out.EntityTurn[i] = entry.Clone()
	}

	return &out
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// GetID returns the session ID so a session can be an event source
func (s *Session) GetID() string {
	return s.ID
}

// GetType identifies sessions on the event bus
func (s *Session) GetType() string {
	return "session"
}
