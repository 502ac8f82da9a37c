// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// SessionBuilder provides a fluent interface for building test Session instances
type SessionBuilder struct {
	session *entities.Session
}

// NewSessionBuilder creates a new builder with minimal defaults
func NewSessionBuilder() *SessionBuilder {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &SessionBuilder{
		session: &entities.Session{
			ID:        "ses_test",
			Name:      "Test Session",
			MasterUID: "dm_test",
			MapSize:   entities.MapSize{Width: 20, Height: 20},
			Status:    entities.SessionStatusCreated,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithMaster sets the game master UID
func (b *SessionBuilder) WithMaster(uid string) *SessionBuilder {
	b.session.MasterUID = uid
	return b
}

// WithStatus sets the lifecycle status
func (b *SessionBuilder) WithStatus(status entities.SessionStatus) *SessionBuilder {
	b.session.Status = status
	return b
}

// WithCharacters appends character references
func (b *SessionBuilder) WithCharacters(uids ...string) *SessionBuilder {
	b.session.CharacterUIDs = append(b.session.CharacterUIDs, uids...)
	return b
}

// WithNPCs appends NPC references
func (b *SessionBuilder) WithNPCs(uids ...string) *SessionBuilder {
	b.session.NPCUIDs = append(b.session.NPCUIDs, uids...)
	return b
}

// WithMonster appends an owned monster
func (b *SessionBuilder) WithMonster(m *entities.Monster) *SessionBuilder {
	b.session.Monsters = append(b.session.Monsters, m)
	return b
}

// WithCreatedAt sets the creation time
func (b *SessionBuilder) WithCreatedAt(t time.Time) *SessionBuilder {
	b.session.CreatedAt = t
	return b
}

// Started moves the session to ongoing with the queue in roster order
func (b *SessionBuilder) Started() *SessionBuilder {
	b.session.Status = entities.SessionStatusOngoing
	b.session.EntityTurn = nil
	for _, c := range b.session.Roster() {
		b.session.EntityTurn = append(b.session.EntityTurn, c.AsTurnEntry())
	}
	return b
}

// Build returns the session
func (b *SessionBuilder) Build() *entities.Session {
	return b.session
}
