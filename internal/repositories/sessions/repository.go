// Package sessions provides persistence for the session aggregate
package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionsmock github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions Repository

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// Repository stores sessions with optimistic concurrency. Every stored
// session carries a Version; Save only succeeds when the caller's copy is
// still the latest one.
type Repository interface {
	// Create stores a new session at version 1
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a session with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces a session read at input.Session.Version
	// Returns errors.NotFound if the session was deleted meanwhile
	// Returns errors.WriteConflict if another write landed first
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns sessions ordered by creation time, optionally filtered
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	Session *entities.Session
}

// CreateOutput holds the stored session
type CreateOutput struct {
	Session *entities.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput holds the session read
type GetOutput struct {
	Session *entities.Session
}

// SaveInput defines the input for saving a session
type SaveInput struct {
	Session *entities.Session
}

// SaveOutput holds the session as stored, with its new version
type SaveOutput struct {
	Session *entities.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}

// ListInput filters a listing. Empty fields match everything.
type ListInput struct {
	Status    entities.SessionStatus
	MasterUID string
}

// ListOutput holds the matching sessions
type ListOutput struct {
	Sessions []*entities.Session
}

const (
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

func validateSession(session *entities.Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.ID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}

func (in ListInput) matches(session *entities.Session) bool {
	if in.Status != "" && session.Status != in.Status {
		return false
	}
	if in.MasterUID != "" && session.MasterUID != in.MasterUID {
		return false
	}
	return true
}

// sortSessions orders by creation time, then ID
func sortSessions(list []*entities.Session) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
