package sessions

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Session
	clock clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository. A nil clock uses the
// real one.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]*entities.Session),
		clock: c,
	}
}

// Create stores a new session at version 1
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; exists {
		return nil, errors.AlreadyExistsf("session with ID %s already exists", input.Session.ID)
	}

	session := input.Session.Clone()
	now := r.clock.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	session.Version = 1
	r.store[session.ID] = session

	return &CreateOutput{Session: session.Clone()}, nil
}

// Get retrieves a copy of a session
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("session with ID %s not found", input.ID)
	}
	return &GetOutput{Session: session.Clone()}, nil
}

// Save replaces a session when the caller holds the latest version
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.store[input.Session.ID]
	if !exists {
		return nil, errors.NotFoundf("session with ID %s not found", input.Session.ID)
	}
	if stored.Version != input.Session.Version {
		return nil, errors.WriteConflict(input.Session.ID, input.Session.Version, stored.Version)
	}

	next := input.Session.Clone()
	next.Version = stored.Version + 1
	next.CreatedAt = stored.CreatedAt
	next.UpdatedAt = r.clock.Now()
	r.store[next.ID] = next

	return &SaveOutput{Session: next.Clone()}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("session with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns copies of the matching sessions
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*entities.Session, 0, len(r.store))
	for _, session := range r.store {
		if input.matches(session) {
			sessions = append(sessions, session.Clone())
		}
	}
	sortSessions(sessions)

	return &ListOutput{Sessions: sessions}, nil
}
