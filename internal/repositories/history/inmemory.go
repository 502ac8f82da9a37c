package history

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu   sync.RWMutex
	logs map[string][]entities.HistoryMessage
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{logs: make(map[string][]entities.HistoryMessage)}
}

// Append adds messages to a session's log
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[input.SessionID] = append(r.logs[input.SessionID], input.Messages...)
	return &AppendOutput{Length: int64(len(r.logs[input.SessionID]))}, nil
}

// List returns a window of a session's log
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := validateWindow(input); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.logs[input.SessionID]
	start := min(input.Offset, int64(len(log)))
	end := int64(len(log))
	if input.Limit > 0 {
		end = min(start+input.Limit, end)
	}

	messages := make([]entities.HistoryMessage, end-start)
	copy(messages, log[start:end])
	return &ListOutput{Messages: messages}, nil
}

// Delete drops a session's log
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.logs, input.SessionID)
	return &DeleteOutput{}, nil
}
