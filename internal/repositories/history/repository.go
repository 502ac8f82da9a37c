// Package history provides the append-only action log kept per session
package history

//go:generate mockgen -destination=mock/mock_repository.go -package=historymock github.com/KirkDiggler/rpg-session-api/internal/repositories/history Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// Repository stores history messages in append order
type Repository interface {
	// Append adds messages to the end of a session's log
	// Returns errors.InvalidArgument for an empty session ID
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns messages oldest first. Limit 0 returns everything
	// from Offset.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete drops a session's log; deleting a missing log is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// AppendInput defines the input for appending to a log
type AppendInput struct {
	SessionID string
	Messages  []entities.HistoryMessage
}

// AppendOutput reports the log length after the append
type AppendOutput struct {
	Length int64
}

// ListInput defines the window to read
type ListInput struct {
	SessionID string
	Offset    int64
	Limit     int64
}

// ListOutput holds the messages read
type ListOutput struct {
	Messages []entities.HistoryMessage
}

// DeleteInput defines the input for deleting a log
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the output for deleting a log
type DeleteOutput struct{}

const errSessionIDEmpty = "session ID cannot be empty"
