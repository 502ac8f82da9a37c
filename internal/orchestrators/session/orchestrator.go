// Package session implements the session orchestrator: it loads the session
// aggregate, runs the rules engine on it, saves it with optimistic
// concurrency, and fans the outcome out to the history log and event bus.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/rpg-session-api/internal/orchestrators/session Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-session-api/internal/clients/directory"
	"github.com/KirkDiggler/rpg-session-api/internal/clients/external"
	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/history"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions"
)

// DefaultMaxRetries is how many times a mutation is recomputed after a
// write conflict before the conflict is returned
const DefaultMaxRetries = 3

// Service defines the interface for session operations
type Service interface {
	// Sessions
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// Lifecycle
	StartSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error)
	PauseSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error)
	ContinueSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error)
	StopSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error)

	// Turn order
	EndTurn(ctx context.Context, input *EndTurnInput) (*TurnOutput, error)
	PostponeTurn(ctx context.Context, input *PostponeTurnInput) (*TurnOutput, error)
	GetTurn(ctx context.Context, input *GetTurnInput) (*GetTurnOutput, error)

	// Roster
	AddEntity(ctx context.Context, input *AddEntityInput) (*EntityOutput, error)
	RemoveEntity(ctx context.Context, input *RemoveEntityInput) (*RemoveEntityOutput, error)
	GetEntity(ctx context.Context, input *GetEntityInput) (*EntityOutput, error)
	UpdateEntity(ctx context.Context, input *UpdateEntityInput) (*UpdateEntityOutput, error)

	// Combat
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	SavingThrow(ctx context.Context, input *SavingThrowInput) (*SavingThrowOutput, error)
	AddEffect(ctx context.Context, input *AddEffectInput) (*EntityOutput, error)
	SetReaction(ctx context.Context, input *SetReactionInput) (*EntityOutput, error)
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// History
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
	AppendHistory(ctx context.Context, input *AppendHistoryInput) (*AppendHistoryOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	Repository sessions.Repository
	History    history.Repository
	Directory  directory.Directory
	Engine     engine.Engine

	// MonsterTemplates is optional; without it monsters cannot be added by
	// template key
	MonsterTemplates external.Client

	// EventBus is optional and defaults to a private bus
	EventBus events.EventBus

	// Clock stamps history messages, default real time
	Clock clock.Clock

	// MaxRetries defaults to DefaultMaxRetries
	MaxRetries int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.History == nil {
		vb.RequiredField("History")
	}
	if c.Directory == nil {
		vb.RequiredField("Directory")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.MaxRetries < 0 {
		vb.Field("MaxRetries", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	repo       sessions.Repository
	history    history.Repository
	directory  directory.Directory
	templates  external.Client
	engine     engine.Engine
	bus        events.EventBus
	clock      clock.Clock
	maxRetries int
}

// NewOrchestrator creates a new session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	retries := cfg.MaxRetries
	if retries == 0 {
		retries = DefaultMaxRetries
	}

	return &orchestrator{
		repo:       cfg.Repository,
		history:    cfg.History,
		directory:  cfg.Directory,
		templates:  cfg.MonsterTemplates,
		engine:     cfg.Engine,
		bus:        bus,
		clock:      c,
		maxRetries: retries,
	}, nil
}

// load reads a session, mapping a missing ID to NotFound
func (o *orchestrator) load(ctx context.Context, sessionID string) (*entities.Session, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	out, err := o.repo.Get(ctx, sessions.GetInput{ID: sessionID})
	if err != nil {
		return nil, err
	}
	return out.Session, nil
}

// mutate runs apply against a fresh read of the session and saves the
// result. On a write conflict the read, apply and save are repeated, so
// apply must only touch the session it is given and values it reassigns.
func (o *orchestrator) mutate(ctx context.Context, sessionID string, apply func(*entities.Session) error) (*entities.Session, error) {
	for attempt := 0; ; attempt++ {
		current, err := o.load(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		if err := apply(current); err != nil {
			return nil, err
		}

		out, err := o.repo.Save(ctx, sessions.SaveInput{Session: current})
		if err == nil {
			return out.Session, nil
		}
		if !errors.IsRetryable(err) || attempt >= o.maxRetries {
			return nil, err
		}

		slog.Debug("Retrying session write after conflict",
			"session_id", sessionID,
			"attempt", attempt+1,
		)
	}
}

// record appends to the history log. The log is best effort: a failure is
// logged and the operation still succeeds.
func (o *orchestrator) record(ctx context.Context, session *entities.Session, author string, action entities.ActionType, format string, args ...any) {
	if author == "" {
		author = session.MasterUID
	}
	msg := entities.HistoryMessage{
		Author:     author,
		Msg:        fmt.Sprintf(format, args...),
		ActionType: action,
		Timestamp:  o.clock.Now(),
	}

	_, err := o.history.Append(ctx, history.AppendInput{
		SessionID: session.ID,
		Messages:  []entities.HistoryMessage{msg},
	})
	if err != nil {
		slog.Warn("Failed to append session history",
			"session_id", session.ID,
			"action_type", action,
			"error", err,
		)
	}
}

// publish sends an event with the session ID and the given context values.
// Subscribers cannot fail the operation.
func (o *orchestrator) publish(ctx context.Context, eventType string, session *entities.Session, source, target core.Entity, values map[string]any) {
	if source == nil {
		source = session
	}
	event := events.NewGameEvent(eventType, source, target)
	event.Context().Set(entities.EventKeySessionID, session.ID)
	for k, v := range values {
		event.Context().Set(k, v)
	}

	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish session event",
			"session_id", session.ID,
			"event_type", eventType,
			"error", err,
		)
	}
}
