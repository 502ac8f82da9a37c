package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// EndTurn rotates the active entry to the back of the queue
func (o *orchestrator) EndTurn(ctx context.Context, input *EndTurnInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		return o.engine.EndTurn(session, input.EntityUID)
	})
	if err != nil {
		return nil, err
	}

	active := saved.ActiveTurn()
	slog.Info("Turn ended",
		"session_id", saved.ID,
		"entity_uid", input.EntityUID,
		"next_uid", active.EntityUID,
	)

	o.record(ctx, saved, input.Author, entities.ActionTypeTurn,
		"%s ended their turn, %s is up", input.EntityUID, active.EntityUID)
	o.publish(ctx, entities.EventTurnEnded, saved, o.entity(saved, input.EntityUID), o.entity(saved, active.EntityUID), nil)

	return &TurnOutput{Session: saved, Active: active}, nil
}

// PostponeTurn moves the active entry back by Position places
func (o *orchestrator) PostponeTurn(ctx context.Context, input *PostponeTurnInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		return o.engine.PostponeTurn(session, input.EntityUID, input.Position)
	})
	if err != nil {
		return nil, err
	}

	active := saved.ActiveTurn()
	slog.Info("Turn postponed",
		"session_id", saved.ID,
		"entity_uid", input.EntityUID,
		"position", input.Position,
		"next_uid", active.EntityUID,
	)

	o.record(ctx, saved, input.Author, entities.ActionTypeTurn,
		"%s postponed their turn by %d, %s is up", input.EntityUID, input.Position, active.EntityUID)
	o.publish(ctx, entities.EventTurnPostponed, saved, o.entity(saved, input.EntityUID), o.entity(saved, active.EntityUID), nil)

	return &TurnOutput{Session: saved, Active: active}, nil
}

// GetTurn returns the active entry and the whole queue
func (o *orchestrator) GetTurn(ctx context.Context, input *GetTurnInput) (*GetTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	active, err := o.engine.CurrentTurn(session)
	if err != nil {
		return nil, err
	}

	return &GetTurnOutput{Active: active, Queue: session.EntityTurn}, nil
}

// entity resolves uid to an event participant, falling back to the session
func (o *orchestrator) entity(session *entities.Session, uid string) core.Entity {
	if c, ok := session.Combatant(uid); ok {
		return c
	}
	return session
}
