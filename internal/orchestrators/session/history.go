package session

import (
	"context"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/history"
)

// GetHistory returns a window of the session's history, oldest first
func (o *orchestrator) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	out, err := o.history.List(ctx, history.ListInput{
		SessionID: session.ID,
		Offset:    input.Offset,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session history")
	}

	return &GetHistoryOutput{Messages: out.Messages}, nil
}

// AppendHistory stores a caller-written message. Unlike the messages the
// session writes for itself, a failed append is returned.
func (o *orchestrator) AppendHistory(ctx context.Context, input *AppendHistoryInput) (*AppendHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("msg", input.Msg, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	action := input.ActionType
	if action == "" {
		action = entities.ActionTypeCustom
	}
	msg := entities.HistoryMessage{
		Author:     authorOr(input.Author, session),
		Msg:        input.Msg,
		ActionType: action,
		Timestamp:  o.clock.Now(),
	}

	if _, err := o.history.Append(ctx, history.AppendInput{
		SessionID: session.ID,
		Messages:  []entities.HistoryMessage{msg},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to append session history")
	}

	return &AppendHistoryOutput{Message: msg}, nil
}
