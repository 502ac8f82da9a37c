package engine

import (
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// EndTurn rotates the queue: the active entry moves to the back
func (e *engine) EndTurn(session *entities.Session, entityUID string) error {
	if err := requireActiveTurn(session, "end turn", entityUID); err != nil {
		return err
	}

	queue := session.EntityTurn
	rotated := make([]*entities.TurnEntry, 0, len(queue))
	rotated = append(rotated, queue[1:]...)
	rotated = append(rotated, queue[0])
	session.EntityTurn = rotated
	return nil
}

// PostponeTurn reinserts the active entry at position among the remaining
// entries, 1 <= position <= len(remaining)-1
func (e *engine) PostponeTurn(session *entities.Session, entityUID string, position int) error {
	if err := requireActiveTurn(session, "postpone turn", entityUID); err != nil {
		return err
	}

	queue := session.EntityTurn
	remaining := len(queue) - 1
	if position < 1 || position > remaining-1 {
		return errors.InvalidArgumentf("postpone position %d must be between 1 and %d", position, remaining-1).
			WithMeta("position", position).
			WithMeta("queue_length", len(queue))
	}

	reordered := make([]*entities.TurnEntry, 0, len(queue))
	reordered = append(reordered, queue[1:position+1]...)
	reordered = append(reordered, queue[0])
	reordered = append(reordered, queue[position+1:]...)
	session.EntityTurn = reordered
	return nil
}

// CurrentTurn returns the active entry of an ongoing or paused session
func (e *engine) CurrentTurn(session *entities.Session) (*entities.TurnEntry, error) {
	if session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if err := requireStatus(session, "get turn", combatStatuses...); err != nil {
		return nil, err
	}

	active := session.ActiveTurn()
	if active == nil {
		return nil, errors.EmptyTurnQueue(session.ID)
	}
	return active, nil
}

func requireActiveTurn(session *entities.Session, operation, entityUID string) error {
	if session == nil {
		return errors.InvalidArgument("session is required")
	}
	if err := requireStatus(session, operation, turnStatuses...); err != nil {
		return err
	}

	active := session.ActiveTurn()
	if active == nil {
		return errors.EmptyTurnQueue(session.ID)
	}
	if active.EntityUID != entityUID {
		return errors.NotActiveTurn(entityUID, active.EntityUID)
	}
	return nil
}

// removeTurnEntry excises uid from the queue, keeping the order of the rest.
// Returns false when uid was not queued.
func removeTurnEntry(session *entities.Session, uid string) bool {
	idx := session.TurnIndex(uid)
	if idx < 0 {
		return false
	}

	queue := make([]*entities.TurnEntry, 0, len(session.EntityTurn)-1)
	queue = append(queue, session.EntityTurn[:idx]...)
	queue = append(queue, session.EntityTurn[idx+1:]...)
	session.EntityTurn = queue
	return true
}
