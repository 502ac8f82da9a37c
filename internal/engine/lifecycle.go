package engine

import (
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

type transition struct {
	from []entities.SessionStatus
	to   entities.SessionStatus
}

// transitions is the full lifecycle table. Delete is legal from every
// status and leaves the status alone; the store removes the record.
var transitions = map[Operation]transition{
	OperationStart: {
		from: []entities.SessionStatus{entities.SessionStatusCreated},
		to:   entities.SessionStatusOngoing,
	},
	OperationPause: {
		from: []entities.SessionStatus{entities.SessionStatusOngoing},
		to:   entities.SessionStatusPaused,
	},
	OperationContinue: {
		from: []entities.SessionStatus{entities.SessionStatusPaused},
		to:   entities.SessionStatusOngoing,
	},
	OperationStop: {
		from: []entities.SessionStatus{entities.SessionStatusOngoing, entities.SessionStatusPaused},
		to:   entities.SessionStatusStopped,
	},
	OperationDelete: {
		from: []entities.SessionStatus{
			entities.SessionStatusCreated,
			entities.SessionStatusOngoing,
			entities.SessionStatusPaused,
			entities.SessionStatusStopped,
		},
	},
}

// Statuses allowed for the non-lifecycle operation groups
var (
	turnStatuses   = []entities.SessionStatus{entities.SessionStatusOngoing}
	combatStatuses = []entities.SessionStatus{entities.SessionStatusOngoing, entities.SessionStatusPaused}
	rosterStatuses = []entities.SessionStatus{
		entities.SessionStatusCreated,
		entities.SessionStatusOngoing,
		entities.SessionStatusPaused,
	}
)

func (e *engine) NewSession(input *NewSessionInput) (*entities.Session, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("master_uid", input.MasterUID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := validateMapSize(input.MapSize); err != nil {
		return nil, err
	}

	session := &entities.Session{
		ID:           e.sessionIDs.Generate(),
		Name:         input.Name,
		MasterUID:    input.MasterUID,
		CampaignName: input.CampaignName,
		MapSize:      input.MapSize,
		Status:       entities.SessionStatusCreated,
	}

	for _, uid := range input.CharacterUIDs {
		if err := e.addReference(session, entities.EntityTypeCharacter, uid, true); err != nil {
			return nil, err
		}
	}
	for _, uid := range input.NPCUIDs {
		if err := e.addReference(session, entities.EntityTypeNPC, uid, true); err != nil {
			return nil, err
		}
	}
	for _, m := range input.Monsters {
		if _, err := e.addMonster(session, m); err != nil {
			return nil, err
		}
	}

	return session, nil
}

func validateMapSize(size entities.MapSize) error {
	if size.Width < entities.MinMapSize || size.Width > entities.MaxMapSize {
		return errors.MapSizeOutOfRange("width", size.Width, entities.MinMapSize, entities.MaxMapSize)
	}
	if size.Height < entities.MinMapSize || size.Height > entities.MaxMapSize {
		return errors.MapSizeOutOfRange("height", size.Height, entities.MinMapSize, entities.MaxMapSize)
	}
	return nil
}

func (e *engine) Apply(session *entities.Session, op Operation) error {
	if session == nil {
		return errors.InvalidArgument("session is required")
	}

	t, ok := transitions[op]
	if !ok {
		return errors.InvalidArgumentf("unknown operation %q", op)
	}
	if err := requireStatus(session, string(op), t.from...); err != nil {
		return err
	}

	switch op {
	case OperationStart:
		roster := session.Roster()
		if len(roster) == 0 {
			return errors.EmptyTurnQueue(session.ID)
		}
		queue := make([]*entities.TurnEntry, 0, len(roster))
		for _, c := range roster {
			queue = append(queue, c.AsTurnEntry())
		}
		session.EntityTurn = queue
	case OperationStop:
		session.EntityTurn = nil
	case OperationDelete:
		return nil
	}

	session.Status = t.to
	return nil
}

// requireStatus fails with InvalidStateTransition unless the session is in
// one of the allowed statuses
func requireStatus(session *entities.Session, operation string, allowed ...entities.SessionStatus) error {
	for _, status := range allowed {
		if session.Status == status {
			return nil
		}
	}

	names := make([]string, len(allowed))
	for i, status := range allowed {
		names[i] = string(status)
	}
	return errors.InvalidStateTransition(operation, string(session.Status), names).
		WithMeta("session_id", session.ID)
}
