package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// AddEntity joins a character, NPC or monster to the session. Characters
// and NPCs must exist in the directory; monsters may be seeded from a
// template.
func (o *orchestrator) AddEntity(ctx context.Context, input *AddEntityInput) (*EntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	add := &engine.AddEntityInput{Type: input.Type, UID: input.UID}
	switch input.Type {
	case entities.EntityTypeCharacter, entities.EntityTypeNPC:
		if err := o.requireKnown(ctx, input.Type, input.UID); err != nil {
			return nil, err
		}
	case entities.EntityTypeMonster:
		if input.Monster == nil {
			return nil, errors.InvalidArgument("monster is required")
		}
		// the template is fetched once; retries reuse it
		monster, err := o.resolveMonster(ctx, input.Monster, input.Author)
		if err != nil {
			return nil, err
		}
		add.Monster = monster
	default:
		return nil, errors.InvalidArgumentf("unknown entity type %q", input.Type)
	}

	var added entities.Combatant
	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		c, err := o.engine.AddEntity(session, add)
		if err != nil {
			return err
		}
		added = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := o.engine.GetEntity(saved, added.UID)
	if err != nil {
		return nil, err
	}

	slog.Info("Entity added",
		"session_id", saved.ID,
		"entity_uid", added.UID,
		"entity_type", added.Type,
	)

	o.record(ctx, saved, input.Author, entities.ActionTypeEntity,
		"%s %s joined the session", added.Type, describe(added))
	o.publish(ctx, entities.EventEntityAdded, saved, nil, added, nil)

	return &EntityOutput{Entity: view}, nil
}

// RemoveEntity drops an entity from the roster and the turn queue
func (o *orchestrator) RemoveEntity(ctx context.Context, input *RemoveEntityInput) (*RemoveEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var removed entities.Combatant
	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		c, err := o.engine.RemoveEntity(session, input.EntityUID)
		if err != nil {
			return err
		}
		removed = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Entity removed",
		"session_id", saved.ID,
		"entity_uid", removed.UID,
		"entity_type", removed.Type,
	)

	o.record(ctx, saved, input.Author, entities.ActionTypeEntity,
		"%s %s left the session", removed.Type, describe(removed))
	o.publish(ctx, entities.EventEntityRemoved, saved, nil, removed, nil)

	return &RemoveEntityOutput{Removed: removed}, nil
}

// GetEntity returns one roster member with its turn entry
func (o *orchestrator) GetEntity(ctx context.Context, input *GetEntityInput) (*EntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	view, err := o.engine.GetEntity(session, input.EntityUID)
	if err != nil {
		return nil, err
	}

	return &EntityOutput{Entity: view}, nil
}

// UpdateEntity merges a patch into a monster record or a reference's
// tracked values
func (o *orchestrator) UpdateEntity(ctx context.Context, input *UpdateEntityInput) (*UpdateEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Patch == nil {
		return nil, errors.InvalidArgument("patch is required")
	}

	var result *engine.UpdateResult
	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		r, err := o.engine.UpdateEntity(session, input.EntityUID, input.Patch)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	target := result.Entity.Combatant
	slog.Info("Entity updated",
		"session_id", saved.ID,
		"entity_uid", target.UID,
		"defeated", result.Defeated,
	)

	o.record(ctx, saved, input.Author, entities.ActionTypeEntity,
		"%s %s was updated", target.Type, describe(target))
	o.publish(ctx, entities.EventEntityUpdated, saved, nil, target, nil)
	if result.Defeated {
		o.defeated(ctx, saved, input.Author, target, result.RemovedFromTurnOrder)
	}

	return &UpdateEntityOutput{Result: result}, nil
}

func (o *orchestrator) defeated(ctx context.Context, session *entities.Session, author string, target entities.Combatant, removed bool) {
	if removed {
		o.record(ctx, session, author, entities.ActionTypeEntity,
			"%s is defeated and leaves the turn order", describe(target))
	} else {
		o.record(ctx, session, author, entities.ActionTypeEntity,
			"%s is defeated", describe(target))
	}
	o.publish(ctx, entities.EventEntityDefeated, session, nil, target, map[string]any{
		entities.EventKeyDefeated: true,
	})
}

// describe names a combatant for history lines
func describe(c entities.Combatant) string {
	if c.Monster != nil && c.Monster.Name != "" {
		return c.Monster.Name + " (" + c.UID + ")"
	}
	return c.UID
}
