package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// Attack resolves an attack roll against the target's armor class and
// applies damage on a hit. Dice are rolled again if the save has to be
// retried.
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.AttackResult
	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		r, err := o.engine.Attack(session, &engine.AttackInput{
			AttackerUID:      input.AttackerUID,
			TargetUID:        input.TargetUID,
			Attack:           input.Attack,
			Damage:           input.Damage,
			TargetArmorClass: input.TargetArmorClass,
		})
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Attack resolved",
		"session_id", saved.ID,
		"attacker_uid", input.AttackerUID,
		"target_uid", input.TargetUID,
		"roll", result.AttackRoll.Total,
		"armor_class", result.ArmorClass,
		"hit", result.Hit,
		"damage", result.DamageApplied,
	)

	attacker := o.entity(saved, input.AttackerUID)
	target, _ := saved.Combatant(input.TargetUID)

	if result.Hit {
		o.record(ctx, saved, input.Author, entities.ActionTypeAttack,
			"%s attacks %s: %d vs AC %d, hit for %d damage",
			input.AttackerUID, describe(target), result.AttackRoll.Total, result.ArmorClass, result.DamageApplied)
	} else {
		o.record(ctx, saved, input.Author, entities.ActionTypeAttack,
			"%s attacks %s: %d vs AC %d, miss",
			input.AttackerUID, describe(target), result.AttackRoll.Total, result.ArmorClass)
	}
	o.publish(ctx, entities.EventAttackResolved, saved, attacker, target, map[string]any{
		entities.EventKeyHit:       result.Hit,
		entities.EventKeyDamage:    result.DamageApplied,
		entities.EventKeyRollTotal: result.AttackRoll.Total,
		entities.EventKeyDefeated:  result.Defeated,
	})
	if result.Defeated {
		o.defeated(ctx, saved, input.Author, target, result.RemovedFromTurnOrder)
	}

	return &AttackOutput{Result: result}, nil
}

// SavingThrow rolls against a difficulty class. Only the history changes.
func (o *orchestrator) SavingThrow(ctx context.Context, input *SavingThrowInput) (*SavingThrowOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.SavingThrow(session, &engine.SavingThrowInput{
		EntityUID:       input.EntityUID,
		DifficultyClass: input.DifficultyClass,
		Roll:            input.Roll,
	})
	if err != nil {
		return nil, err
	}

	outcome := "fails"
	if result.Success {
		outcome = "succeeds"
	}
	o.record(ctx, session, input.Author, entities.ActionTypeSavingThrow,
		"%s %s a DC %d saving throw with %d", input.EntityUID, outcome, result.DifficultyClass, result.Roll.Total)
	o.publish(ctx, entities.EventSavingThrowRolled, session, o.entity(session, input.EntityUID), nil, map[string]any{
		entities.EventKeySuccess:   result.Success,
		entities.EventKeyRollTotal: result.Roll.Total,
	})

	return &SavingThrowOutput{Result: result}, nil
}

// AddEffect appends a status effect to a monster
func (o *orchestrator) AddEffect(ctx context.Context, input *AddEffectInput) (*EntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		return o.engine.AddEffect(session, input.EntityUID, input.Effect)
	})
	if err != nil {
		return nil, err
	}

	view, err := o.engine.GetEntity(saved, input.EntityUID)
	if err != nil {
		return nil, err
	}

	slog.Info("Effect applied",
		"session_id", saved.ID,
		"entity_uid", input.EntityUID,
		"effect", input.Effect.Name,
	)

	o.record(ctx, saved, input.Author, entities.ActionTypeEffect,
		"%s is affected by %s", describe(view.Combatant), input.Effect.Name)
	o.publish(ctx, entities.EventEffectApplied, saved, nil, view.Combatant, nil)

	return &EntityOutput{Entity: view}, nil
}

// SetReaction enables or disables a monster's reaction
func (o *orchestrator) SetReaction(ctx context.Context, input *SetReactionInput) (*EntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		return o.engine.SetReaction(session, input.EntityUID, input.Enabled)
	})
	if err != nil {
		return nil, err
	}

	view, err := o.engine.GetEntity(saved, input.EntityUID)
	if err != nil {
		return nil, err
	}

	slog.Info("Reaction changed",
		"session_id", saved.ID,
		"entity_uid", input.EntityUID,
		"enabled", input.Enabled,
	)

	state := "disabled"
	if input.Enabled {
		state = "enabled"
	}
	o.record(ctx, saved, input.Author, entities.ActionTypeReaction,
		"%s reaction %s", describe(view.Combatant), state)
	o.publish(ctx, entities.EventReactionChanged, saved, nil, view.Combatant, nil)

	return &EntityOutput{Entity: view}, nil
}

// RollDice resolves a spec. With a session ID the roll is logged to that
// session; without one it is a standalone roll.
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var session *entities.Session
	if input.SessionID != "" {
		s, err := o.load(ctx, input.SessionID)
		if err != nil {
			return nil, err
		}
		session = s
	}

	result, err := o.engine.RollDice(input.Spec)
	if err != nil {
		return nil, err
	}

	if session != nil {
		o.record(ctx, session, input.Author, entities.ActionTypeDice,
			"rolled %s: %d", input.Spec.String(), result.Total)
		o.publish(ctx, entities.EventDiceRolled, session, nil, nil, map[string]any{
			entities.EventKeyRollTotal: result.Total,
		})
	}

	return &RollDiceOutput{Result: result}, nil
}
