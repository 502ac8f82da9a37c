package engine

import (
	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// d20 is the roll used when an attack or saving throw names no dice
var d20 = []dice.Die{dice.D20}

func (e *engine) RollDice(spec dice.Spec) (*dice.Result, error) {
	return dice.Roll(e.roller, spec)
}

func (e *engine) Attack(session *entities.Session, input *AttackInput) (*AttackResult, error) {
	if session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireStatus(session, "attack", combatStatuses...); err != nil {
		return nil, err
	}

	if _, ok := session.Combatant(input.AttackerUID); !ok {
		return nil, errors.AttackerNotInSession(input.AttackerUID)
	}
	target, ok := session.Combatant(input.TargetUID)
	if !ok {
		return nil, errors.TargetNotFound(input.TargetUID)
	}

	attackSpec := withDefaultDice(input.Attack)
	if err := attackSpec.Validate(); err != nil {
		return nil, err
	}
	rollDamage := len(input.Damage.Dice) > 0
	if rollDamage {
		if err := input.Damage.Validate(); err != nil {
			return nil, err
		}
	}

	armorClass, err := targetArmorClass(session, target, input.TargetArmorClass)
	if err != nil {
		return nil, err
	}

	attackRoll, err := e.RollDice(attackSpec)
	if err != nil {
		return nil, err
	}

	result := &AttackResult{
		AttackRoll: attackRoll,
		ArmorClass: armorClass,
		Hit:        attackRoll.Total >= armorClass,
	}
	if result.Hit && rollDamage {
		result.DamageRoll, err = e.RollDice(input.Damage)
		if err != nil {
			return nil, err
		}
		result.DamageApplied = max(result.DamageRoll.Total, 0)
	}

	// All rolls are resolved; nothing below can fail
	e.applyDamage(session, target, result)
	return result, nil
}

func withDefaultDice(spec dice.Spec) dice.Spec {
	if len(spec.Dice) == 0 {
		spec.Dice = d20
	}
	return spec
}

// targetArmorClass uses the monster record, else the tracked value on the
// turn entry, else the caller's override
func targetArmorClass(session *entities.Session, target entities.Combatant, override *int32) (int32, error) {
	if target.Type == entities.EntityTypeMonster {
		return target.Monster.ArmorClass, nil
	}
	if idx := session.TurnIndex(target.UID); idx >= 0 && session.EntityTurn[idx].ArmorClass != nil {
		return *session.EntityTurn[idx].ArmorClass, nil
	}
	if override != nil {
		return *override, nil
	}
	return 0, errors.InvalidArgumentf("armor class of %s %s is not tracked; pass target_armor_class", target.Type, target.UID).
		WithMeta("entity_uid", target.UID)
}

func (e *engine) applyDamage(session *entities.Session, target entities.Combatant, result *AttackResult) {
	if target.Type == entities.EntityTypeMonster {
		m := target.Monster
		before := m.HP
		m.HP -= result.DamageApplied
		m.ClampHP()
		hp := m.HP
		result.TargetHP = &hp
		if before > 0 && m.HP == 0 {
			result.Defeated = true
			result.RemovedFromTurnOrder = e.applyDefeat(session, m.ID)
		}
		return
	}

	idx := session.TurnIndex(target.UID)
	if idx < 0 || session.EntityTurn[idx].HP == nil {
		return
	}
	entry := session.EntityTurn[idx]
	before := *entry.HP
	hp := before - result.DamageApplied
	entry.HP = &hp
	entry.ClampHP()
	after := *entry.HP
	result.TargetHP = &after
	if before > 0 && after == 0 {
		result.Defeated = true
		result.RemovedFromTurnOrder = e.applyDefeat(session, target.UID)
	}
}

func (e *engine) SavingThrow(session *entities.Session, input *SavingThrowInput) (*SavingThrowResult, error) {
	if session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireStatus(session, "saving throw", combatStatuses...); err != nil {
		return nil, err
	}
	if _, ok := session.Combatant(input.EntityUID); !ok {
		return nil, errors.EntityNotInSession(input.EntityUID)
	}

	roll, err := e.RollDice(withDefaultDice(input.Roll))
	if err != nil {
		return nil, err
	}

	return &SavingThrowResult{
		Roll:            roll,
		DifficultyClass: input.DifficultyClass,
		Success:         roll.Total >= input.DifficultyClass,
	}, nil
}

func (e *engine) AddEffect(session *entities.Session, entityUID string, effect entities.Effect) error {
	if session == nil {
		return errors.InvalidArgument("session is required")
	}
	if err := requireStatus(session, "add effect", combatStatuses...); err != nil {
		return err
	}
	if effect.Name == "" {
		return errors.InvalidArgument("effect name is required")
	}
	if effect.Duration != nil && *effect.Duration < 0 {
		return errors.InvalidArgument("effect duration cannot be negative")
	}

	m, err := ownedMonster(session, entityUID)
	if err != nil {
		return err
	}

	m.Effects = append(m.Effects, entities.Effect{
		Name:        effect.Name,
		Description: effect.Description,
		Duration:    clonePtr(effect.Duration),
	})
	return nil
}

func (e *engine) SetReaction(session *entities.Session, entityUID string, enabled bool) error {
	if session == nil {
		return errors.InvalidArgument("session is required")
	}
	if err := requireStatus(session, "set reaction", combatStatuses...); err != nil {
		return err
	}

	m, err := ownedMonster(session, entityUID)
	if err != nil {
		return err
	}
	m.IsReactionActivable = enabled
	return nil
}

// ownedMonster resolves a target that must carry a mutable record
func ownedMonster(session *entities.Session, uid string) (*entities.Monster, error) {
	idx := session.MonsterIndex(uid)
	if idx < 0 {
		return nil, errors.TargetNotFound(uid)
	}
	return session.Monsters[idx], nil
}
