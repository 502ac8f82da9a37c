package entities

// Event types published on the session event bus
const (
	EventSessionCreated       = "session.created"
	EventSessionStatusChanged = "session.status_changed"
	EventSessionDeleted       = "session.deleted"
	EventTurnEnded            = "turn.ended"
	EventTurnPostponed        = "turn.postponed"
	EventEntityAdded          = "entity.added"
	EventEntityRemoved        = "entity.removed"
	EventEntityUpdated        = "entity.updated"
	EventEntityDefeated       = "entity.defeated"
	EventAttackResolved       = "combat.attack_resolved"
	EventSavingThrowRolled    = "combat.saving_throw_rolled"
	EventEffectApplied        = "combat.effect_applied"
	EventReactionChanged      = "combat.reaction_changed"
	EventDiceRolled           = "dice.rolled"
)

// Keys set on event contexts
const (
	EventKeySessionID  = "session_id"
	EventKeyOperation  = "operation"
	EventKeyFromStatus = "from_status"
	EventKeyToStatus   = "to_status"
	EventKeyHit        = "hit"
	EventKeyDamage     = "damage"
	EventKeyDefeated   = "defeated"
	EventKeyRollTotal  = "roll_total"
	EventKeySuccess    = "success"
)
