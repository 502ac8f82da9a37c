package engine

import (
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

func (e *engine) AddEntity(session *entities.Session, input *AddEntityInput) (entities.Combatant, error) {
	if session == nil {
		return entities.Combatant{}, errors.InvalidArgument("session is required")
	}
	if input == nil {
		return entities.Combatant{}, errors.InvalidArgument("input is required")
	}
	if err := requireStatus(session, "add entity", rosterStatuses...); err != nil {
		return entities.Combatant{}, err
	}

	switch input.Type {
	case entities.EntityTypeCharacter, entities.EntityTypeNPC:
		if err := e.addReference(session, input.Type, input.UID, false); err != nil {
			return entities.Combatant{}, err
		}
		c, _ := session.Combatant(input.UID)
		return c, nil
	case entities.EntityTypeMonster:
		return e.addMonster(session, input.Monster)
	default:
		return entities.Combatant{}, errors.InvalidArgumentf("unknown entity type %q", input.Type)
	}
}

// addReference appends a character or NPC uid. With tolerateRepeat a uid
// already in the same list is skipped, which is how initial rosters collapse
// duplicates.
func (e *engine) addReference(session *entities.Session, kind entities.EntityType, uid string, tolerateRepeat bool) error {
	if uid == "" {
		return errors.InvalidArgumentf("%s uid is required", kind)
	}

	if existing, ok := session.Combatant(uid); ok {
		if tolerateRepeat && existing.Type == kind {
			return nil
		}
		return errors.DuplicateEntity(uid)
	}

	switch kind {
	case entities.EntityTypeCharacter:
		session.CharacterUIDs = append(session.CharacterUIDs, uid)
	case entities.EntityTypeNPC:
		session.NPCUIDs = append(session.NPCUIDs, uid)
	default:
		return errors.InvalidArgumentf("%s is not a reference type", kind)
	}

	enqueueIfLive(session, entities.Combatant{Type: kind, UID: uid})
	return nil
}

func (e *engine) addMonster(session *entities.Session, monster *entities.Monster) (entities.Combatant, error) {
	if monster == nil {
		return entities.Combatant{}, errors.InvalidArgument("monster is required")
	}
	if err := validateMonster(monster); err != nil {
		return entities.Combatant{}, err
	}

	m := monster.Clone()
	m.ID = e.monsterIDs.Generate()
	if _, ok := session.Combatant(m.ID); ok {
		return entities.Combatant{}, errors.DuplicateEntity(m.ID)
	}
	if m.HP == 0 {
		m.HP = m.MaxHP
	}
	m.ClampHP()

	session.Monsters = append(session.Monsters, m)
	c := entities.MonsterRecord(m)
	enqueueIfLive(session, c)
	return c, nil
}

func validateMonster(m *entities.Monster) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", m.Name, vb)
	if m.MaxHP < 0 {
		vb.Field("max_hp", "cannot be negative")
	}
	if m.HP < 0 {
		vb.Field("hp", "cannot be negative")
	}
	if m.ArmorClass < 0 {
		vb.Field("armor_class", "cannot be negative")
	}
	if m.Speed < 0 {
		vb.Field("speed", "cannot be negative")
	}
	for i, effect := range m.Effects {
		if effect.Name == "" {
			vb.Fieldf("effects", "effect %d needs a name", i)
		}
	}
	return vb.Build()
}

// enqueueIfLive gives a newcomer a turn at the back once play has started
func enqueueIfLive(session *entities.Session, c entities.Combatant) {
	if session.Status != entities.SessionStatusOngoing && session.Status != entities.SessionStatusPaused {
		return
	}
	if session.TurnIndex(c.UID) >= 0 {
		return
	}
	session.EntityTurn = append(session.EntityTurn, c.AsTurnEntry())
}

func (e *engine) RemoveEntity(session *entities.Session, entityUID string) (entities.Combatant, error) {
	if session == nil {
		return entities.Combatant{}, errors.InvalidArgument("session is required")
	}
	if err := requireStatus(session, "remove entity", rosterStatuses...); err != nil {
		return entities.Combatant{}, err
	}

	c, ok := session.Combatant(entityUID)
	if !ok {
		return entities.Combatant{}, errors.EntityNotInSession(entityUID)
	}
	if isLastInQueue(session, entityUID) {
		return entities.Combatant{}, errors.EmptyTurnQueue(session.ID).
			WithMeta("entity_uid", entityUID)
	}

	switch c.Type {
	case entities.EntityTypeCharacter:
		session.CharacterUIDs = removeString(session.CharacterUIDs, entityUID)
	case entities.EntityTypeNPC:
		session.NPCUIDs = removeString(session.NPCUIDs, entityUID)
	case entities.EntityTypeMonster:
		idx := session.MonsterIndex(entityUID)
		monsters := make([]*entities.Monster, 0, len(session.Monsters)-1)
		monsters = append(monsters, session.Monsters[:idx]...)
		monsters = append(monsters, session.Monsters[idx+1:]...)
		session.Monsters = monsters
	}
	removeTurnEntry(session, entityUID)

	return c, nil
}

func removeString(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func (e *engine) GetEntity(session *entities.Session, entityUID string) (*EntityView, error) {
	if session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	c, ok := session.Combatant(entityUID)
	if !ok {
		return nil, errors.EntityNotInSession(entityUID)
	}
	return viewOf(session, c), nil
}

func viewOf(session *entities.Session, c entities.Combatant) *EntityView {
	view := &EntityView{Combatant: c}
	if idx := session.TurnIndex(c.UID); idx >= 0 {
		view.TurnEntry = session.EntityTurn[idx]
	}
	return view
}

func (e *engine) UpdateEntity(session *entities.Session, entityUID string, patch *EntityPatch) (*UpdateResult, error) {
	if session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if patch == nil {
		return nil, errors.InvalidArgument("patch is required")
	}
	if err := requireStatus(session, "update entity", rosterStatuses...); err != nil {
		return nil, err
	}

	c, ok := session.Combatant(entityUID)
	if !ok {
		return nil, errors.EntityNotInSession(entityUID)
	}

	if c.Type == entities.EntityTypeMonster {
		return e.updateMonster(session, c.Monster, patch)
	}
	return e.updateReference(session, c, patch)
}

func (e *engine) updateMonster(session *entities.Session, current *entities.Monster, patch *EntityPatch) (*UpdateResult, error) {
	m := current.Clone()
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.MaxHP != nil {
		m.MaxHP = *patch.MaxHP
	}
	if patch.HP != nil {
		m.HP = *patch.HP
	}
	if patch.ArmorClass != nil {
		m.ArmorClass = *patch.ArmorClass
	}
	if patch.Enchantments != nil {
		m.Enchantments = append([]string(nil), patch.Enchantments...)
	}
	if patch.IsReactionActivable != nil {
		m.IsReactionActivable = *patch.IsReactionActivable
	}
	if patch.Speed != nil {
		m.Speed = *patch.Speed
	}
	if patch.Weapons != nil {
		m.Weapons = append([]string(nil), patch.Weapons...)
	}
	if patch.Effects != nil {
		m.Effects = (&entities.Monster{Effects: patch.Effects}).Clone().Effects
	}

	// Negative hp in a patch is clamped rather than rejected
	if m.HP < 0 {
		m.HP = 0
	}
	if err := validateMonster(m); err != nil {
		return nil, err
	}
	m.ClampHP()

	session.Monsters[session.MonsterIndex(m.ID)] = m

	result := &UpdateResult{}
	if current.HP > 0 && m.HP == 0 {
		result.Defeated = true
		result.RemovedFromTurnOrder = e.applyDefeat(session, m.ID)
	}
	result.Entity = viewOf(session, entities.MonsterRecord(m))
	return result, nil
}

func (e *engine) updateReference(session *entities.Session, c entities.Combatant, patch *EntityPatch) (*UpdateResult, error) {
	if patch.Name != nil || patch.Enchantments != nil || patch.IsReactionActivable != nil ||
		patch.Speed != nil || patch.Weapons != nil || patch.Effects != nil {
		return nil, errors.InvalidArgumentf("only armor class and hp can be tracked for a %s", c.Type).
			WithMeta("entity_uid", c.UID)
	}

	idx := session.TurnIndex(c.UID)
	if idx < 0 {
		return nil, errors.FailedPreconditionf("%s %s has no turn entry to track stats on", c.Type, c.UID).
			WithMeta("entity_uid", c.UID)
	}

	vb := errors.NewValidationBuilder()
	if patch.ArmorClass != nil && *patch.ArmorClass < 0 {
		vb.Field("armor_class", "cannot be negative")
	}
	if patch.MaxHP != nil && *patch.MaxHP < 0 {
		vb.Field("max_hp", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	current := session.EntityTurn[idx]
	entry := current.Clone()
	if patch.ArmorClass != nil {
		entry.ArmorClass = clonePtr(patch.ArmorClass)
	}
	if patch.MaxHP != nil {
		entry.MaxHP = clonePtr(patch.MaxHP)
		if entry.HP == nil {
			entry.HP = clonePtr(patch.MaxHP)
		}
	}
	if patch.HP != nil {
		entry.HP = clonePtr(patch.HP)
	}
	entry.ClampHP()
	session.EntityTurn[idx] = entry

	result := &UpdateResult{}
	if wasStanding(current.HP) && entry.HP != nil && *entry.HP == 0 {
		result.Defeated = true
		result.RemovedFromTurnOrder = e.applyDefeat(session, c.UID)
	}
	result.Entity = viewOf(session, c)
	return result, nil
}

// wasStanding treats untracked hp as standing
func wasStanding(hp *int32) bool {
	return hp == nil || *hp > 0
}

// applyDefeat runs the configured policy for an entity that just dropped
// to 0 hp and reports whether its turn entry was removed
func (e *engine) applyDefeat(session *entities.Session, uid string) bool {
	if e.defeatPolicy != DefeatPolicyRemoveFromTurnOrder {
		return false
	}
	// the last scheduled entity keeps its turn so a live session never
	// runs with an empty queue
	if isLastInQueue(session, uid) {
		return false
	}
	return removeTurnEntry(session, uid)
}

// isLastInQueue reports whether uid holds the only turn entry of a live
// session
func isLastInQueue(session *entities.Session, uid string) bool {
	if session.Status != entities.SessionStatusOngoing && session.Status != entities.SessionStatusPaused {
		return false
	}
	return len(session.EntityTurn) == 1 && session.EntityTurn[0].EntityUID == uid
}

func clonePtr(p *int32) *int32 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
