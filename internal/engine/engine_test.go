package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	mockdice "github.com/KirkDiggler/rpg-session-api/internal/dice/mock"
	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/idgen"
)

type EngineTestSuite struct {
	suite.Suite
	roller *mockdice.ScriptedRoller
	engine engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.roller = mockdice.NewScriptedRoller()
	s.engine = s.newEngine(engine.DefeatPolicyKeep)
}

func (s *EngineTestSuite) newEngine(policy engine.DefeatPolicy) engine.Engine {
	e, err := engine.New(&engine.Config{
		Roller:             s.roller,
		SessionIDGenerator: idgen.NewSequential("ses"),
		MonsterIDGenerator: idgen.NewSequential("mon"),
		DefeatPolicy:       policy,
	})
	s.Require().NoError(err)
	return e
}

func (s *EngineTestSuite) newSession(characters ...string) *entities.Session {
	session, err := s.engine.NewSession(&engine.NewSessionInput{
		Name:          "Goblin Ambush",
		MasterUID:     "dm_1",
		MapSize:       entities.MapSize{Width: 20, Height: 20},
		CharacterUIDs: characters,
	})
	s.Require().NoError(err)
	return session
}

func (s *EngineTestSuite) startedSession(characters ...string) *entities.Session {
	session := s.newSession(characters...)
	s.Require().NoError(s.engine.Apply(session, engine.OperationStart))
	return session
}

func (s *EngineTestSuite) queue(session *entities.Session) []string {
	out := make([]string, len(session.EntityTurn))
	for i, entry := range session.EntityTurn {
		out[i] = entry.EntityUID
	}
	return out
}

func (s *EngineTestSuite) addMonster(session *entities.Session, monster *entities.Monster) *entities.Monster {
	c, err := s.engine.AddEntity(session, &engine.AddEntityInput{
		Type:    entities.EntityTypeMonster,
		Monster: monster,
	})
	s.Require().NoError(err)
	return c.Monster
}

func int32Ptr(v int32) *int32 {
	return &v
}

func (s *EngineTestSuite) TestNew_RequiresDependencies() {
	_, err := engine.New(&engine.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = engine.New(&engine.Config{
		Roller:             s.roller,
		SessionIDGenerator: idgen.NewSequential("ses"),
		MonsterIDGenerator: idgen.NewSequential("mon"),
		DefeatPolicy:       "explode",
	})
	s.Require().Error(err)
}

func (s *EngineTestSuite) TestNewSession() {
	session, err := s.engine.NewSession(&engine.NewSessionInput{
		Name:          "Goblin Ambush",
		MasterUID:     "dm_1",
		CampaignName:  "Lost Mine",
		MapSize:       entities.MapSize{Width: 10, Height: 100},
		CharacterUIDs: []string{"char_1", "char_2", "char_1"},
		NPCUIDs:       []string{"npc_1"},
		Monsters:      []*entities.Monster{{ID: "ignored", Name: "Goblin", MaxHP: 7, ArmorClass: 15}},
	})
	s.Require().NoError(err)

	s.Equal("ses_1", session.ID)
	s.Equal(entities.SessionStatusCreated, session.Status)
	s.Equal([]string{"char_1", "char_2"}, session.CharacterUIDs)
	s.Equal([]string{"npc_1"}, session.NPCUIDs)
	s.Require().Len(session.Monsters, 1)
	s.Equal("mon_1", session.Monsters[0].ID)
	s.Equal(int32(7), session.Monsters[0].HP)
	s.Empty(session.EntityTurn)
}

func (s *EngineTestSuite) TestNewSession_MapSizeOutOfRange() {
	testCases := []struct {
		name    string
		mapSize entities.MapSize
	}{
		{name: "narrow", mapSize: entities.MapSize{Width: 5, Height: 50}},
		{name: "tall", mapSize: entities.MapSize{Width: 50, Height: 101}},
		{name: "zero", mapSize: entities.MapSize{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.engine.NewSession(&engine.NewSessionInput{
				Name:      "Bad Map",
				MasterUID: "dm_1",
				MapSize:   tc.mapSize,
			})
			s.Require().Error(err)
			s.True(errors.IsKind(err, errors.KindMapSizeOutOfRange))
			s.Equal(errors.CodeOutOfRange, errors.GetCode(err))
		})
	}
}

func (s *EngineTestSuite) TestNewSession_Validation() {
	_, err := s.engine.NewSession(&engine.NewSessionInput{MapSize: entities.MapSize{Width: 20, Height: 20}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
	s.Contains(err.Error(), "master_uid")

	_, err = s.engine.NewSession(&engine.NewSessionInput{
		Name:          "Mixed",
		MasterUID:     "dm_1",
		MapSize:       entities.MapSize{Width: 20, Height: 20},
		CharacterUIDs: []string{"hero"},
		NPCUIDs:       []string{"hero"},
	})
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindDuplicateEntity))
}

func (s *EngineTestSuite) TestTransitionTableIsTotal() {
	allowed := map[entities.SessionStatus]map[engine.Operation]entities.SessionStatus{
		entities.SessionStatusCreated: {
			engine.OperationStart:  entities.SessionStatusOngoing,
			engine.OperationDelete: entities.SessionStatusCreated,
		},
		entities.SessionStatusOngoing: {
			engine.OperationPause:  entities.SessionStatusPaused,
			engine.OperationStop:   entities.SessionStatusStopped,
			engine.OperationDelete: entities.SessionStatusOngoing,
		},
		entities.SessionStatusPaused: {
			engine.OperationContinue: entities.SessionStatusOngoing,
			engine.OperationStop:     entities.SessionStatusStopped,
			engine.OperationDelete:   entities.SessionStatusPaused,
		},
		entities.SessionStatusStopped: {
			engine.OperationDelete: entities.SessionStatusStopped,
		},
	}
	operations := []engine.Operation{
		engine.OperationStart,
		engine.OperationPause,
		engine.OperationContinue,
		engine.OperationStop,
		engine.OperationDelete,
	}

	for status, legal := range allowed {
		for _, op := range operations {
			s.Run(string(status)+"/"+string(op), func() {
				session := s.newSession("char_1")
				session.Status = status

				err := s.engine.Apply(session, op)

				if next, ok := legal[op]; ok {
					s.Require().NoError(err)
					s.Equal(next, session.Status)
					return
				}
				s.Require().Error(err)
				s.True(errors.IsKind(err, errors.KindInvalidStateTransition))
				s.Equal(status, session.Status)
			})
		}
	}
}

func (s *EngineTestSuite) TestApply_UnknownOperation() {
	session := s.newSession("char_1")
	err := s.engine.Apply(session, "rewind")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestStart_BuildsQueueInRosterOrder() {
	session, err := s.engine.NewSession(&engine.NewSessionInput{
		Name:          "Order",
		MasterUID:     "dm_1",
		MapSize:       entities.MapSize{Width: 20, Height: 20},
		CharacterUIDs: []string{"char_1", "char_2"},
		NPCUIDs:       []string{"npc_1"},
		Monsters:      []*entities.Monster{{Name: "Goblin", MaxHP: 7}},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.engine.Apply(session, engine.OperationStart))

	s.Equal([]string{"char_1", "char_2", "npc_1", "mon_1"}, s.queue(session))
	s.Equal(entities.EntityTypeMonster, session.EntityTurn[3].EntityType)
}

func (s *EngineTestSuite) TestStart_EmptyRoster() {
	session := s.newSession()

	err := s.engine.Apply(session, engine.OperationStart)

	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindEmptyTurnQueue))
	s.Equal(entities.SessionStatusCreated, session.Status)
}

func (s *EngineTestSuite) TestStop_ClearsQueue() {
	session := s.startedSession("A", "B")

	s.Require().NoError(s.engine.Apply(session, engine.OperationStop))

	s.Empty(session.EntityTurn)
	s.Equal(entities.SessionStatusStopped, session.Status)
}

func (s *EngineTestSuite) TestPauseContinueKeepsQueue() {
	session := s.startedSession("A", "B", "C")
	s.Require().NoError(s.engine.EndTurn(session, "A"))

	s.Require().NoError(s.engine.Apply(session, engine.OperationPause))
	s.Require().NoError(s.engine.Apply(session, engine.OperationContinue))

	s.Equal([]string{"B", "C", "A"}, s.queue(session))
}

func (s *EngineTestSuite) TestEndTurn_Rotates() {
	session := s.startedSession("A", "B", "C")

	s.Require().NoError(s.engine.EndTurn(session, "A"))

	s.Equal([]string{"B", "C", "A"}, s.queue(session))
}

func (s *EngineTestSuite) TestEndTurn_FullRoundReturnsToStart() {
	session := s.startedSession("A", "B", "C")

	for _, uid := range []string{"A", "B", "C"} {
		s.Require().NoError(s.engine.EndTurn(session, uid))
	}

	s.Equal([]string{"A", "B", "C"}, s.queue(session))
}

func (s *EngineTestSuite) TestPostponeTurn() {
	session := s.startedSession("A", "B", "C")

	s.Require().NoError(s.engine.PostponeTurn(session, "A", 1))

	s.Equal([]string{"B", "A", "C"}, s.queue(session))
}

func (s *EngineTestSuite) TestPostponeTurn_LongerQueue() {
	session := s.startedSession("A", "B", "C", "D", "E")

	s.Require().NoError(s.engine.PostponeTurn(session, "A", 3))

	s.Equal([]string{"B", "C", "D", "A", "E"}, s.queue(session))
}

func (s *EngineTestSuite) TestPostponeTurn_PositionOutOfRange() {
	session := s.startedSession("A", "B", "C")

	for _, k := range []int{0, 2, -1, 10} {
		err := s.engine.PostponeTurn(session, "A", k)
		s.Require().Error(err, "k=%d", k)
		s.True(errors.IsInvalidArgument(err))
		s.Equal([]string{"A", "B", "C"}, s.queue(session))
	}
}

func (s *EngineTestSuite) TestTurnOps_NotActiveTurn() {
	session := s.startedSession("A", "B", "C")

	err := s.engine.EndTurn(session, "B")
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindNotActiveTurn))
	s.Equal("A", errors.GetMeta(err)["active_uid"])

	err = s.engine.PostponeTurn(session, "C", 1)
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindNotActiveTurn))

	s.Equal([]string{"A", "B", "C"}, s.queue(session))
}

func (s *EngineTestSuite) TestTurnOps_EmptyQueue() {
	session := s.startedSession("A")
	session.EntityTurn = nil

	err := s.engine.EndTurn(session, "A")
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindEmptyTurnQueue))

	_, err = s.engine.CurrentTurn(session)
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindEmptyTurnQueue))
}

func (s *EngineTestSuite) TestTurnOps_RequireOngoing() {
	session := s.startedSession("A", "B")
	s.Require().NoError(s.engine.Apply(session, engine.OperationPause))

	err := s.engine.EndTurn(session, "A")
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindInvalidStateTransition))

	active, err := s.engine.CurrentTurn(session)
	s.Require().NoError(err)
	s.Equal("A", active.EntityUID)

	created := s.newSession("A")
	_, err = s.engine.CurrentTurn(created)
	s.True(errors.IsKind(err, errors.KindInvalidStateTransition))
}

func (s *EngineTestSuite) TestAddEntity_LiveSessionQueuesAtBack() {
	session := s.startedSession("A", "B")

	c, err := s.engine.AddEntity(session, &engine.AddEntityInput{Type: entities.EntityTypeNPC, UID: "npc_1"})
	s.Require().NoError(err)
	s.Equal(entities.NPCRef("npc_1"), c)

	m := s.addMonster(session, &entities.Monster{Name: "Orc", MaxHP: 15, ArmorClass: 13})

	s.Equal([]string{"A", "B", "npc_1", m.ID}, s.queue(session))
}

func (s *EngineTestSuite) TestAddEntity_Duplicate() {
	session := s.startedSession("A", "B")

	_, err := s.engine.AddEntity(session, &engine.AddEntityInput{Type: entities.EntityTypeCharacter, UID: "A"})
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindDuplicateEntity))

	_, err = s.engine.AddEntity(session, &engine.AddEntityInput{Type: entities.EntityTypeNPC, UID: "B"})
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindDuplicateEntity))

	s.Equal([]string{"A", "B"}, s.queue(session))
	s.Empty(session.NPCUIDs)
}

func (s *EngineTestSuite) TestAddEntity_Validation() {
	session := s.newSession()

	_, err := s.engine.AddEntity(session, &engine.AddEntityInput{Type: "dragon", UID: "x"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.AddEntity(session, &engine.AddEntityInput{Type: entities.EntityTypeCharacter})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.AddEntity(session, &engine.AddEntityInput{Type: entities.EntityTypeMonster})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.AddEntity(session, &engine.AddEntityInput{
		Type:    entities.EntityTypeMonster,
		Monster: &entities.Monster{MaxHP: -1},
	})
	s.True(errors.IsInvalidArgument(err))
	s.Empty(session.Monsters)
}

func (s *EngineTestSuite) TestAddEntity_StoppedSession() {
	session := s.startedSession("A")
	s.Require().NoError(s.engine.Apply(session, engine.OperationStop))

	_, err := s.engine.AddEntity(session, &engine.AddEntityInput{Type: entities.EntityTypeCharacter, UID: "B"})

	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindInvalidStateTransition))
}

func (s *EngineTestSuite) TestAddEntity_MonsterHPIsClamped() {
	session := s.newSession()

	m := s.addMonster(session, &entities.Monster{Name: "Troll", MaxHP: 84, HP: 120})

	s.Equal(int32(84), m.HP)
}

func (s *EngineTestSuite) TestRemoveEntity_MidQueue() {
	session := s.startedSession("A", "B", "C")

	c, err := s.engine.RemoveEntity(session, "B")
	s.Require().NoError(err)
	s.Equal("B", c.UID)

	s.Equal([]string{"A", "C"}, s.queue(session))
	s.Equal([]string{"A", "C"}, session.CharacterUIDs)
}

func (s *EngineTestSuite) TestRemoveEntity_ActivePassesTurn() {
	session := s.startedSession("A", "B", "C")

	_, err := s.engine.RemoveEntity(session, "A")
	s.Require().NoError(err)

	s.Equal([]string{"B", "C"}, s.queue(session))
	active, err := s.engine.CurrentTurn(session)
	s.Require().NoError(err)
	s.Equal("B", active.EntityUID)
}

func (s *EngineTestSuite) TestRemoveEntity_Monster() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7})

	_, err := s.engine.RemoveEntity(session, m.ID)
	s.Require().NoError(err)

	s.Empty(session.Monsters)
	s.Equal([]string{"A"}, s.queue(session))
}

func (s *EngineTestSuite) TestRemoveEntity_Missing() {
	session := s.startedSession("A", "B")

	_, err := s.engine.RemoveEntity(session, "Z")

	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindEntityNotInSession))
	s.Equal([]string{"A", "B"}, s.queue(session))
}

func (s *EngineTestSuite) TestRemoveEntity_LastQueuedEntityStays() {
	for _, status := range []entities.SessionStatus{entities.SessionStatusOngoing, entities.SessionStatusPaused} {
		s.Run(string(status), func() {
			session := s.startedSession("A")
			session.Status = status

			_, err := s.engine.RemoveEntity(session, "A")

			s.Require().Error(err)
			s.True(errors.IsKind(err, errors.KindEmptyTurnQueue))
			s.Equal([]string{"A"}, s.queue(session))
			s.Equal([]string{"A"}, session.CharacterUIDs)
			s.Equal(status, session.Status)
		})
	}
}

func (s *EngineTestSuite) TestRemoveEntity_LastEntityBeforeStart() {
	session := s.newSession("A")

	_, err := s.engine.RemoveEntity(session, "A")
	s.Require().NoError(err)

	s.Empty(session.CharacterUIDs)
}

func (s *EngineTestSuite) TestGetEntity() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, ArmorClass: 15})

	view, err := s.engine.GetEntity(session, m.ID)
	s.Require().NoError(err)
	s.Equal("Goblin", view.Combatant.Monster.Name)
	s.Require().NotNil(view.TurnEntry)
	s.Equal(m.ID, view.TurnEntry.EntityUID)

	_, err = s.engine.GetEntity(session, "nobody")
	s.True(errors.IsKind(err, errors.KindEntityNotInSession))
}

func (s *EngineTestSuite) TestUpdateEntity_MergesMonster() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, ArmorClass: 15, Weapons: []string{"scimitar"}})

	name := "Goblin Boss"
	result, err := s.engine.UpdateEntity(session, m.ID, &engine.EntityPatch{
		Name:  &name,
		MaxHP: int32Ptr(21),
		HP:    int32Ptr(30),
	})
	s.Require().NoError(err)

	updated := result.Entity.Combatant.Monster
	s.Equal("Goblin Boss", updated.Name)
	s.Equal(int32(21), updated.MaxHP)
	s.Equal(int32(21), updated.HP)
	s.Equal(int32(15), updated.ArmorClass)
	s.Equal([]string{"scimitar"}, updated.Weapons)
	s.False(result.Defeated)
}

func (s *EngineTestSuite) TestUpdateEntity_InvalidPatchLeavesRecord() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7})

	empty := ""
	_, err := s.engine.UpdateEntity(session, m.ID, &engine.EntityPatch{Name: &empty, HP: int32Ptr(1)})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("Goblin", session.Monsters[0].Name)
	s.Equal(int32(7), session.Monsters[0].HP)
}

func (s *EngineTestSuite) TestUpdateEntity_TracksReferenceStats() {
	session := s.startedSession("A")

	result, err := s.engine.UpdateEntity(session, "A", &engine.EntityPatch{
		ArmorClass: int32Ptr(16),
		MaxHP:      int32Ptr(24),
	})
	s.Require().NoError(err)

	entry := result.Entity.TurnEntry
	s.Require().NotNil(entry)
	s.Equal(int32(16), *entry.ArmorClass)
	s.Equal(int32(24), *entry.HP)

	_, err = s.engine.UpdateEntity(session, "A", &engine.EntityPatch{Speed: int32Ptr(30)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestUpdateEntity_ReferenceNeedsTurnEntry() {
	session := s.newSession("A")

	_, err := s.engine.UpdateEntity(session, "A", &engine.EntityPatch{ArmorClass: int32Ptr(12)})

	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *EngineTestSuite) TestAttack_HitAppliesDamage() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Ogre", MaxHP: 59, ArmorClass: 18})
	s.roller.SetRolls(15, 6, 4)

	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: "A",
		TargetUID:   m.ID,
		Attack:      dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: 5},
		Damage:      dice.Spec{Dice: []dice.Die{dice.D8, dice.D6}, Modifier: 3},
	})
	s.Require().NoError(err)

	s.Equal(int32(20), result.AttackRoll.Total)
	s.Equal(int32(18), result.ArmorClass)
	s.True(result.Hit)
	s.Equal(int32(13), result.DamageApplied)
	s.Require().NotNil(result.TargetHP)
	s.Equal(int32(46), *result.TargetHP)
	s.Equal(int32(46), session.Monsters[0].HP)
}

func (s *EngineTestSuite) TestAttack_MissRollsNoDamage() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Ogre", MaxHP: 59, ArmorClass: 18})
	s.roller.SetRolls(12)

	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: "A",
		TargetUID:   m.ID,
		Attack:      dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: 5},
		Damage:      dice.Spec{Dice: []dice.Die{dice.D8}},
	})
	s.Require().NoError(err)

	s.False(result.Hit)
	s.Nil(result.DamageRoll)
	s.Equal(int32(59), session.Monsters[0].HP)
	s.Equal(0, s.roller.Remaining())
}

func (s *EngineTestSuite) TestAttack_DamageClampsAtZero() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, ArmorClass: 10})
	s.roller.SetRolls(20, 12)

	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: "A",
		TargetUID:   m.ID,
		Damage:      dice.Spec{Dice: []dice.Die{dice.D12}},
	})
	s.Require().NoError(err)

	s.Equal(int32(0), *result.TargetHP)
	s.True(result.Defeated)
	s.False(result.RemovedFromTurnOrder)
	s.Contains(s.queue(session), m.ID)
}

func (s *EngineTestSuite) TestAttack_RemoveFromTurnOrderPolicy() {
	s.engine = s.newEngine(engine.DefeatPolicyRemoveFromTurnOrder)
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, ArmorClass: 10})
	s.roller.SetRolls(20, 12)

	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: "A",
		TargetUID:   m.ID,
		Damage:      dice.Spec{Dice: []dice.Die{dice.D12}},
	})
	s.Require().NoError(err)

	s.True(result.Defeated)
	s.True(result.RemovedFromTurnOrder)
	s.Equal([]string{"A"}, s.queue(session))
	s.Len(session.Monsters, 1)
}

func (s *EngineTestSuite) TestAttack_RemoveFromTurnOrderKeepsLastEntry() {
	s.engine = s.newEngine(engine.DefeatPolicyRemoveFromTurnOrder)
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, ArmorClass: 10})
	_, err := s.engine.RemoveEntity(session, "A")
	s.Require().NoError(err)
	s.Require().Equal([]string{m.ID}, s.queue(session))
	s.roller.SetRolls(20, 12)

	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: m.ID,
		TargetUID:   m.ID,
		Damage:      dice.Spec{Dice: []dice.Die{dice.D12}},
	})
	s.Require().NoError(err)

	s.True(result.Defeated)
	s.False(result.RemovedFromTurnOrder)
	s.Equal([]string{m.ID}, s.queue(session))
	active, err := s.engine.CurrentTurn(session)
	s.Require().NoError(err)
	s.Equal(m.ID, active.EntityUID)
}

func (s *EngineTestSuite) TestAttack_NegativeDamageDoesNotHeal() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, HP: 3, ArmorClass: 10})
	s.roller.SetRolls(20, 1)

	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: "A",
		TargetUID:   m.ID,
		Damage:      dice.Spec{Dice: []dice.Die{dice.D4}, Modifier: -3},
	})
	s.Require().NoError(err)

	s.Equal(int32(0), result.DamageApplied)
	s.Equal(int32(3), *result.TargetHP)
}

func (s *EngineTestSuite) TestAttack_ReferenceTarget() {
	session := s.startedSession("A", "B")
	_, err := s.engine.UpdateEntity(session, "B", &engine.EntityPatch{ArmorClass: int32Ptr(14), MaxHP: int32Ptr(10)})
	s.Require().NoError(err)
	s.roller.SetRolls(14, 4)

	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: "A",
		TargetUID:   "B",
		Damage:      dice.Spec{Dice: []dice.Die{dice.D6}},
	})
	s.Require().NoError(err)

	s.True(result.Hit)
	s.Equal(int32(6), *result.TargetHP)
	s.Equal(int32(6), *session.EntityTurn[1].HP)
}

func (s *EngineTestSuite) TestAttack_ReferenceTargetNeedsArmorClass() {
	session := s.startedSession("A", "B")

	_, err := s.engine.Attack(session, &engine.AttackInput{AttackerUID: "A", TargetUID: "B"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	s.roller.SetRolls(9)
	result, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID:      "A",
		TargetUID:        "B",
		TargetArmorClass: int32Ptr(9),
	})
	s.Require().NoError(err)
	s.True(result.Hit)
	s.Nil(result.TargetHP)
}

func (s *EngineTestSuite) TestAttack_MissingParticipants() {
	session := s.startedSession("A")

	_, err := s.engine.Attack(session, &engine.AttackInput{AttackerUID: "ghost", TargetUID: "A"})
	s.True(errors.IsKind(err, errors.KindAttackerNotInSession))

	_, err = s.engine.Attack(session, &engine.AttackInput{AttackerUID: "A", TargetUID: "ghost"})
	s.True(errors.IsKind(err, errors.KindTargetNotFound))
}

func (s *EngineTestSuite) TestAttack_InvalidDiceRollsNothing() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, ArmorClass: 10})
	s.roller.SetRolls(20)

	_, err := s.engine.Attack(session, &engine.AttackInput{
		AttackerUID: "A",
		TargetUID:   m.ID,
		Damage:      dice.Spec{Dice: []dice.Die{"d7"}},
	})

	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindInvalidDiceSpec))
	s.Equal(1, s.roller.Remaining())
	s.Equal(int32(7), session.Monsters[0].HP)
}

func (s *EngineTestSuite) TestAttack_NotGatedOnTurn() {
	session := s.startedSession("A", "B")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7, ArmorClass: 25})
	s.roller.SetRolls(3)

	result, err := s.engine.Attack(session, &engine.AttackInput{AttackerUID: m.ID, TargetUID: m.ID})
	s.Require().NoError(err)
	s.False(result.Hit)
}

func (s *EngineTestSuite) TestSavingThrow() {
	session := s.startedSession("A")

	testCases := []struct {
		name    string
		roll    int
		dc      int32
		success bool
	}{
		{name: "meets dc", roll: 13, dc: 15, success: true},
		{name: "below dc", roll: 12, dc: 15, success: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.SetRolls(tc.roll)

			result, err := s.engine.SavingThrow(session, &engine.SavingThrowInput{
				EntityUID:       "A",
				DifficultyClass: tc.dc,
				Roll:            dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: 2},
			})
			s.Require().NoError(err)
			s.Equal(tc.success, result.Success)
		})
	}

	_, err := s.engine.SavingThrow(session, &engine.SavingThrowInput{EntityUID: "ghost", DifficultyClass: 10})
	s.True(errors.IsKind(err, errors.KindEntityNotInSession))
}

func (s *EngineTestSuite) TestAddEffect() {
	session := s.startedSession("A")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7})

	poisoned := entities.Effect{Name: "poisoned", Description: "disadvantage on attacks", Duration: int32Ptr(3)}
	s.Require().NoError(s.engine.AddEffect(session, m.ID, poisoned))
	s.Require().NoError(s.engine.AddEffect(session, m.ID, poisoned))

	s.Len(session.Monsters[0].Effects, 2)
	s.Equal(int32(3), *session.Monsters[0].Effects[1].Duration)

	err := s.engine.AddEffect(session, "A", poisoned)
	s.True(errors.IsKind(err, errors.KindTargetNotFound))

	err = s.engine.AddEffect(session, m.ID, entities.Effect{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestSetReaction() {
	session := s.startedSession("A", "B")
	m := s.addMonster(session, &entities.Monster{Name: "Goblin", MaxHP: 7})

	s.Require().NoError(s.engine.SetReaction(session, m.ID, true))
	s.True(session.Monsters[0].IsReactionActivable)
	s.Equal([]string{"A", "B", m.ID}, s.queue(session))

	s.Require().NoError(s.engine.SetReaction(session, m.ID, false))
	s.False(session.Monsters[0].IsReactionActivable)

	err := s.engine.SetReaction(session, "B", true)
	s.True(errors.IsKind(err, errors.KindTargetNotFound))
}

func (s *EngineTestSuite) TestCombatRequiresPlay() {
	session := s.newSession("A")

	_, err := s.engine.Attack(session, &engine.AttackInput{AttackerUID: "A", TargetUID: "A"})
	s.True(errors.IsKind(err, errors.KindInvalidStateTransition))

	_, err = s.engine.SavingThrow(session, &engine.SavingThrowInput{EntityUID: "A"})
	s.True(errors.IsKind(err, errors.KindInvalidStateTransition))
}

func (s *EngineTestSuite) TestRollDice() {
	s.roller.SetRolls(4, 2)

	result, err := s.engine.RollDice(dice.Spec{Dice: []dice.Die{dice.D6, dice.D4}, Modifier: -1})
	s.Require().NoError(err)
	s.Equal(int32(5), result.Total)

	_, err = s.engine.RollDice(dice.Spec{})
	s.True(errors.IsKind(err, errors.KindInvalidDiceSpec))
}
