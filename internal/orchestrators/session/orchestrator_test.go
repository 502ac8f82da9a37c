package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-session-api/internal/clients/directory"
	"github.com/KirkDiggler/rpg-session-api/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-session-api/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	mockdice "github.com/KirkDiggler/rpg-session-api/internal/dice/mock"
	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/history"
	historymock "github.com/KirkDiggler/rpg-session-api/internal/repositories/history/mock"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions"
	sessionsmock "github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions/mock"
	"github.com/KirkDiggler/rpg-session-api/internal/testutils"
	"github.com/KirkDiggler/rpg-session-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	roller    *mockdice.ScriptedRoller
	clock     *clock.Fixed
	repo      *sessions.InMemoryRepository
	history   *history.InMemoryRepository
	directory *directory.Static
	templates *externalmock.MockClient
	bus       events.EventBus
	published []string

	orchestrator session.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.roller = mockdice.NewScriptedRoller()
	s.clock = clock.NewFixed(time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC))
	s.repo = sessions.NewInMemory(s.clock)
	s.history = history.NewInMemory()
	s.directory = directory.NewStatic(false)
	s.templates = externalmock.NewMockClient(s.ctrl)
	s.bus = events.NewBus()
	s.published = nil

	s.Require().NoError(s.directory.Register(entities.EntityTypeCharacter, "A", "B", "C", testutils.TestCharacterUID))
	s.Require().NoError(s.directory.Register(entities.EntityTypeNPC, testutils.TestNPCUID))

	for _, eventType := range []string{
		entities.EventSessionCreated,
		entities.EventSessionStatusChanged,
		entities.EventSessionDeleted,
		entities.EventTurnEnded,
		entities.EventTurnPostponed,
		entities.EventEntityAdded,
		entities.EventEntityRemoved,
		entities.EventEntityUpdated,
		entities.EventEntityDefeated,
		entities.EventAttackResolved,
		entities.EventSavingThrowRolled,
		entities.EventEffectApplied,
		entities.EventReactionChanged,
		entities.EventDiceRolled,
	} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.published = append(s.published, e.Type())
			return nil
		})
	}

	s.orchestrator = s.newOrchestrator(s.repo, s.history, engine.DefeatPolicyKeep)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(repo sessions.Repository, hist history.Repository, policy engine.DefeatPolicy) session.Service {
	e, err := engine.New(&engine.Config{
		Roller:             s.roller,
		SessionIDGenerator: idgen.NewSequential("session"),
		MonsterIDGenerator: idgen.NewSequential("monster"),
		DefeatPolicy:       policy,
	})
	s.Require().NoError(err)

	o, err := session.NewOrchestrator(&session.Config{
		Repository:       repo,
		History:          hist,
		Directory:        s.directory,
		Engine:           e,
		MonsterTemplates: s.templates,
		EventBus:         s.bus,
		Clock:            s.clock,
	})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) create(characters ...string) *entities.Session {
	out, err := s.orchestrator.CreateSession(s.ctx, &session.CreateSessionInput{
		Name:          "Goblin Ambush",
		MasterUID:     testutils.TestMasterUID,
		MapSize:       entities.MapSize{Width: 30, Height: 30},
		CharacterUIDs: characters,
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *OrchestratorTestSuite) started(characters ...string) *entities.Session {
	created := s.create(characters...)
	out, err := s.orchestrator.StartSession(s.ctx, &session.LifecycleInput{SessionID: created.ID})
	s.Require().NoError(err)
	return out.Session
}

func (s *OrchestratorTestSuite) addGoblin(sessionID string) *entities.Monster {
	out, err := s.orchestrator.AddEntity(s.ctx, &session.AddEntityInput{
		SessionID: sessionID,
		Type:      entities.EntityTypeMonster,
		Monster:   testutils.CreateTestGoblin(),
	})
	s.Require().NoError(err)
	return out.Entity.Combatant.Monster
}

func (s *OrchestratorTestSuite) historyOf(sessionID string) []entities.HistoryMessage {
	out, err := s.orchestrator.GetHistory(s.ctx, &session.GetHistoryInput{SessionID: sessionID})
	s.Require().NoError(err)
	return out.Messages
}

func queueOf(session *entities.Session) []string {
	out := make([]string, len(session.EntityTurn))
	for i, entry := range session.EntityTurn {
		out[i] = entry.EntityUID
	}
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_RequiresDependencies() {
	_, err := session.NewOrchestrator(&session.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Repository")

	_, err = session.NewOrchestrator(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestCreateSession() {
	created := s.create("A", "B", "A")

	s.Equal("session_1", created.ID)
	s.Equal(entities.SessionStatusCreated, created.Status)
	s.Equal([]string{"A", "B"}, created.CharacterUIDs)
	s.Equal(int64(1), created.Version)

	got, err := s.orchestrator.GetSession(s.ctx, &session.GetSessionInput{SessionID: created.ID, IncludeHistory: true})
	s.Require().NoError(err)
	s.Equal(created.ID, got.Session.ID)
	s.Require().Len(got.History, 1)
	s.Equal(testutils.TestMasterUID, got.History[0].Author)
	s.Equal(entities.ActionTypeSession, got.History[0].ActionType)
	s.Equal(s.clock.Now(), got.History[0].Timestamp)

	s.Equal([]string{entities.EventSessionCreated}, s.published)
}

func (s *OrchestratorTestSuite) TestCreateSession_UnknownCharacter() {
	_, err := s.orchestrator.CreateSession(s.ctx, &session.CreateSessionInput{
		Name:          "Goblin Ambush",
		MasterUID:     testutils.TestMasterUID,
		MapSize:       entities.MapSize{Width: 30, Height: 30},
		CharacterUIDs: []string{"A", "ghost"},
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	list, err := s.orchestrator.ListSessions(s.ctx, &session.ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(list.Sessions)
}

func (s *OrchestratorTestSuite) TestCreateSession_MapSizeOutOfRange() {
	_, err := s.orchestrator.CreateSession(s.ctx, &session.CreateSessionInput{
		Name:      "Tiny",
		MasterUID: testutils.TestMasterUID,
		MapSize:   entities.MapSize{Width: 5, Height: 50},
	})

	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindMapSizeOutOfRange))
}

func (s *OrchestratorTestSuite) TestCreateSession_MonsterFromTemplate() {
	mocks.ExpectTemplateLookup(s.ctx, s.templates, "goblin", &external.MonsterTemplate{
		Key:        "goblin",
		Name:       "Goblin",
		ArmorClass: 15,
		HitPoints:  7,
		Actions:    []string{"Scimitar", "Shortbow"},
	}, nil)

	out, err := s.orchestrator.CreateSession(s.ctx, &session.CreateSessionInput{
		Name:      "Goblin Ambush",
		MasterUID: testutils.TestMasterUID,
		MapSize:   entities.MapSize{Width: 30, Height: 30},
		Monsters: []*entities.Monster{
			{TemplateKey: "goblin", Name: "Goblin Boss", Speed: 30},
		},
	})
	s.Require().NoError(err)

	s.Require().Len(out.Session.Monsters, 1)
	m := out.Session.Monsters[0]
	s.Equal("monster_1", m.ID)
	s.Equal("Goblin Boss", m.Name)
	s.Equal(int32(7), m.HP)
	s.Equal(int32(7), m.MaxHP)
	s.Equal(int32(15), m.ArmorClass)
	s.Equal(int32(30), m.Speed)
	s.Equal([]string{"Scimitar", "Shortbow"}, m.Weapons)
	s.Equal(testutils.TestMasterUID, m.AuthorUID)
}

func (s *OrchestratorTestSuite) TestCreateSession_TemplateLookupFails() {
	mocks.ExpectTemplateLookup(s.ctx, s.templates, "tarrasque", nil, nil)

	_, err := s.orchestrator.CreateSession(s.ctx, &session.CreateSessionInput{
		Name:      "Doom",
		MasterUID: testutils.TestMasterUID,
		MapSize:   entities.MapSize{Width: 30, Height: 30},
		Monsters:  []*entities.Monster{{TemplateKey: "tarrasque"}},
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestLifecycle() {
	created := s.create("A", "B")

	started, err := s.orchestrator.StartSession(s.ctx, &session.LifecycleInput{SessionID: created.ID})
	s.Require().NoError(err)
	s.Equal(entities.SessionStatusOngoing, started.Session.Status)
	s.Equal([]string{"A", "B"}, queueOf(started.Session))

	paused, err := s.orchestrator.PauseSession(s.ctx, &session.LifecycleInput{SessionID: created.ID})
	s.Require().NoError(err)
	s.Equal(entities.SessionStatusPaused, paused.Session.Status)

	_, err = s.orchestrator.PauseSession(s.ctx, &session.LifecycleInput{SessionID: created.ID})
	s.True(errors.IsKind(err, errors.KindInvalidStateTransition))

	resumed, err := s.orchestrator.ContinueSession(s.ctx, &session.LifecycleInput{SessionID: created.ID})
	s.Require().NoError(err)
	s.Equal(entities.SessionStatusOngoing, resumed.Session.Status)

	stopped, err := s.orchestrator.StopSession(s.ctx, &session.LifecycleInput{SessionID: created.ID, Author: "dm_other"})
	s.Require().NoError(err)
	s.Equal(entities.SessionStatusStopped, stopped.Session.Status)
	s.Empty(stopped.Session.EntityTurn)

	msgs := s.historyOf(created.ID)
	s.Require().Len(msgs, 5)
	s.Equal("dm_other", msgs[4].Author)
	s.Equal(testutils.TestMasterUID, msgs[1].Author)
}

func (s *OrchestratorTestSuite) TestStartSession_EmptyRoster() {
	created := s.create()

	_, err := s.orchestrator.StartSession(s.ctx, &session.LifecycleInput{SessionID: created.ID})

	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindEmptyTurnQueue))
}

func (s *OrchestratorTestSuite) TestStartSession_NotFound() {
	_, err := s.orchestrator.StartSession(s.ctx, &session.LifecycleInput{SessionID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.StartSession(s.ctx, &session.LifecycleInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteSession_DropsHistory() {
	started := s.started("A")

	_, err := s.orchestrator.DeleteSession(s.ctx, &session.DeleteSessionInput{SessionID: started.ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetSession(s.ctx, &session.GetSessionInput{SessionID: started.ID})
	s.True(errors.IsNotFound(err))

	out, err := s.history.List(s.ctx, history.ListInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Empty(out.Messages)
	s.Contains(s.published, entities.EventSessionDeleted)
}

func (s *OrchestratorTestSuite) TestGetSession_IncludesHistory() {
	started := s.started("A")

	plain, err := s.orchestrator.GetSession(s.ctx, &session.GetSessionInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Equal(started.ID, plain.Session.ID)
	s.Nil(plain.History)

	withHistory, err := s.orchestrator.GetSession(s.ctx, &session.GetSessionInput{
		SessionID:      started.ID,
		IncludeHistory: true,
	})
	s.Require().NoError(err)
	s.Len(withHistory.History, 2)
}

func (s *OrchestratorTestSuite) TestGetTurn() {
	created := s.create("A", "B")

	_, err := s.orchestrator.GetTurn(s.ctx, &session.GetTurnInput{SessionID: created.ID})
	s.True(errors.IsKind(err, errors.KindInvalidStateTransition))

	_, err = s.orchestrator.StartSession(s.ctx, &session.LifecycleInput{SessionID: created.ID})
	s.Require().NoError(err)

	out, err := s.orchestrator.GetTurn(s.ctx, &session.GetTurnInput{SessionID: created.ID})
	s.Require().NoError(err)
	s.Equal("A", out.Active.EntityUID)
	s.Len(out.Queue, 2)
}

func (s *OrchestratorTestSuite) TestGetEntity() {
	started := s.started("A")
	goblin := s.addGoblin(started.ID)

	out, err := s.orchestrator.GetEntity(s.ctx, &session.GetEntityInput{SessionID: started.ID, EntityUID: goblin.ID})
	s.Require().NoError(err)
	s.Equal(entities.EntityTypeMonster, out.Entity.Combatant.Type)
	s.Equal(goblin.Name, out.Entity.Combatant.Monster.Name)
	s.Require().NotNil(out.Entity.TurnEntry)
	s.Equal(goblin.ID, out.Entity.TurnEntry.EntityUID)

	_, err = s.orchestrator.GetEntity(s.ctx, &session.GetEntityInput{SessionID: started.ID, EntityUID: "nobody"})
	s.True(errors.IsKind(err, errors.KindEntityNotInSession))
}

func (s *OrchestratorTestSuite) TestEndTurnAndPostpone() {
	started := s.started("A", "B", "C")

	postponed, err := s.orchestrator.PostponeTurn(s.ctx, &session.PostponeTurnInput{
		SessionID: started.ID,
		EntityUID: "A",
		Position:  1,
	})
	s.Require().NoError(err)
	s.Equal([]string{"B", "A", "C"}, queueOf(postponed.Session))
	s.Equal("B", postponed.Active.EntityUID)

	ended, err := s.orchestrator.EndTurn(s.ctx, &session.EndTurnInput{SessionID: started.ID, EntityUID: "B"})
	s.Require().NoError(err)
	s.Equal([]string{"A", "C", "B"}, queueOf(ended.Session))
	s.Equal("A", ended.Active.EntityUID)

	turn, err := s.orchestrator.GetTurn(s.ctx, &session.GetTurnInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Equal("A", turn.Active.EntityUID)
	s.Len(turn.Queue, 3)

	s.Contains(s.published, entities.EventTurnPostponed)
	s.Contains(s.published, entities.EventTurnEnded)
}

func (s *OrchestratorTestSuite) TestEndTurn_NotActiveTurnLeavesQueue() {
	started := s.started("A", "B", "C")

	_, err := s.orchestrator.EndTurn(s.ctx, &session.EndTurnInput{SessionID: started.ID, EntityUID: "C"})
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindNotActiveTurn))

	got, err := s.orchestrator.GetSession(s.ctx, &session.GetSessionInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "C"}, queueOf(got.Session))
	s.Equal(started.Version, got.Session.Version)
}

func (s *OrchestratorTestSuite) TestAddEntity_LiveSessionIsQueued() {
	started := s.started("A")

	out, err := s.orchestrator.AddEntity(s.ctx, &session.AddEntityInput{
		SessionID: started.ID,
		Type:      entities.EntityTypeNPC,
		UID:       testutils.TestNPCUID,
	})
	s.Require().NoError(err)
	s.Equal(entities.EntityTypeNPC, out.Entity.Combatant.Type)
	s.Require().NotNil(out.Entity.TurnEntry)

	goblin := s.addGoblin(started.ID)
	s.Equal("monster_1", goblin.ID)

	turn, err := s.orchestrator.GetTurn(s.ctx, &session.GetTurnInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Len(turn.Queue, 3)
	s.Equal(goblin.ID, turn.Queue[2].EntityUID)
}

func (s *OrchestratorTestSuite) TestAddEntity_Errors() {
	created := s.create("A")

	_, err := s.orchestrator.AddEntity(s.ctx, &session.AddEntityInput{
		SessionID: created.ID, Type: entities.EntityTypeCharacter, UID: "ghost",
	})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.AddEntity(s.ctx, &session.AddEntityInput{
		SessionID: created.ID, Type: entities.EntityTypeCharacter, UID: "A",
	})
	s.True(errors.IsKind(err, errors.KindDuplicateEntity))

	_, err = s.orchestrator.AddEntity(s.ctx, &session.AddEntityInput{
		SessionID: created.ID, Type: "dragon", UID: "x",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddEntity_TemplatesNotConfigured() {
	e, err := engine.New(&engine.Config{
		Roller:             s.roller,
		SessionIDGenerator: idgen.NewSequential("session"),
		MonsterIDGenerator: idgen.NewSequential("monster"),
	})
	s.Require().NoError(err)
	o, err := session.NewOrchestrator(&session.Config{
		Repository: s.repo,
		History:    s.history,
		Directory:  s.directory,
		Engine:     e,
	})
	s.Require().NoError(err)

	created := s.create("A")
	_, err = o.AddEntity(s.ctx, &session.AddEntityInput{
		SessionID: created.ID,
		Type:      entities.EntityTypeMonster,
		Monster:   &entities.Monster{TemplateKey: "goblin"},
	})

	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRemoveEntity_ShrinksQueue() {
	started := s.started("A", "B", "C")

	out, err := s.orchestrator.RemoveEntity(s.ctx, &session.RemoveEntityInput{SessionID: started.ID, EntityUID: "B"})
	s.Require().NoError(err)
	s.Equal("B", out.Removed.UID)

	turn, err := s.orchestrator.GetTurn(s.ctx, &session.GetTurnInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Len(turn.Queue, 2)

	_, err = s.orchestrator.GetEntity(s.ctx, &session.GetEntityInput{SessionID: started.ID, EntityUID: "B"})
	s.True(errors.IsKind(err, errors.KindEntityNotInSession))
}

func (s *OrchestratorTestSuite) TestAttack_HitAppliesDamage() {
	started := s.started("A")
	goblin := s.addGoblin(started.ID)

	// d20 rolls 12, +5 = 17 vs AC 15; d6 rolls 4, +2 = 6 damage
	s.roller.SetRolls(12, 4)
	out, err := s.orchestrator.Attack(s.ctx, &session.AttackInput{
		SessionID:   started.ID,
		AttackerUID: "A",
		TargetUID:   goblin.ID,
		Attack:      dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: 5},
		Damage:      dice.Spec{Dice: []dice.Die{dice.D6}, Modifier: 2},
	})
	s.Require().NoError(err)
	s.True(out.Result.Hit)
	s.Equal(int32(6), out.Result.DamageApplied)
	s.False(out.Result.Defeated)

	entity, err := s.orchestrator.GetEntity(s.ctx, &session.GetEntityInput{SessionID: started.ID, EntityUID: goblin.ID})
	s.Require().NoError(err)
	s.Equal(int32(1), entity.Entity.Combatant.Monster.HP)

	msgs := s.historyOf(started.ID)
	last := msgs[len(msgs)-1]
	s.Equal(entities.ActionTypeAttack, last.ActionType)
	s.Contains(last.Msg, "hit for 6 damage")
}

func (s *OrchestratorTestSuite) TestAttack_DefeatRemovesFromTurnOrder() {
	s.orchestrator = s.newOrchestrator(s.repo, s.history, engine.DefeatPolicyRemoveFromTurnOrder)
	started := s.started("A")
	goblin := s.addGoblin(started.ID)

	s.roller.SetRolls(20, 6, 6)
	out, err := s.orchestrator.Attack(s.ctx, &session.AttackInput{
		SessionID:   started.ID,
		AttackerUID: "A",
		TargetUID:   goblin.ID,
		Damage:      dice.Spec{Dice: []dice.Die{dice.D6, dice.D6}},
	})
	s.Require().NoError(err)
	s.True(out.Result.Defeated)
	s.True(out.Result.RemovedFromTurnOrder)
	s.Equal(int32(12), out.Result.DamageApplied)
	s.Equal(int32(0), *out.Result.TargetHP)

	turn, err := s.orchestrator.GetTurn(s.ctx, &session.GetTurnInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Require().Len(turn.Queue, 1)
	s.Equal("A", turn.Queue[0].EntityUID)

	s.Contains(s.published, entities.EventEntityDefeated)
}

func (s *OrchestratorTestSuite) TestAttack_RetriesOnWriteConflict() {
	repo := sessionsmock.NewMockRepository(s.ctrl)
	stored := s.started("A")
	stored.Monsters = append(stored.Monsters, &entities.Monster{
		ID: "monster_9", Name: "Ogre", MaxHP: 59, HP: 59, ArmorClass: 11,
	})

	gomock.InOrder(
		mocks.ExpectSessionGet(s.ctx, repo, stored),
		mocks.ExpectSessionSaveConflict(s.ctx, repo, stored),
		mocks.ExpectSessionGet(s.ctx, repo, stored),
		mocks.ExpectSessionSave(s.ctx, repo),
	)

	o := s.newOrchestrator(repo, s.history, engine.DefeatPolicyKeep)

	// first attempt misses, the retry rolls again and hits
	s.roller.SetRolls(2, 18)
	out, err := o.Attack(s.ctx, &session.AttackInput{
		SessionID:   stored.ID,
		AttackerUID: "A",
		TargetUID:   "monster_9",
	})
	s.Require().NoError(err)
	s.True(out.Result.Hit)
	s.Equal(0, s.roller.Remaining())
}

func (s *OrchestratorTestSuite) TestAttack_ConflictSurfacesAfterRetries() {
	repo := sessionsmock.NewMockRepository(s.ctrl)
	stored := s.started("A")

	mocks.ExpectSessionGet(s.ctx, repo, stored).Times(session.DefaultMaxRetries + 1)
	mocks.ExpectSessionSaveConflict(s.ctx, repo, stored).Times(session.DefaultMaxRetries + 1)

	o := s.newOrchestrator(repo, s.history, engine.DefeatPolicyKeep)

	_, err := o.EndTurn(s.ctx, &session.EndTurnInput{SessionID: stored.ID, EntityUID: "A"})
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindWriteConflict))
}

func (s *OrchestratorTestSuite) TestHistoryFailureDoesNotFailOperation() {
	hist := historymock.NewMockRepository(s.ctrl)
	mocks.ExpectHistoryUnavailable(s.ctx, hist)

	o := s.newOrchestrator(s.repo, hist, engine.DefeatPolicyKeep)

	out, err := o.CreateSession(s.ctx, &session.CreateSessionInput{
		Name:          "Goblin Ambush",
		MasterUID:     testutils.TestMasterUID,
		MapSize:       entities.MapSize{Width: 30, Height: 30},
		CharacterUIDs: []string{"A"},
	})
	s.Require().NoError(err)

	started, err := o.StartSession(s.ctx, &session.LifecycleInput{SessionID: out.Session.ID})
	s.Require().NoError(err)
	s.Equal(entities.SessionStatusOngoing, started.Session.Status)
}

func (s *OrchestratorTestSuite) TestSavingThrow() {
	started := s.started("A")
	before := started.Version

	s.roller.SetRolls(11)
	out, err := s.orchestrator.SavingThrow(s.ctx, &session.SavingThrowInput{
		SessionID:       started.ID,
		EntityUID:       "A",
		DifficultyClass: 13,
		Roll:            dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: 2},
	})
	s.Require().NoError(err)
	s.True(out.Result.Success)

	got, err := s.orchestrator.GetSession(s.ctx, &session.GetSessionInput{SessionID: started.ID})
	s.Require().NoError(err)
	s.Equal(before, got.Session.Version)

	_, err = s.orchestrator.SavingThrow(s.ctx, &session.SavingThrowInput{
		SessionID: started.ID, EntityUID: "ghost", DifficultyClass: 10,
	})
	s.True(errors.IsKind(err, errors.KindEntityNotInSession))
}

func (s *OrchestratorTestSuite) TestEffectsAndReactions() {
	started := s.started("A")
	goblin := s.addGoblin(started.ID)
	rounds := int32(2)

	withEffect, err := s.orchestrator.AddEffect(s.ctx, &session.AddEffectInput{
		SessionID: started.ID,
		EntityUID: goblin.ID,
		Effect:    entities.Effect{Name: "poisoned", Duration: &rounds},
	})
	s.Require().NoError(err)
	s.Require().Len(withEffect.Entity.Combatant.Monster.Effects, 1)
	s.Equal("poisoned", withEffect.Entity.Combatant.Monster.Effects[0].Name)

	reaction, err := s.orchestrator.SetReaction(s.ctx, &session.SetReactionInput{
		SessionID: started.ID,
		EntityUID: goblin.ID,
		Enabled:   true,
	})
	s.Require().NoError(err)
	s.True(reaction.Entity.Combatant.Monster.IsReactionActivable)

	_, err = s.orchestrator.AddEffect(s.ctx, &session.AddEffectInput{
		SessionID: started.ID,
		EntityUID: "A",
		Effect:    entities.Effect{Name: "blessed"},
	})
	s.True(errors.IsKind(err, errors.KindTargetNotFound))
}

func (s *OrchestratorTestSuite) TestUpdateEntity_ReferenceTracking() {
	started := s.started("A")
	hp := int32(12)
	maxHP := int32(20)

	out, err := s.orchestrator.UpdateEntity(s.ctx, &session.UpdateEntityInput{
		SessionID: started.ID,
		EntityUID: "A",
		Patch:     &engine.EntityPatch{HP: &hp, MaxHP: &maxHP},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Result.Entity.TurnEntry)
	s.Equal(int32(12), *out.Result.Entity.TurnEntry.HP)

	_, err = s.orchestrator.UpdateEntity(s.ctx, &session.UpdateEntityInput{SessionID: started.ID, EntityUID: "A"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollDice() {
	s.roller.SetRolls(3, 5)
	standalone, err := s.orchestrator.RollDice(s.ctx, &session.RollDiceInput{
		Spec: dice.Spec{Dice: []dice.Die{dice.D6, dice.D6}, Modifier: 1},
	})
	s.Require().NoError(err)
	s.Equal(int32(9), standalone.Result.Total)
	s.NotContains(s.published, entities.EventDiceRolled)

	created := s.create("A")
	s.roller.SetRolls(20)
	logged, err := s.orchestrator.RollDice(s.ctx, &session.RollDiceInput{
		SessionID: created.ID,
		Spec:      dice.Spec{Dice: []dice.Die{dice.D20}},
	})
	s.Require().NoError(err)
	s.Equal(int32(20), logged.Result.Total)

	msgs := s.historyOf(created.ID)
	s.Equal(entities.ActionTypeDice, msgs[len(msgs)-1].ActionType)
	s.Contains(s.published, entities.EventDiceRolled)

	_, err = s.orchestrator.RollDice(s.ctx, &session.RollDiceInput{Spec: dice.Spec{}})
	s.True(errors.IsKind(err, errors.KindInvalidDiceSpec))
}

func (s *OrchestratorTestSuite) TestAppendAndPageHistory() {
	created := s.create("A")

	appended, err := s.orchestrator.AppendHistory(s.ctx, &session.AppendHistoryInput{
		SessionID: created.ID,
		Author:    testutils.TestCharacterUID,
		Msg:       "Thorin checks the door for traps",
	})
	s.Require().NoError(err)
	s.Equal(entities.ActionTypeCustom, appended.Message.ActionType)

	page, err := s.orchestrator.GetHistory(s.ctx, &session.GetHistoryInput{SessionID: created.ID, Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(page.Messages, 1)
	s.Equal("Thorin checks the door for traps", page.Messages[0].Msg)

	_, err = s.orchestrator.AppendHistory(s.ctx, &session.AppendHistoryInput{SessionID: created.ID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AppendHistory(s.ctx, &session.AppendHistoryInput{SessionID: "missing", Msg: "hello"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListSessions_Filters() {
	s.started("A")
	s.create("B")

	ongoing, err := s.orchestrator.ListSessions(s.ctx, &session.ListSessionsInput{Status: entities.SessionStatusOngoing})
	s.Require().NoError(err)
	s.Len(ongoing.Sessions, 1)

	all, err := s.orchestrator.ListSessions(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all.Sessions, 2)
}
