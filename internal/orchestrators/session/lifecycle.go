package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/history"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions"
)

// CreateSession checks the referenced characters and NPCs, seeds monsters
// from their templates and stores the new session in the created state
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.requireKnown(ctx, entities.EntityTypeCharacter, input.CharacterUIDs...); err != nil {
		return nil, err
	}
	if err := o.requireKnown(ctx, entities.EntityTypeNPC, input.NPCUIDs...); err != nil {
		return nil, err
	}

	monsters := make([]*entities.Monster, 0, len(input.Monsters))
	for _, m := range input.Monsters {
		resolved, err := o.resolveMonster(ctx, m, input.MasterUID)
		if err != nil {
			return nil, err
		}
		monsters = append(monsters, resolved)
	}

	session, err := o.engine.NewSession(&engine.NewSessionInput{
		Name:          input.Name,
		MasterUID:     input.MasterUID,
		CampaignName:  input.CampaignName,
		MapSize:       input.MapSize,
		CharacterUIDs: input.CharacterUIDs,
		NPCUIDs:       input.NPCUIDs,
		Monsters:      monsters,
	})
	if err != nil {
		return nil, err
	}

	out, err := o.repo.Create(ctx, sessions.CreateInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	created := out.Session

	slog.Info("Session created",
		"session_id", created.ID,
		"master_uid", created.MasterUID,
		"characters", len(created.CharacterUIDs),
		"npcs", len(created.NPCUIDs),
		"monsters", len(created.Monsters),
	)

	o.record(ctx, created, created.MasterUID, entities.ActionTypeSession,
		"Session %q created by %s", created.Name, created.MasterUID)
	o.publish(ctx, entities.EventSessionCreated, created, nil, nil, nil)

	return &CreateSessionOutput{Session: created}, nil
}

// GetSession returns a session, optionally with its full history
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	out := &GetSessionOutput{Session: session}
	if input.IncludeHistory {
		listed, err := o.history.List(ctx, history.ListInput{SessionID: session.ID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to read session history")
		}
		out.History = listed.Messages
	}

	return out, nil
}

// ListSessions returns the stored sessions matching the filter
func (o *orchestrator) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		input = &ListSessionsInput{}
	}

	out, err := o.repo.List(ctx, sessions.ListInput{
		Status:    input.Status,
		MasterUID: input.MasterUID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return &ListSessionsOutput{Sessions: out.Sessions}, nil
}

// DeleteSession removes a session in any state together with its history
func (o *orchestrator) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := o.engine.Apply(session, engine.OperationDelete); err != nil {
		return nil, err
	}

	if _, err := o.repo.Delete(ctx, sessions.DeleteInput{ID: session.ID}); err != nil {
		return nil, err
	}

	if _, err := o.history.Delete(ctx, history.DeleteInput{SessionID: session.ID}); err != nil {
		slog.Warn("Failed to delete session history",
			"session_id", session.ID,
			"error", err,
		)
	}

	slog.Info("Session deleted",
		"session_id", session.ID,
		"author", authorOr(input.Author, session),
	)
	o.publish(ctx, entities.EventSessionDeleted, session, nil, nil, map[string]any{
		entities.EventKeyFromStatus: string(session.Status),
	})

	return &DeleteSessionOutput{}, nil
}

// StartSession moves a created session to ongoing and builds the turn queue
func (o *orchestrator) StartSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
	return o.transition(ctx, input, engine.OperationStart)
}

// PauseSession moves an ongoing session to paused
func (o *orchestrator) PauseSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
	return o.transition(ctx, input, engine.OperationPause)
}

// ContinueSession resumes a paused session
func (o *orchestrator) ContinueSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
	return o.transition(ctx, input, engine.OperationContinue)
}

// StopSession ends an ongoing or paused session
func (o *orchestrator) StopSession(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
	return o.transition(ctx, input, engine.OperationStop)
}

func (o *orchestrator) transition(ctx context.Context, input *LifecycleInput, op engine.Operation) (*LifecycleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var from entities.SessionStatus
	saved, err := o.mutate(ctx, input.SessionID, func(session *entities.Session) error {
		from = session.Status
		return o.engine.Apply(session, op)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Session status changed",
		"session_id", saved.ID,
		"operation", op,
		"from", from,
		"to", saved.Status,
	)

	o.record(ctx, saved, input.Author, entities.ActionTypeSession,
		"Session %s: %s -> %s", op, from, saved.Status)
	o.publish(ctx, entities.EventSessionStatusChanged, saved, nil, nil, map[string]any{
		entities.EventKeyOperation:  string(op),
		entities.EventKeyFromStatus: string(from),
		entities.EventKeyToStatus:   string(saved.Status),
	})

	return &LifecycleOutput{Session: saved}, nil
}

// requireKnown fails with NotFound for the first uid the directory does not know
func (o *orchestrator) requireKnown(ctx context.Context, kind entities.EntityType, uids ...string) error {
	seen := make(map[string]struct{}, len(uids))
	for _, uid := range uids {
		if uid == "" {
			return errors.InvalidArgumentf("%s uid is required", kind)
		}
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}

		exists, err := o.directory.Exists(ctx, kind, uid)
		if err != nil {
			return errors.Wrapf(err, "failed to look up %s %s", kind, uid)
		}
		if !exists {
			return errors.NotFoundf("%s %s not found", kind, uid).
				WithMeta("entity_uid", uid).
				WithMeta("entity_type", string(kind))
		}
	}
	return nil
}

// resolveMonster prefills a monster from its SRD template. Non-zero fields
// on the given monster win over the template.
func (o *orchestrator) resolveMonster(ctx context.Context, monster *entities.Monster, author string) (*entities.Monster, error) {
	if monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if monster.AuthorUID == "" {
		monster = monster.Clone()
		monster.AuthorUID = author
	}
	if monster.TemplateKey == "" {
		return monster, nil
	}
	if o.templates == nil {
		return nil, errors.FailedPreconditionf("monster templates are not configured, cannot use %q", monster.TemplateKey)
	}

	template, err := o.templates.GetMonsterTemplate(ctx, monster.TemplateKey)
	if err != nil {
		return nil, err
	}

	base := template.Monster(monster.AuthorUID)
	if monster.Name != "" {
		base.Name = monster.Name
	}
	if monster.MaxHP != 0 {
		base.MaxHP = monster.MaxHP
		if monster.HP == 0 {
			base.HP = monster.MaxHP
		}
	}
	if monster.HP != 0 {
		base.HP = monster.HP
	}
	if monster.ArmorClass != 0 {
		base.ArmorClass = monster.ArmorClass
	}
	if monster.Speed != 0 {
		base.Speed = monster.Speed
	}
	if len(monster.Enchantments) > 0 {
		base.Enchantments = append([]string(nil), monster.Enchantments...)
	}
	if len(monster.Weapons) > 0 {
		base.Weapons = append([]string(nil), monster.Weapons...)
	}
	if len(monster.Effects) > 0 {
		base.Effects = monster.Clone().Effects
	}
	base.IsReactionActivable = monster.IsReactionActivable

	return base, nil
}

func authorOr(author string, session *entities.Session) string {
	if author != "" {
		return author
	}
	return session.MasterUID
}
