// Package v1alpha1 serves the session orchestrator over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/KirkDiggler/rpg-session-api/internal/clients/external"
	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/orchestrators/session"
)

// HandlerConfig holds dependencies for the session handler
type HandlerConfig struct {
	SessionService session.Service

	// MonsterTemplates is optional; without it ListMonsterTemplates is
	// unavailable
	MonsterTemplates external.Client
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.SessionService == nil {
		return errors.InvalidArgument("session service is required")
	}
	return nil
}

// Handler implements SessionServiceServer
type Handler struct {
	sessionService   session.Service
	monsterTemplates external.Client
}

var _ SessionServiceServer = (*Handler)(nil)

// NewHandler creates a new session handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sessionService:   cfg.SessionService,
		monsterTemplates: cfg.MonsterTemplates,
	}, nil
}

func requireSessionID(id string) error {
	if id == "" {
		return errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	return nil
}

// CreateSession creates a session in the created state
func (h *Handler) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}
	if req.MasterUID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("master_uid is required"))
	}

	out, err := h.sessionService.CreateSession(ctx, &session.CreateSessionInput{
		Name:          req.Name,
		MasterUID:     req.MasterUID,
		CampaignName:  req.CampaignName,
		MapSize:       req.MapSize,
		CharacterUIDs: req.CharacterUIDs,
		NPCUIDs:       req.NPCUIDs,
		Monsters:      req.Monsters,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SessionResponse{Session: out.Session}, nil
}

// GetSession reads a session, optionally with its history
func (h *Handler) GetSession(ctx context.Context, req *GetSessionRequest) (*GetSessionResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.GetSession(ctx, &session.GetSessionInput{
		SessionID:      req.SessionID,
		IncludeHistory: req.IncludeHistory,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSessionResponse{Session: out.Session, History: out.History}, nil
}

// ListSessions lists sessions matching the filter
func (h *Handler) ListSessions(ctx context.Context, req *ListSessionsRequest) (*ListSessionsResponse, error) {
	out, err := h.sessionService.ListSessions(ctx, &session.ListSessionsInput{
		Status:    req.Status,
		MasterUID: req.MasterUID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListSessionsResponse{Sessions: out.Sessions}, nil
}

// DeleteSession removes a session and its history
func (h *Handler) DeleteSession(ctx context.Context, req *SessionRequest) (*DeleteSessionResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	if _, err := h.sessionService.DeleteSession(ctx, &session.DeleteSessionInput{
		SessionID: req.SessionID,
		Author:    req.Author,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteSessionResponse{}, nil
}

// StartSession moves a created session to ongoing
func (h *Handler) StartSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	return h.lifecycle(ctx, req, h.sessionService.StartSession)
}

// PauseSession moves an ongoing session to paused
func (h *Handler) PauseSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	return h.lifecycle(ctx, req, h.sessionService.PauseSession)
}

// ContinueSession resumes a paused session
func (h *Handler) ContinueSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	return h.lifecycle(ctx, req, h.sessionService.ContinueSession)
}

// StopSession ends a session
func (h *Handler) StopSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	return h.lifecycle(ctx, req, h.sessionService.StopSession)
}

func (h *Handler) lifecycle(
	ctx context.Context,
	req *SessionRequest,
	op func(context.Context, *session.LifecycleInput) (*session.LifecycleOutput, error),
) (*SessionResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := op(ctx, &session.LifecycleInput{SessionID: req.SessionID, Author: req.Author})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SessionResponse{Session: out.Session}, nil
}

// EndTurn rotates the active entry to the back of the queue
func (h *Handler) EndTurn(ctx context.Context, req *EndTurnRequest) (*TurnResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}
	if req.EntityUID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_uid is required"))
	}

	out, err := h.sessionService.EndTurn(ctx, &session.EndTurnInput{
		SessionID: req.SessionID,
		EntityUID: req.EntityUID,
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TurnResponse{Session: out.Session, Active: out.Active}, nil
}

// PostponeTurn moves the active entry back by Position places
func (h *Handler) PostponeTurn(ctx context.Context, req *PostponeTurnRequest) (*TurnResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}
	if req.EntityUID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_uid is required"))
	}

	out, err := h.sessionService.PostponeTurn(ctx, &session.PostponeTurnInput{
		SessionID: req.SessionID,
		EntityUID: req.EntityUID,
		Position:  req.Position,
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TurnResponse{Session: out.Session, Active: out.Active}, nil
}

// GetTurn reads the active entry and the queue
func (h *Handler) GetTurn(ctx context.Context, req *GetTurnRequest) (*GetTurnResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.GetTurn(ctx, &session.GetTurnInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetTurnResponse{Active: out.Active, Queue: out.Queue}, nil
}

// AddEntity adds a character, NPC or monster to the roster
func (h *Handler) AddEntity(ctx context.Context, req *AddEntityRequest) (*EntityResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.AddEntity(ctx, &session.AddEntityInput{
		SessionID: req.SessionID,
		Type:      req.Type,
		UID:       req.UID,
		Monster:   req.Monster,
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EntityResponse{Entity: toEntity(out.Entity)}, nil
}

// RemoveEntity drops an entity from the roster and the queue
func (h *Handler) RemoveEntity(ctx context.Context, req *EntityRequest) (*EntityResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.RemoveEntity(ctx, &session.RemoveEntityInput{
		SessionID: req.SessionID,
		EntityUID: req.EntityUID,
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EntityResponse{Entity: toEntity(&engine.EntityView{Combatant: out.Removed})}, nil
}

// GetEntity reads one roster member
func (h *Handler) GetEntity(ctx context.Context, req *EntityRequest) (*EntityResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.GetEntity(ctx, &session.GetEntityInput{
		SessionID: req.SessionID,
		EntityUID: req.EntityUID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EntityResponse{Entity: toEntity(out.Entity)}, nil
}

// UpdateEntity merges a patch into an entity
func (h *Handler) UpdateEntity(ctx context.Context, req *UpdateEntityRequest) (*UpdateEntityResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}
	if req.Patch == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("patch is required"))
	}

	out, err := h.sessionService.UpdateEntity(ctx, &session.UpdateEntityInput{
		SessionID: req.SessionID,
		EntityUID: req.EntityUID,
		Patch:     toEnginePatch(req.Patch),
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateEntityResponse{
		Entity:               toEntity(out.Result.Entity),
		Defeated:             out.Result.Defeated,
		RemovedFromTurnOrder: out.Result.RemovedFromTurnOrder,
	}, nil
}

// Attack resolves an attack and applies damage on a hit
func (h *Handler) Attack(ctx context.Context, req *AttackRequest) (*AttackResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.Attack(ctx, &session.AttackInput{
		SessionID:        req.SessionID,
		AttackerUID:      req.AttackerUID,
		TargetUID:        req.TargetUID,
		Attack:           req.Attack,
		Damage:           req.Damage,
		TargetArmorClass: req.TargetArmorClass,
		Author:           req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result := out.Result
	return &AttackResponse{
		AttackRoll:           result.AttackRoll,
		ArmorClass:           result.ArmorClass,
		Hit:                  result.Hit,
		DamageRoll:           result.DamageRoll,
		DamageApplied:        result.DamageApplied,
		TargetHP:             result.TargetHP,
		Defeated:             result.Defeated,
		RemovedFromTurnOrder: result.RemovedFromTurnOrder,
	}, nil
}

// SavingThrow rolls against a difficulty class
func (h *Handler) SavingThrow(ctx context.Context, req *SavingThrowRequest) (*SavingThrowResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.SavingThrow(ctx, &session.SavingThrowInput{
		SessionID:       req.SessionID,
		EntityUID:       req.EntityUID,
		DifficultyClass: req.DifficultyClass,
		Roll:            req.Roll,
		Author:          req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SavingThrowResponse{
		Roll:            out.Result.Roll,
		DifficultyClass: out.Result.DifficultyClass,
		Success:         out.Result.Success,
	}, nil
}

// AddEffect applies an effect to a monster
func (h *Handler) AddEffect(ctx context.Context, req *AddEffectRequest) (*EntityResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}
	if req.Effect.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("effect.name is required"))
	}

	out, err := h.sessionService.AddEffect(ctx, &session.AddEffectInput{
		SessionID: req.SessionID,
		EntityUID: req.EntityUID,
		Effect:    req.Effect,
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EntityResponse{Entity: toEntity(out.Entity)}, nil
}

// SetReaction enables or disables a monster's reaction
func (h *Handler) SetReaction(ctx context.Context, req *SetReactionRequest) (*EntityResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.SetReaction(ctx, &session.SetReactionInput{
		SessionID: req.SessionID,
		EntityUID: req.EntityUID,
		Enabled:   req.Enabled,
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EntityResponse{Entity: toEntity(out.Entity)}, nil
}

// RollDice rolls a spec, recording it when a session is named
func (h *Handler) RollDice(ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
	out, err := h.sessionService.RollDice(ctx, &session.RollDiceInput{
		SessionID: req.SessionID,
		Spec:      req.Spec,
		Author:    req.Author,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollDiceResponse{Result: out.Result}, nil
}

// GetHistory reads a window of a session's history
func (h *Handler) GetHistory(ctx context.Context, req *GetHistoryRequest) (*GetHistoryResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}
	if req.Offset < 0 || req.Limit < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("offset and limit cannot be negative"))
	}

	out, err := h.sessionService.GetHistory(ctx, &session.GetHistoryInput{
		SessionID: req.SessionID,
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetHistoryResponse{Messages: out.Messages}, nil
}

// AppendHistory writes a caller-authored history message
func (h *Handler) AppendHistory(ctx context.Context, req *AppendHistoryRequest) (*AppendHistoryResponse, error) {
	if err := requireSessionID(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.sessionService.AppendHistory(ctx, &session.AppendHistoryInput{
		SessionID:  req.SessionID,
		Author:     req.Author,
		Msg:        req.Msg,
		ActionType: req.ActionType,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AppendHistoryResponse{Message: out.Message}, nil
}

// ListMonsterTemplates lists the SRD monsters a session monster can be
// seeded from
func (h *Handler) ListMonsterTemplates(ctx context.Context, _ *emptypb.Empty) (*ListMonsterTemplatesResponse, error) {
	if h.monsterTemplates == nil {
		return nil, errors.ToGRPCError(errors.FailedPreconditionf("monster templates are not configured"))
	}

	refs, err := h.monsterTemplates.ListMonsterTemplates(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	templates := make([]MonsterTemplate, 0, len(refs))
	for _, ref := range refs {
		templates = append(templates, MonsterTemplate{Key: ref.Key, Name: ref.Name})
	}
	return &ListMonsterTemplatesResponse{Templates: templates}, nil
}

func toEntity(view *engine.EntityView) *Entity {
	if view == nil {
		return nil
	}
	return &Entity{
		Type:      view.Combatant.Type,
		UID:       view.Combatant.UID,
		Monster:   view.Combatant.Monster,
		TurnEntry: view.TurnEntry,
	}
}

func toEnginePatch(p *EntityPatch) *engine.EntityPatch {
	return &engine.EntityPatch{
		Name:                p.Name,
		MaxHP:               p.MaxHP,
		HP:                  p.HP,
		ArmorClass:          p.ArmorClass,
		Enchantments:        p.Enchantments,
		IsReactionActivable: p.IsReactionActivable,
		Speed:               p.Speed,
		Weapons:             p.Weapons,
		Effects:             p.Effects,
	}
}
