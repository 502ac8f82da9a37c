// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-session-api/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// Client defines the interface for external API interactions
type Client interface {
	// GetMonsterTemplate fetches an SRD monster by key, e.g. "goblin"
	GetMonsterTemplate(ctx context.Context, key string) (*MonsterTemplate, error)

	// ListMonsterTemplates returns the keys and names of every SRD monster
	ListMonsterTemplates(ctx context.Context) ([]*MonsterTemplateRef, error)
}

// monsterSource is the slice of the dnd5e API this client reads
type monsterSource interface {
	GetMonster(key string) (*apientities.Monster, error)
	ListMonsters() ([]*apientities.ReferenceItem, error)
}

type client struct {
	dnd5eClient monsterSource
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts cannot be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create D&D 5e API client")
	}

	// Stat blocks never change, so every lookup after the first is served
	// from the cache
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

// toAPIKey converts "Giant Spider" or "GIANT_SPIDER" to "giant-spider"
func toAPIKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "_", "-")
	return strings.ReplaceAll(key, " ", "-")
}

func (c *client) GetMonsterTemplate(ctx context.Context, key string) (*MonsterTemplate, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.InvalidArgument("monster template key is required")
	}

	apiKey := toAPIKey(key)
	monster, err := c.dnd5eClient.GetMonster(apiKey)
	if err != nil {
		slog.WarnContext(ctx, "monster template lookup failed",
			"key", key,
			"api_key", apiKey,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get monster template "+apiKey)
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster template %s not found", apiKey)
	}

	return convertMonster(monster), nil
}

func (c *client) ListMonsterTemplates(_ context.Context) ([]*MonsterTemplateRef, error) {
	refs, err := c.dnd5eClient.ListMonsters()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list monster templates")
	}

	out := make([]*MonsterTemplateRef, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		out = append(out, &MonsterTemplateRef{Key: ref.Key, Name: ref.Name})
	}
	return out, nil
}

func convertMonster(m *apientities.Monster) *MonsterTemplate {
	template := &MonsterTemplate{
		Key:             m.Key,
		Name:            m.Name,
		Type:            m.Type,
		ArmorClass:      int32(m.ArmorClass),
		HitPoints:       int32(m.HitPoints),
		HitDice:         m.HitDice,
		ChallengeRating: m.ChallengeRating,
	}
	for _, action := range m.MonsterActions {
		if action == nil || action.Name == "" || action.Name == "Multiattack" {
			continue
		}
		template.Actions = append(template.Actions, action.Name)
	}
	return template
}
