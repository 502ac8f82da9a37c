package engine

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/idgen"
)

type engine struct {
	roller       toolkitdice.Roller
	sessionIDs   idgen.Generator
	monsterIDs   idgen.Generator
	defeatPolicy DefeatPolicy
}

// Config holds the dependencies for the rules engine
type Config struct {
	// Roller resolves every die; inject a seeded or scripted roller for
	// reproducible play
	Roller toolkitdice.Roller

	SessionIDGenerator idgen.Generator
	MonsterIDGenerator idgen.Generator

	// DefeatPolicy defaults to DefeatPolicyKeep
	DefeatPolicy DefeatPolicy
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	if cfg.SessionIDGenerator == nil {
		vb.RequiredField("SessionIDGenerator")
	}
	if cfg.MonsterIDGenerator == nil {
		vb.RequiredField("MonsterIDGenerator")
	}
	if cfg.DefeatPolicy != "" && !cfg.DefeatPolicy.Valid() {
		vb.Fieldf("DefeatPolicy", "unknown policy %q", cfg.DefeatPolicy)
	}
	return vb.Build()
}

// New creates a rules engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	policy := cfg.DefeatPolicy
	if policy == "" {
		policy = DefeatPolicyKeep
	}

	return &engine{
		roller:       cfg.Roller,
		sessionIDs:   cfg.SessionIDGenerator,
		monsterIDs:   cfg.MonsterIDGenerator,
		defeatPolicy: policy,
	}, nil
}
