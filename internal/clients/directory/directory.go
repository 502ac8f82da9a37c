// Package directory answers whether externally owned entities exist. The
// session only holds characters and NPCs by reference; their records live
// with other services.
package directory

//go:generate mockgen -destination=mock/mock_directory.go -package=directorymock github.com/KirkDiggler/rpg-session-api/internal/clients/directory Directory

import (
	"context"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-session-api/internal/redis"
)

// Directory looks up character and NPC records by UID
type Directory interface {
	// Exists reports whether a record of the given type exists
	// Returns errors.InvalidArgument for monsters, which sessions own
	Exists(ctx context.Context, kind entities.EntityType, uid string) (bool, error)
}

// Key prefixes shared with the services owning the records
const (
	CharacterKeyPrefix = "character:"
	NPCKeyPrefix       = "npc:"
)

func keyFor(kind entities.EntityType, uid string) (string, error) {
	switch kind {
	case entities.EntityTypeCharacter:
		return CharacterKeyPrefix + uid, nil
	case entities.EntityTypeNPC:
		return NPCKeyPrefix + uid, nil
	default:
		return "", errors.InvalidArgumentf("%s records are not looked up in the directory", kind)
	}
}

type redisDirectory struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis directory
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

var _ Directory = (*redisDirectory)(nil)

// NewRedis creates a directory that checks the record keys in Redis
func NewRedis(cfg *RedisConfig) (Directory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisDirectory{client: cfg.Client}, nil
}

func (d *redisDirectory) Exists(ctx context.Context, kind entities.EntityType, uid string) (bool, error) {
	if uid == "" {
		return false, errors.InvalidArgument("uid cannot be empty")
	}
	key, err := keyFor(kind, uid)
	if err != nil {
		return false, err
	}

	n, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to look up %s %s", kind, uid)
	}
	return n > 0, nil
}
