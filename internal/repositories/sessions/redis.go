package sessions

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-session-api/internal/redis"
)

const (
	sessionKeyPrefix = "session:"
	sessionIndexKey  = "session:index"

	defaultListConcurrency = 8
)

type redisRepository struct {
	client          redisclient.Client
	clock           clock.Clock
	listConcurrency int
	ttl             time.Duration
}

// RedisConfig contains configuration for the Redis session repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock

	// ListConcurrency bounds parallel reads during List, default 8
	ListConcurrency int

	// TTL expires idle sessions; every save refreshes it. Zero keeps
	// sessions forever.
	TTL time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.ListConcurrency < 0 {
		return errors.InvalidArgument("list concurrency cannot be negative")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

var _ Repository = (*redisRepository)(nil)

// NewRedis creates a Redis-backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	concurrency := cfg.ListConcurrency
	if concurrency == 0 {
		concurrency = defaultListConcurrency
	}

	return &redisRepository{
		client:          cfg.Client,
		clock:           c,
		listConcurrency: concurrency,
		ttl:             cfg.TTL,
	}, nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	session := input.Session.Clone()
	now := r.clock.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	session.Version = 1

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	created, err := r.client.SetNX(ctx, sessionKey(session.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create session")
	}
	if !created {
		return nil, errors.AlreadyExistsf("session with ID %s already exists", session.ID)
	}

	if err := r.client.SAdd(ctx, sessionIndexKey, session.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index session")
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	raw, err := r.client.Get(ctx, sessionKey(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("session with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	session, err := decodeSession(raw)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: session}, nil
}

func decodeSession(raw []byte) (*entities.Session, error) {
	var session entities.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}
	return &session, nil
}

// Save compares versions inside WATCH/MULTI so two writers racing on the
// same key cannot both win
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	key := sessionKey(input.Session.ID)
	expected := input.Session.Version
	var saved *entities.Session

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if err == redisclient.Nil {
				return errors.NotFoundf("session with ID %s not found", input.Session.ID)
			}
			return errors.Wrapf(err, "failed to read session")
		}

		stored, err := decodeSession(raw)
		if err != nil {
			return err
		}
		if stored.Version != expected {
			return errors.WriteConflict(input.Session.ID, expected, stored.Version)
		}

		next := input.Session.Clone()
		next.Version = stored.Version + 1
		next.CreatedAt = stored.CreatedAt
		next.UpdatedAt = r.clock.Now()

		data, err := json.Marshal(next)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		saved = next
		return nil
	}, key)

	if err != nil {
		if errors.Is(err, redisclient.TxFailedErr) {
			slog.DebugContext(ctx, "session changed during save",
				"session_id", input.Session.ID,
				"expected_version", expected)
			return nil, errors.WriteConflict(input.Session.ID, expected, -1)
		}
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Wrapf(err, "failed to save session")
	}

	return &SaveOutput{Session: saved}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, sessionKey(input.ID))
	pipe.SRem(ctx, sessionIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("session with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, sessionIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read session index")
	}

	found := make([]*entities.Session, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.listConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			out, err := r.Get(gctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					slog.WarnContext(gctx, "session not found, cleaning up index",
						"session_id", id)
					r.client.SRem(gctx, sessionIndexKey, id)
					return nil
				}
				return errors.Wrapf(err, "failed to get session %s", id)
			}
			found[i] = out.Session
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sessions := make([]*entities.Session, 0, len(found))
	for _, session := range found {
		if session != nil && input.matches(session) {
			sessions = append(sessions, session)
		}
	}
	sortSessions(sessions)

	return &ListOutput{Sessions: sessions}, nil
}
