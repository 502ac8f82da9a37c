package history

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-session-api/internal/redis"
)

const historyKeyPrefix = "session:history:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis history repository
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

var _ Repository = (*redisRepository)(nil)

// NewRedis creates a Redis list backed history repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func historyKey(sessionID string) string {
	return historyKeyPrefix + sessionID
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if len(input.Messages) == 0 {
		length, err := r.client.LLen(ctx, historyKey(input.SessionID)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read history length")
		}
		return &AppendOutput{Length: length}, nil
	}

	values := make([]interface{}, 0, len(input.Messages))
	for _, msg := range input.Messages {
		data, err := json.Marshal(msg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal history message")
		}
		values = append(values, data)
	}

	length, err := r.client.RPush(ctx, historyKey(input.SessionID), values...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to append history")
	}
	return &AppendOutput{Length: length}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := validateWindow(input); err != nil {
		return nil, err
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = input.Offset + input.Limit - 1
	}

	raw, err := r.client.LRange(ctx, historyKey(input.SessionID), input.Offset, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read history")
	}

	messages := make([]entities.HistoryMessage, 0, len(raw))
	for _, item := range raw {
		var msg entities.HistoryMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal history message")
		}
		messages = append(messages, msg)
	}
	return &ListOutput{Messages: messages}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := r.client.Del(ctx, historyKey(input.SessionID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete history")
	}
	return &DeleteOutput{}, nil
}

func validateWindow(input ListInput) error {
	vb := errors.NewValidationBuilder()
	if input.Offset < 0 {
		vb.Field("offset", "cannot be negative")
	}
	if input.Limit < 0 {
		vb.Field("limit", "cannot be negative")
	}
	return vb.Build()
}
