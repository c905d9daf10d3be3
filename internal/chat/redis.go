package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/lumina-commerce/storefront/internal/core/error"
	logx "github.com/lumina-commerce/storefront/pkg/logger"
)

// RedisRepository persists conversation logs as Redis lists, one JSON-encoded
// turn per element, with a TTL refreshed on every append.
type RedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisRepository(rdb redis.Cmdable, ttl time.Duration) *RedisRepository {
	return &RedisRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisRepository) key(conversationID string) string {
	return fmt.Sprintf("conversation:%s:turns", conversationID)
}

func (r *RedisRepository) Append(ctx context.Context, conversationID string, turn Turn) error {
	b, err := json.Marshal(turn)
	if err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to marshal turn")
		return fmt.Errorf("marshal turn: %w", err)
	}
	key := r.key(conversationID)

	if err := r.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push turn to redis")
		return errx.WrapRedis(err)
	}
	// extend TTL on touch
	if r.ttl > 0 {
		if ok, err := r.rdb.Expire(ctx, key, r.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", r.ttl).Msg("failed to set TTL on conversation key")
		}
	}
	return nil
}

func (r *RedisRepository) History(ctx context.Context, conversationID string) ([]Turn, error) {
	key := r.key(conversationID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []Turn{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load conversation from redis")
		return nil, errx.WrapRedis(err)
	}

	turns := make([]Turn, 0, len(rows))
	for i, s := range rows {
		var t Turn
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			logx.Error().Err(err).Str("conversation_id", conversationID).Int("index", i).Msg("failed to unmarshal turn")
			return nil, fmt.Errorf("unmarshal turn at index %d: %w", i, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (r *RedisRepository) Clear(ctx context.Context, conversationID string) error {
	key := r.key(conversationID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete conversation from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisRepository) Count(ctx context.Context, conversationID string) (int, error) {
	key := r.key(conversationID)
	n, err := r.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to count turns in redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ Repository = (*RedisRepository)(nil)
