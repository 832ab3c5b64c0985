// internal/pkg/session/redis_store.go
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisOpTimeout = 2 * time.Second

// RedisStore keeps the session in a single Redis key, letting several
// terminals on the same machine or network share one login. Same
// degrade-to-empty contract as FileStore: Redis being down means logged
// out, never an error surfaced to the screens.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, key string, logger *zap.Logger) *RedisStore {
	if key == "" {
		key = "eventflow:session"
	}
	return &RedisStore{client: client, key: key, logger: logger}
}

func (r *RedisStore) Save(s Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Warn("session save skipped, redis unavailable", zap.Error(err))
	}
	return nil
}

func (r *RedisStore) Load() Session {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("session load failed, treating as logged out", zap.Error(err))
		}
		return Session{}
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		r.logger.Warn("stored session unreadable, treating as logged out", zap.Error(err))
		return Session{}
	}
	return s
}

func (r *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.Warn("session clear skipped, redis unavailable", zap.Error(err))
	}
	return nil
}
