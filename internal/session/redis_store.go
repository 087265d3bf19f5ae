package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps tokens in Redis so they survive restarts of the web process.
type RedisTokenStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisTokenStore builds a store writing keys as prefix+sessionID.
func NewRedisTokenStore(client redis.Cmdable, prefix string) *RedisTokenStore {
	return &RedisTokenStore{client: client, prefix: prefix}
}

func (s *RedisTokenStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisTokenStore) Get(ctx context.Context, sessionID string) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

// Set stores token; ttl <= 0 keeps it until deleted.
func (s *RedisTokenStore) Set(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, s.key(sessionID), token, ttl).Err()
}

func (s *RedisTokenStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}
