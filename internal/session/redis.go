package session

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ctx = context.Background()

// RedisStore persists the session past process restarts, for kiosk-style
// deployments where re-login on every start is unacceptable. Sessions carry
// no expiry metadata; expiry is discovered through a 401 like everywhere
// else.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore namespaces the well-known keys under prefix, typically one
// prefix per terminal.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *RedisStore) get(name string) string {
	value, err := s.client.Get(ctx, s.key(name)).Result()
	if err != nil {
		if err != redis.Nil {
			zap.S().Warnw("session read failed", "key", name, "err", err)
		}
		return ""
	}
	return value
}

func (s *RedisStore) Credential() string {
	return s.get(KeyCredential)
}

func (s *RedisStore) Role() string {
	if s.get(KeyCredential) == "" {
		return ""
	}
	return s.get(KeyRole)
}

func (s *RedisStore) Set(credential, role string) {
	if err := s.client.MSet(ctx, s.key(KeyCredential), credential, s.key(KeyRole), role).Err(); err != nil {
		zap.S().Warnw("session write failed", "err", err)
	}
}

func (s *RedisStore) Clear() {
	if err := s.client.Del(ctx, s.key(KeyCredential), s.key(KeyRole)).Err(); err != nil {
		zap.S().Warnw("session clear failed", "err", err)
	}
}

var _ Store = (*RedisStore)(nil)
