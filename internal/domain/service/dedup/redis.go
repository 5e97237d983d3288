package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "valuebets:emitted:"

// RedisStore переживает рестарты и общий для нескольких инстансов.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}

	return &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) WithPrefix(prefix string) *RedisStore {
	s.prefix = prefix
	return s
}

func (s *RedisStore) key(identity string) string {
	sum := sha256.Sum256([]byte(identity))
	return s.prefix + hex.EncodeToString(sum[:])
}

func (s *RedisStore) Claim(ctx context.Context, identity string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(identity), 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis.SetNX: %w", err)
	}

	return ok, nil
}

func (s *RedisStore) Has(ctx context.Context, identity string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(identity)).Result()
	if err != nil {
		return false, fmt.Errorf("redis.Exists: %w", err)
	}

	return n > 0, nil
}
