package memo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCmdable abstracts the minimal surface consumed from a go-redis
// client — the same narrow-interface discipline the teacher's pack uses
// for its own Redis-backed persister, so a *redis.Client, a *redis.Ring or
// a test double all satisfy it without any adapter shim.
type RedisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore is a Store backed by Redis, for sharing finish-solver DP
// results across solver processes. Entries are written with no
// expiration: they are correct for as long as the move catalog and
// Settings that produced them are unchanged, which the caller — not this
// package — is responsible for keying around (see KeyPrefix).
type RedisStore struct {
	client RedisCmdable
	prefix string
}

// NewRedisStore returns a RedisStore. An empty prefix defaults to
// "rotoplan:finish:"; callers sharing one Redis instance across multiple
// catalogs or Settings should pass a prefix that encodes them, since two
// different Settings can otherwise collide on the same reduced-state key.
func NewRedisStore(client RedisCmdable, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "rotoplan:finish:"
	}

	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) keyFor(key uint64) string {
	return s.prefix + strconv.FormatUint(key, 36)
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key uint64) (int32, bool, error) {
	res, err := s.client.Get(ctx, s.keyFor(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("memo: redis get key=%d: %w", key, err)
	}

	v, err := strconv.ParseInt(res, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("memo: redis get key=%d: corrupt value %q: %w", key, res, err)
	}

	return int32(v), true, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key uint64, value int32) error {
	if err := s.client.Set(ctx, s.keyFor(key), value, 0).Err(); err != nil {
		return fmt.Errorf("memo: redis set key=%d: %w", key, err)
	}

	return nil
}
