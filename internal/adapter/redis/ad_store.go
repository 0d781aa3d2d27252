package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// client is the subset of redis.Cmdable the store needs.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// AdStore implements port.AdStore on Redis strings. Keys never expire;
// freshness is decided by the ad cache from the stored timestamp.
type AdStore struct {
	rdb    client
	prefix string
}

// NewAdStore returns a store that namespaces every key with prefix.
func NewAdStore(rdb client, prefix string) *AdStore {
	return &AdStore{rdb: rdb, prefix: prefix}
}

// Get returns the value stored under key.
func (s *AdStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set overwrites the value stored under key.
func (s *AdStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}
