package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ResultCache implements ports.ResultCache. It stores the serialized result
// of a completed command under its command key so a retried command with
// the same handle returns the same bytes.
type ResultCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewResultCache creates a Redis-backed command result cache.
func NewResultCache(client goredis.UniversalClient) *ResultCache {
	return &ResultCache{
		client: client,
		prefix: "command:",
	}
}

// Get returns the cached result for key, or nil, nil on a miss.
func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis result get: %w", err)
	}
	return val, nil
}

// Set stores value under key for ttl. The first writer wins.
func (c *ResultCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.SetArgs(ctx, c.prefix+key, value, goredis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis result set: %w", err)
	}
	return nil
}
