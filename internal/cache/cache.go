package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL = time.Hour
	keyPrefix  = "travel:"
)

// Cache wraps a Redis client and stores JSON-encoded upstream responses.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl falls back to one hour.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Key joins parts into a normalised cache key, e.g. Key("weather", "Paris").
func Key(parts ...string) string {
	norm := make([]string, len(parts))
	for i, p := range parts {
		norm[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return keyPrefix + strings.Join(norm, ":")
}

// Get decodes the value stored at key into dst.
// A miss returns false, nil (not an error).
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get for %s: %w", key, err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("unmarshaling cached value for %s: %w", key, err)
	}

	return true, nil
}

// Set stores v at key with the configured TTL. A nil v is a no-op.
func (c *Cache) Set(ctx context.Context, key string, v any) error {
	if v == nil {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling value for %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s: %w", key, err)
	}

	return nil
}

// Delete removes the entry at key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete for %s: %w", key, err)
	}
	return nil
}
