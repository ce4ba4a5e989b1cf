package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Implementations: Redis (production), in-memory (tests).
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL. ttl<=0 means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Increment atomically increments an integer key.
	Increment(ctx context.Context, key string) (int64, error)

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Expire sets a TTL on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
