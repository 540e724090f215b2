package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get for an absent or expired key.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a string key/value store with expiry. Values are opaque to the
// cache; callers encode them.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
