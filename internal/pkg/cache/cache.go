package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with per-entry TTL. A miss is not an error:
// Get reports it through the second return value.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
