package usecase

import (
	"context"
	"time"
)

// Cache is the port the usecases see; the Redis adapter in
// infrastructure/cache implements it and degrades to a no-op when the
// backing store is unavailable.
// Entries expire by TTL only; nothing in the read path invalidates them.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
