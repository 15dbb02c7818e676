package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers request keys and the result of the request
// that first claimed them, so a retried request can be answered with the
// original result instead of being executed twice.
type IdempotencyStore interface {
	// MarkProcessed claims a key for ttl.
	// Returns true if the key was newly claimed, false if it was already taken.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks if a key has already been claimed
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Complete stores the result of a claimed key, keeping its TTL
	Complete(ctx context.Context, key, result string) error

	// Result returns the stored result. ok is false when the key is unknown
	// or still in flight.
	Result(ctx context.Context, key string) (result string, ok bool, err error)

	// Release drops a key so the request can be retried
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}
