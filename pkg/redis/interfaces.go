package redis

import (
	"context"
	"errors"
	"time"
)

// ErrKeyMissing is returned by Get when a key does not exist.
// Callers treat a missing key as a defined state (e.g. no weather report
// cached for a zone), not a failure.
var ErrKeyMissing = errors.New("key does not exist")

// Client represents a Redis client interface for testing and abstraction
type Client interface {
	// Set sets a key to a value with an optional TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Get gets the value of a key. Returns ErrKeyMissing when absent.
	Get(ctx context.Context, key string) (string, error)

	// HSet sets a field in a hash
	HSet(ctx context.Context, key string, field string, value interface{}) error

	// HGetAll gets all fields from a hash
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// Expire sets a TTL on a key
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping checks the connection to Redis
	Ping(ctx context.Context) error

	// Close closes the Redis connection
	Close() error
}
