package domain

import (
	"context"
	"time"
)

// CacheError is a sentinel error returned by Cache implementations.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the key/value store behind the catalog cache, builder sessions
// and submit locks.
type Cache interface {
	// Get retrieves an item from the cache.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache, overwriting an existing item if one exists.
	// If expiration is 0, the item is cached indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// SetNX sets key only if it does not exist yet and reports whether it did.
	SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error)

	// CompareAndSwap replaces key with value only while it still holds old and
	// reports whether it did. A missing key never matches.
	CompareAndSwap(ctx context.Context, key string, old string, value string, expiration time.Duration) (bool, error)

	// DeleteIfEquals removes key only while it still holds value and reports
	// whether it did.
	DeleteIfEquals(ctx context.Context, key string, value string) (bool, error)

	// Delete removes an item from the cache.
	// It should not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}
