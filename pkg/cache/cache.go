// Package cache defines the key-value cache capability and its adapters.
// The capability is optional everywhere it is injected: a nil Cache simply
// disables caching.
package cache

import "context"

type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Flush(ctx context.Context) error
}
