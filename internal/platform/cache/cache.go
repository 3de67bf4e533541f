// Package cache stores short-lived string values by key.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

type noopCache struct{}

var _ Cache = noopCache{}

// NewNoopCache returns a Cache that never stores anything.
//
//nolint:ireturn // Callers only need the interface.
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) (string, bool, error) {
	return "", false, nil
}

func (noopCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}

func (noopCache) Close() error {
	return nil
}
