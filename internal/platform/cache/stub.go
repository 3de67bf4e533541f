package cache

import (
	"context"
	"errors"
	"time"
)

type StubCache struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

var _ Cache = (*StubCache)(nil)

func (s *StubCache) Get(ctx context.Context, key string) (string, bool, error) {
	if s.GetFunc == nil {
		return "", false, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, key)
}

func (s *StubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.SetFunc == nil {
		return errors.New("Set() not implemented by stub")
	}
	return s.SetFunc(ctx, key, value, ttl)
}

func (s *StubCache) Close() error {
	return nil
}
