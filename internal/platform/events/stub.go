package events

import "context"

// StubPublisher records nothing and succeeds unless PublishFunc is set.
type StubPublisher struct {
	PublishFunc func(ctx context.Context, routingKey string, payload any) error
}

var _ Publisher = (*StubPublisher)(nil)

func (s *StubPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if s.PublishFunc == nil {
		return nil
	}
	return s.PublishFunc(ctx, routingKey, payload)
}

func (s *StubPublisher) Close() error {
	return nil
}
