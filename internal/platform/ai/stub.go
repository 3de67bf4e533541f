package ai

import (
	"context"
	"errors"
)

type StubGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	ModelName    string
	Disabled     bool
}

var _ Generator = (*StubGenerator)(nil)

func (s *StubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if s.Disabled {
		return "", ErrDisabled
	}
	if s.GenerateFunc == nil {
		return "", errors.New("Generate() not implemented by stub")
	}
	return s.GenerateFunc(ctx, prompt)
}

func (s *StubGenerator) Model() string {
	return s.ModelName
}

func (s *StubGenerator) Enabled() bool {
	return !s.Disabled
}
