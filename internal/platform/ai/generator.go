// Package ai generates text with a large language model.
package ai

import (
	"context"
	"errors"
)

// ErrDisabled is returned by every call when no API key is configured.
var ErrDisabled = errors.New("ai: generator is not configured")

type Generator interface {
	// Generate returns the model's reply to prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// Model names the model replies come from.
	Model() string
	// Enabled reports whether Generate can reach a model.
	Enabled() bool
}

type disabledGenerator struct {
	model string
}

var _ Generator = disabledGenerator{}

func (g disabledGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrDisabled
}

func (g disabledGenerator) Model() string {
	return g.model
}

func (g disabledGenerator) Enabled() bool {
	return false
}
