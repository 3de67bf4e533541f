package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/config"
	"google.golang.org/genai"
)

var ErrEmptyReply = errors.New("ai: model returned no text")

type geminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	timeout     time.Duration
}

var _ Generator = (*geminiGenerator)(nil)

// NewGeminiGenerator returns a Generator backed by the Gemini API, or a
// disabled one when cfg has no API key.
//
//nolint:ireturn // The concrete type depends on the configuration.
func NewGeminiGenerator(ctx context.Context, cfg *config.AI) (Generator, error) {
	if cfg.APIKey == "" {
		slog.Warn("Gemini API key is not set, AI suggestions are disabled.")
		return disabledGenerator{model: cfg.Model}, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &geminiGenerator{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxOutputTokens,
		timeout:     cfg.Timeout.Duration,
	}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", g.model, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyReply
	}

	slog.Debug("Generated content.", "model", g.model, "duration", time.Since(start), "chars", len(text))
	return text, nil
}

func (g *geminiGenerator) Model() string {
	return g.model
}

func (g *geminiGenerator) Enabled() bool {
	return true
}
