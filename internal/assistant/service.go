package assistant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/ferdiebergado/legacyprocs/internal/platform/ai"
	"github.com/ferdiebergado/legacyprocs/internal/platform/cache"
	"github.com/ferdiebergado/legacyprocs/internal/technician"
)

const replyNone = "NONE"

type TechnicianLister interface {
	List(ctx context.Context, filter string) ([]technician.Technician, error)
}

type Options struct {
	CacheTTL time.Duration
}

type service struct {
	technicians TechnicianLister
	gen         ai.Generator
	cache       cache.Cache
	opts        Options
}

var _ Service = (*service)(nil)

func NewService(technicians TechnicianLister, gen ai.Generator, c cache.Cache, opts Options) Service {
	return &service{
		technicians: technicians,
		gen:         gen,
		cache:       c,
		opts:        opts,
	}
}

func (s *service) GenerateDescription(ctx context.Context, title string) (string, error) {
	reply, err := s.generate(ctx, KindDescription, buildDescriptionPrompt(strings.TrimSpace(title)))
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	return reply, nil
}

func (s *service) SuggestTechnician(ctx context.Context, description string) (*TechnicianSuggestion, error) {
	if !s.gen.Enabled() {
		return nil, ai.ErrDisabled
	}

	all, err := s.technicians.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load technicians: %w", err)
	}

	available := make([]technician.Technician, 0, len(all))
	candidates := make([]string, 0, len(all))
	for i := range all {
		if all[i].Available() {
			available = append(available, all[i])
			candidates = append(candidates, fmt.Sprintf("%s (%s)", all[i].Name, specialtyOf(&all[i])))
		}
	}

	if len(available) == 0 {
		slog.Warn("No technician is available.")
		return &TechnicianSuggestion{Message: MsgNoTechnicianAvailable}, nil
	}

	reply, err := s.generate(ctx, KindTechnician, buildTechnicianPrompt(strings.TrimSpace(description), candidates))
	if err != nil {
		return nil, fmt.Errorf("suggest technician: %w", err)
	}

	t := matchTechnician(reply, available)
	if t == nil {
		slog.Warn("Model suggested no listed technician.", "reply", reply)
		return &TechnicianSuggestion{Message: MsgNoSuitableTechnician}, nil
	}

	return &TechnicianSuggestion{
		Technician: t.Name,
		Specialty:  specialtyOf(t),
		Matched:    true,
	}, nil
}

func (s *service) AnalyzePriority(ctx context.Context, description string) (string, error) {
	reply, err := s.generate(ctx, KindPriority, buildPriorityPrompt(strings.TrimSpace(description)))
	if err != nil {
		return "", fmt.Errorf("analyze priority: %w", err)
	}
	return normalizePriority(reply), nil
}

func (s *service) EstimateTime(ctx context.Context, description string) (string, error) {
	reply, err := s.generate(ctx, KindEstimate, buildEstimatePrompt(strings.TrimSpace(description)))
	if err != nil {
		return "", fmt.Errorf("estimate time: %w", err)
	}
	return reply, nil
}

func (s *service) Model() ModelInfo {
	return ModelInfo{Model: s.gen.Model(), Enabled: s.gen.Enabled()}
}

// generate serves prompt from the cache when possible. Cache failures are logged and skipped.
func (s *service) generate(ctx context.Context, kind Kind, prompt string) (string, error) {
	if !s.gen.Enabled() {
		return "", ai.ErrDisabled
	}

	key := cacheKey(kind, prompt)
	if cached, found, err := s.cache.Get(ctx, key); err != nil {
		slog.Warn("Failed to read suggestion cache.", "kind", kind, "reason", err)
	} else if found {
		slog.Debug("Suggestion served from cache.", "kind", kind)
		return cached, nil
	}

	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)

	if err := s.cache.Set(ctx, key, reply, s.opts.CacheTTL); err != nil {
		slog.Warn("Failed to write suggestion cache.", "kind", kind, "reason", err)
	}

	return reply, nil
}

func cacheKey(kind Kind, prompt string) string {
	sum := sha256.Sum256([]byte(string(kind) + "\n" + prompt))
	return hex.EncodeToString(sum[:])
}

func specialtyOf(t *technician.Technician) string {
	if t.Specialty == nil || strings.TrimSpace(*t.Specialty) == "" {
		return defaultSpecialty
	}
	return *t.Specialty
}

// matchTechnician returns the technician whose name appears in reply.
// The longest name wins so that "Ana" does not shadow "Ana Souza".
func matchTechnician(reply string, technicians []technician.Technician) *technician.Technician {
	reply = strings.ToLower(strings.TrimSpace(reply))
	if reply == "" || strings.EqualFold(strings.Trim(reply, ".!"), replyNone) {
		return nil
	}

	var (
		best    *technician.Technician
		bestLen int
	)
	for i := range technicians {
		name := strings.ToLower(strings.TrimSpace(technicians[i].Name))
		if name == "" || !strings.Contains(reply, name) {
			continue
		}
		if len(name) > bestLen {
			best, bestLen = &technicians[i], len(name)
		}
	}
	return best
}

// normalizePriority returns the first priority word in reply, or the trimmed reply.
func normalizePriority(reply string) string {
	words := strings.FieldsFunc(strings.ToUpper(reply), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		switch p := Priority(w); p {
		case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
			return string(p)
		}
	}
	return strings.TrimSpace(reply)
}
