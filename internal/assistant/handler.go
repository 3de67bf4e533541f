package assistant

import (
	"context"
	"errors"
	"net/http"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
	"github.com/ferdiebergado/legacyprocs/internal/platform/ai"
)

type Service interface {
	GenerateDescription(ctx context.Context, title string) (string, error)
	SuggestTechnician(ctx context.Context, description string) (*TechnicianSuggestion, error)
	AnalyzePriority(ctx context.Context, description string) (string, error)
	EstimateTime(ctx context.Context, description string) (string, error)
	Model() ModelInfo
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type DescriptionData struct {
	Description string `json:"description"`
}

type TechnicianData struct {
	Technician string `json:"technician,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
	Matched    bool   `json:"matched"`
	Message    string `json:"message,omitempty"`
}

type PriorityData struct {
	Priority string `json:"priority"`
}

type EstimateData struct {
	Estimate string `json:"estimate"`
}

type ModelData struct {
	Model   string `json:"model"`
	Enabled bool   `json:"enabled"`
}

func (h *Handler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[TitleParams](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	desc, err := h.svc.GenerateDescription(r.Context(), params.Title)
	if err != nil {
		fail(w, err)
		return
	}

	web.RespondOK(w, nil, &DescriptionData{Description: desc})
}

func (h *Handler) SuggestTechnician(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[DescriptionParams](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	s, err := h.svc.SuggestTechnician(r.Context(), params.Description)
	if err != nil {
		fail(w, err)
		return
	}

	web.RespondOK(w, nil, &TechnicianData{
		Technician: s.Technician,
		Specialty:  s.Specialty,
		Matched:    s.Matched,
		Message:    s.Message,
	})
}

func (h *Handler) AnalyzePriority(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[DescriptionParams](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	p, err := h.svc.AnalyzePriority(r.Context(), params.Description)
	if err != nil {
		fail(w, err)
		return
	}

	web.RespondOK(w, nil, &PriorityData{Priority: p})
}

func (h *Handler) EstimateTime(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[DescriptionParams](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	est, err := h.svc.EstimateTime(r.Context(), params.Description)
	if err != nil {
		fail(w, err)
		return
	}

	web.RespondOK(w, nil, &EstimateData{Estimate: est})
}

func (h *Handler) Model(w http.ResponseWriter, _ *http.Request) {
	info := h.svc.Model()
	web.RespondOK(w, nil, &ModelData{Model: info.Model, Enabled: info.Enabled})
}

func fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ai.ErrDisabled) {
		web.RespondServiceUnavailable(w, err, message.AIDisabled)
		return
	}
	web.RespondInternalServerError(w, err)
}
