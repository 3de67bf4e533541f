// Package assistant produces AI suggestions for service orders.
package assistant

import (
	"github.com/ferdiebergado/legacyprocs/internal/platform/ai"
	"github.com/ferdiebergado/legacyprocs/internal/platform/cache"
	"github.com/ferdiebergado/legacyprocs/internal/technician"
)

type Kind string

const (
	KindDescription Kind = "description"
	KindTechnician  Kind = "technician"
	KindPriority    Kind = "priority"
	KindEstimate    Kind = "estimate"
)

type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

const defaultSpecialty = "General"

const (
	MsgNoTechnicianAvailable = "no technician available at the moment"
	MsgNoSuitableTechnician  = "no technician with a suitable specialty is available"
)

// TechnicianSuggestion is the outcome of matching a problem description
// against the active technicians. Technician and Specialty are empty unless Matched.
type TechnicianSuggestion struct {
	Technician string
	Specialty  string
	Matched    bool
	Message    string
}

type ModelInfo struct {
	Model   string
	Enabled bool
}

type TitleParams struct {
	Title string `json:"title" validate:"required,notblank,max=200"`
}

type DescriptionParams struct {
	Description string `json:"description" validate:"required,notblank,max=1000"`
}

type Module struct {
	svc     Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(technicians TechnicianLister, gen ai.Generator, c cache.Cache, opts Options) *Module {
	svc := NewService(technicians, gen, c, opts)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}

var _ TechnicianLister = (technician.Service)(nil)
