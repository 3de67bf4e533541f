// Package serviceorder manages the work orders assigned to technicians.
package serviceorder

import (
	"database/sql"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/model"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
	"github.com/ferdiebergado/legacyprocs/internal/platform/events"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Routing keys of the events published after each change.
const (
	EventCreated = "service_order.created"
	EventUpdated = "service_order.updated"
	EventDeleted = "service_order.deleted"
)

type ServiceOrder struct {
	model.Model

	Title       string
	Description *string
	Technician  string
	Status      Status
	UpdatedAt   *time.Time
}

// Params holds the fields a new service order is opened with.
type Params struct {
	Title       string  `json:"title" validate:"required,notblank,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Technician  string  `json:"technician" validate:"required,notblank,max=100"`
}

// UpdateParams replaces every writable field of the service order with ID.
type UpdateParams struct {
	ID int64 `json:"id"`
	Params
	Status Status `json:"status" validate:"required,oneof=open in_progress completed cancelled"`
}

type Module struct {
	repo    *Repository
	svc     Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(conn *sql.DB, publisher events.Publisher) *Module {
	repo := NewRepository(conn)
	svc := NewService(repo, db.NewSQLTxManager(conn), publisher)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
