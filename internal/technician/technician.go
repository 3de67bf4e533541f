// Package technician manages the staff that service orders are assigned to.
package technician

import (
	"database/sql"

	"github.com/ferdiebergado/legacyprocs/internal/model"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

type Technician struct {
	model.Model

	Name      string
	Email     *string
	Phone     *string
	Specialty *string
	Status    Status
}

// Available reports whether the technician can take new service orders.
func (t *Technician) Available() bool {
	return t.Status == StatusActive
}

// Params holds the writable fields of a technician. An empty status means active.
type Params struct {
	Name      string  `json:"name" validate:"required,notblank,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,max=100,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Specialty *string `json:"specialty,omitempty" validate:"omitempty,max=100"`
	Status    Status  `json:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`
}

// UpdateParams replaces every writable field of the technician with ID.
// Unlike Params, Status is required.
type UpdateParams struct {
	ID int64 `json:"id"`
	Params
	Status Status `json:"status" validate:"required,oneof=active inactive on_leave"`
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

func NewModule(conn *sql.DB) *Module {
	repo := NewRepository(conn)
	svc := NewService(repo)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
