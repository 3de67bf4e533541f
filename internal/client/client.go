// Package client manages the companies service orders are opened for.
package client

import (
	"database/sql"

	"github.com/ferdiebergado/legacyprocs/internal/model"
)

type Client struct {
	model.Model

	CompanyName string
	TradeName   *string
	CNPJ        string
	Email       *string
	Phone       *string
	Address     *string
	City        *string
	State       *string
	PostalCode  *string
}

// Params holds the writable fields of a client.
type Params struct {
	CompanyName string  `json:"company_name" validate:"required,notblank,max=200"`
	TradeName   *string `json:"trade_name,omitempty" validate:"omitempty,max=200"`
	CNPJ        string  `json:"cnpj" validate:"required,max=18,cnpj"`
	Email       *string `json:"email,omitempty" validate:"omitempty,max=100,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=300"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string `json:"state,omitempty" validate:"omitempty,len=2"`
	PostalCode  *string `json:"postal_code,omitempty" validate:"omitempty,max=10"`
}

// UpdateParams replaces every writable field of the client with ID.
type UpdateParams struct {
	ID int64 `json:"id"`
	Params
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
