package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
)

const msgNotFound = "Client not found."

type Service interface {
	List(ctx context.Context, filter string) ([]Client, error)
	Get(ctx context.Context, id int64) (*Client, error)
	Create(ctx context.Context, params Params) (*Client, error)
	Update(ctx context.Context, id int64, params UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ClientData struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name"`
	TradeName   *string   `json:"trade_name,omitempty"`
	CNPJ        string    `json:"cnpj"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	PostalCode  *string   `json:"postal_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func transformClient(c *Client) *ClientData {
	return &ClientData{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		TradeName:   c.TradeName,
		CNPJ:        c.CNPJ,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		PostalCode:  c.PostalCode,
		CreatedAt:   c.CreatedAt,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]ClientData, 0, len(clients))
	for i := range clients {
		data = append(data, *transformClient(&clients[i]))
	}
	web.RespondOK(w, nil, &data)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidID, nil)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	web.RespondOK(w, nil, transformClient(c))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[Params](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	c, err := h.svc.Create(r.Context(), params)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Client created."
	web.RespondCreated(w, &msg, transformClient(c))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidID, nil)
		return
	}

	params, err := web.ParamsFromContext[UpdateParams](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, params); err != nil {
		h.fail(w, err)
		return
	}

	web.RespondNoContent(w)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidID, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}

	web.RespondNoContent(w)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, msgNotFound)
	case errors.Is(err, ErrIDMismatch):
		web.RespondBadRequest(w, err, message.IDMismatch, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
