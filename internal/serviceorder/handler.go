package serviceorder

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/model"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
)

const msgNotFound = "Service order not found."

type Service interface {
	List(ctx context.Context, filter string) ([]ServiceOrder, error)
	ListPaged(ctx context.Context, q model.PageQuery) (*model.Page[ServiceOrder], error)
	Get(ctx context.Context, id int64) (*ServiceOrder, error)
	Create(ctx context.Context, params Params) (*ServiceOrder, error)
	Update(ctx context.Context, id int64, params UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ServiceOrderData struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Technician  string     `json:"technician"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type PageData struct {
	Items       []ServiceOrderData `json:"items"`
	Page        int                `json:"page"`
	Size        int                `json:"size"`
	TotalCount  int                `json:"total_count"`
	TotalPages  int                `json:"total_pages"`
	HasPrevious bool               `json:"has_previous"`
	HasNext     bool               `json:"has_next"`
}

func transformServiceOrder(o *ServiceOrder) *ServiceOrderData {
	return &ServiceOrderData{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Technician:  o.Technician,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func transformServiceOrders(orders []ServiceOrder) []ServiceOrderData {
	data := make([]ServiceOrderData, 0, len(orders))
	for i := range orders {
		data = append(data, *transformServiceOrder(&orders[i]))
	}
	return data
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := transformServiceOrders(orders)
	web.RespondOK(w, nil, &data)
}

func (h *Handler) ListPaged(w http.ResponseWriter, r *http.Request) {
	q := model.PageQuery{
		Number: web.QueryInt(r, "page", 1),
		Size:   web.QueryInt(r, "size", model.DefaultPageSize),
		Filter: r.URL.Query().Get("filter"),
	}

	page, err := h.svc.ListPaged(r.Context(), q)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := &PageData{
		Items:       transformServiceOrders(page.Items),
		Page:        page.Number,
		Size:        page.Size,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages(),
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
	web.RespondOK(w, nil, data)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidID, nil)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	web.RespondOK(w, nil, transformServiceOrder(o))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[Params](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	o, err := h.svc.Create(r.Context(), params)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Service order created."
	web.RespondCreated(w, &msg, transformServiceOrder(o))
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
