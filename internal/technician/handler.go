package technician

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
)

const msgNotFound = "Technician not found."

type Service interface {
	List(ctx context.Context, filter string) ([]Technician, error)
	ListAvailable(ctx context.Context) ([]Technician, error)
	Get(ctx context.Context, id int64) (*Technician, error)
	Create(ctx context.Context, params Params) (*Technician, error)
	Update(ctx context.Context, id int64, params UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type TechnicianData struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Specialty *string   `json:"specialty,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func transformTechnician(t *Technician) *TechnicianData {
	return &TechnicianData{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		Specialty: t.Specialty,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

func transformTechnicians(technicians []Technician) *[]TechnicianData {
	data := make([]TechnicianData, 0, len(technicians))
	for i := range technicians {
		data = append(data, *transformTechnician(&technicians[i]))
	}
	return &data
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.svc.List(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, transformTechnicians(technicians))
}

func (h *Handler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.svc.ListAvailable(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, transformTechnicians(technicians))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidID, nil)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	web.RespondOK(w, nil, transformTechnician(t))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[Params](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	t, err := h.svc.Create(r.Context(), params)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Technician created."
	web.RespondCreated(w, &msg, transformTechnician(t))
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
