package serviceorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/model"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
	"github.com/ferdiebergado/legacyprocs/internal/platform/events"
)

var ErrIDMismatch = errors.New("service order service: id mismatch")

type ServiceOrderRepository interface {
	List(ctx context.Context, filter string) ([]ServiceOrder, error)
	ListPage(ctx context.Context, q model.PageQuery) ([]ServiceOrder, error)
	Count(ctx context.Context, filter string) (int, error)
	Find(ctx context.Context, id int64) (*ServiceOrder, error)
	Create(ctx context.Context, o ServiceOrder) (ServiceOrder, error)
	Update(ctx context.Context, o ServiceOrder) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo      ServiceOrderRepository
	txMgr     db.TxManager
	publisher events.Publisher
}

var _ Service = (*service)(nil)

func NewService(repo ServiceOrderRepository, txMgr db.TxManager, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		txMgr:     txMgr,
		publisher: publisher,
	}
}

func (s *service) List(ctx context.Context, filter string) ([]ServiceOrder, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	return orders, nil
}

// ListPaged counts and reads the page in one transaction so both see the same rows.
func (s *service) ListPaged(ctx context.Context, q model.PageQuery) (*model.Page[ServiceOrder], error) {
	q = q.Normalize()
	page := &model.Page[ServiceOrder]{
		Number: q.Number,
		Size:   q.Size,
	}

	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		total, err := s.repo.Count(txCtx, q.Filter)
		if err != nil {
			return err
		}
		page.TotalCount = total

		if total == 0 || page.Number > page.TotalPages() {
			page.Items = []ServiceOrder{}
			return nil
		}

		items, err := s.repo.ListPage(txCtx, q)
		if err != nil {
			return err
		}
		page.Items = items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list page %d of service orders: %w", q.Number, err)
	}

	return page, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ServiceOrder, error) {
	o, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service order %d: %w", id, err)
	}
	return o, nil
}

func (s *service) Create(ctx context.Context, params Params) (*ServiceOrder, error) {
	o := fromParams(params)
	o.Status = StatusOpen
	o.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("create service order: %w", err)
	}

	s.publish(ctx, EventCreated, &created)
	return &created, nil
}

func (s *service) Update(ctx context.Context, id int64, params UpdateParams) error {
	if params.ID != id {
		return fmt.Errorf("%w: path id %d, body id %d", ErrIDMismatch, id, params.ID)
	}

	now := time.Now().UTC()
	o := fromParams(params.Params)
	o.ID = id
	o.Status = params.Status
	o.UpdatedAt = &now

	if err := s.repo.Update(ctx, o); err != nil {
		return fmt.Errorf("update service order %d: %w", id, err)
	}

	s.publish(ctx, EventUpdated, &o)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service order %d: %w", id, err)
	}

	s.publish(ctx, EventDeleted, &ServiceOrder{Model: model.Model{ID: id}})
	return nil
}

// publish never fails the request; the change is already committed.
func (s *service) publish(ctx context.Context, routingKey string, o *ServiceOrder) {
	if err := s.publisher.Publish(ctx, routingKey, newEventPayload(o)); err != nil {
		slog.Error("failed to publish service order event", "event", routingKey, "id", o.ID, "reason", err)
	}
}

type eventPayload struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title,omitempty"`
	Technician string     `json:"technician,omitempty"`
	Status     Status     `json:"status,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func newEventPayload(o *ServiceOrder) *eventPayload {
	return &eventPayload{
		ID:         o.ID,
		Title:      o.Title,
		Technician: o.Technician,
		Status:     o.Status,
		UpdatedAt:  o.UpdatedAt,
	}
}

func fromParams(p Params) ServiceOrder {
	return ServiceOrder{
		Title:       strings.TrimSpace(p.Title),
		Description: model.NullIfBlank(p.Description),
		Technician:  strings.TrimSpace(p.Technician),
	}
}
