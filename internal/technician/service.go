package technician

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/model"
)

var ErrIDMismatch = errors.New("technician service: id mismatch")

type TechnicianRepository interface {
	List(ctx context.Context, filter string) ([]Technician, error)
	ListByStatus(ctx context.Context, status Status) ([]Technician, error)
	Find(ctx context.Context, id int64) (*Technician, error)
	Create(ctx context.Context, t Technician) (Technician, error)
	Update(ctx context.Context, t Technician) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo TechnicianRepository
}

var _ Service = (*service)(nil)

func NewService(repo TechnicianRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter string) ([]Technician, error) {
	technicians, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	return technicians, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]Technician, error) {
	technicians, err := s.repo.ListByStatus(ctx, StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list available technicians: %w", err)
	}
	return technicians, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Technician, error) {
	t, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get technician %d: %w", id, err)
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, params Params) (*Technician, error) {
	t := fromParams(params)
	t.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create technician: %w", err)
	}
	return &created, nil
}

func (s *service) Update(ctx context.Context, id int64, params UpdateParams) error {
	if params.ID != id {
		return fmt.Errorf("%w: path id %d, body id %d", ErrIDMismatch, id, params.ID)
	}

	t := fromParams(params.Params)
	t.ID = id
	t.Status = params.Status

	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("update technician %d: %w", id, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete technician %d: %w", id, err)
	}
	return nil
}

func fromParams(p Params) Technician {
	status := p.Status
	if status == "" {
		status = StatusActive
	}

	return Technician{
		Name:      strings.TrimSpace(p.Name),
		Email:     model.NullIfBlank(p.Email),
		Phone:     model.NullIfBlank(p.Phone),
		Specialty: model.NullIfBlank(p.Specialty),
		Status:    status,
	}
}
