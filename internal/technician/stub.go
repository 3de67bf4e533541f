package technician

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc          func(ctx context.Context, filter string) ([]Technician, error)
	ListAvailableFunc func(ctx context.Context) ([]Technician, error)
	GetFunc           func(ctx context.Context, id int64) (*Technician, error)
	CreateFunc        func(ctx context.Context, params Params) (*Technician, error)
	UpdateFunc        func(ctx context.Context, id int64, params UpdateParams) error
	DeleteFunc        func(ctx context.Context, id int64) error
}

var _ Service = &StubService{}

func (s *StubService) List(ctx context.Context, filter string) ([]Technician, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, filter)
}

func (s *StubService) ListAvailable(ctx context.Context) ([]Technician, error) {
	if s.ListAvailableFunc == nil {
		return nil, errors.New("ListAvailable() not implemented by stub")
	}
	return s.ListAvailableFunc(ctx)
}

func (s *StubService) Get(ctx context.Context, id int64) (*Technician, error) {
	if s.GetFunc == nil {
		return nil, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, id)
}

func (s *StubService) Create(ctx context.Context, params Params) (*Technician, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, id int64, params UpdateParams) error {
	if s.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, id, params)
}

func (s *StubService) Delete(ctx context.Context, id int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}

type StubRepo struct {
	ListFunc         func(ctx context.Context, filter string) ([]Technician, error)
	ListByStatusFunc func(ctx context.Context, status Status) ([]Technician, error)
	FindFunc         func(ctx context.Context, id int64) (*Technician, error)
	CreateFunc       func(ctx context.Context, t Technician) (Technician, error)
	UpdateFunc       func(ctx context.Context, t Technician) error
	DeleteFunc       func(ctx context.Context, id int64) error
}

var _ TechnicianRepository = &StubRepo{}

func (r *StubRepo) List(ctx context.Context, filter string) ([]Technician, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, filter)
}

func (r *StubRepo) ListByStatus(ctx context.Context, status Status) ([]Technician, error) {
	if r.ListByStatusFunc == nil {
		return nil, errors.New("ListByStatus() not implemented by stub")
	}
	return r.ListByStatusFunc(ctx, status)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (*Technician, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Create(ctx context.Context, t Technician) (Technician, error) {
	if r.CreateFunc == nil {
		return Technician{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, t)
}

func (r *StubRepo) Update(ctx context.Context, t Technician) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, t)
}

func (r *StubRepo) Delete(ctx context.Context, id int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}
