package serviceorder

import (
	"context"
	"errors"

	"github.com/ferdiebergado/legacyprocs/internal/model"
)

type StubService struct {
	ListFunc      func(ctx context.Context, filter string) ([]ServiceOrder, error)
	ListPagedFunc func(ctx context.Context, q model.PageQuery) (*model.Page[ServiceOrder], error)
	GetFunc       func(ctx context.Context, id int64) (*ServiceOrder, error)
	CreateFunc    func(ctx context.Context, params Params) (*ServiceOrder, error)
	UpdateFunc    func(ctx context.Context, id int64, params UpdateParams) error
	DeleteFunc    func(ctx context.Context, id int64) error
}

var _ Service = &StubService{}

func (s *StubService) List(ctx context.Context, filter string) ([]ServiceOrder, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, filter)
}

func (s *StubService) ListPaged(ctx context.Context, q model.PageQuery) (*model.Page[ServiceOrder], error) {
	if s.ListPagedFunc == nil {
		return nil, errors.New("ListPaged() not implemented by stub")
	}
	return s.ListPagedFunc(ctx, q)
}

func (s *StubService) Get(ctx context.Context, id int64) (*ServiceOrder, error) {
	if s.GetFunc == nil {
		return nil, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, id)
}

func (s *StubService) Create(ctx context.Context, params Params) (*ServiceOrder, error) {
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
	ListFunc     func(ctx context.Context, filter string) ([]ServiceOrder, error)
	ListPageFunc func(ctx context.Context, q model.PageQuery) ([]ServiceOrder, error)
	CountFunc    func(ctx context.Context, filter string) (int, error)
	FindFunc     func(ctx context.Context, id int64) (*ServiceOrder, error)
	CreateFunc   func(ctx context.Context, o ServiceOrder) (ServiceOrder, error)
	UpdateFunc   func(ctx context.Context, o ServiceOrder) error
	DeleteFunc   func(ctx context.Context, id int64) error
}

var _ ServiceOrderRepository = &StubRepo{}

func (r *StubRepo) List(ctx context.Context, filter string) ([]ServiceOrder, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, filter)
}

func (r *StubRepo) ListPage(ctx context.Context, q model.PageQuery) ([]ServiceOrder, error) {
	if r.ListPageFunc == nil {
		return nil, errors.New("ListPage() not implemented by stub")
	}
	return r.ListPageFunc(ctx, q)
}

func (r *StubRepo) Count(ctx context.Context, filter string) (int, error) {
	if r.CountFunc == nil {
		return 0, errors.New("Count() not implemented by stub")
	}
	return r.CountFunc(ctx, filter)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (*ServiceOrder, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Create(ctx context.Context, o ServiceOrder) (ServiceOrder, error) {
	if r.CreateFunc == nil {
		return ServiceOrder{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, o)
}

func (r *StubRepo) Update(ctx context.Context, o ServiceOrder) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, o)
}

func (r *StubRepo) Delete(ctx context.Context, id int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}
