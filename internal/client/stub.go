package client

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context, filter string) ([]Client, error)
	GetFunc    func(ctx context.Context, id int64) (*Client, error)
	CreateFunc func(ctx context.Context, params Params) (*Client, error)
	UpdateFunc func(ctx context.Context, id int64, params UpdateParams) error
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ Service = &StubService{}

func (s *StubService) List(ctx context.Context, filter string) ([]Client, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, filter)
}

func (s *StubService) Get(ctx context.Context, id int64) (*Client, error) {
	if s.GetFunc == nil {
		return nil, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, id)
}

func (s *StubService) Create(ctx context.Context, params Params) (*Client, error) {
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
	ListFunc   func(ctx context.Context, filter string) ([]Client, error)
	FindFunc   func(ctx context.Context, id int64) (*Client, error)
	CreateFunc func(ctx context.Context, c Client) (Client, error)
	UpdateFunc func(ctx context.Context, c Client) error
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ ClientRepository = &StubRepo{}

func (r *StubRepo) List(ctx context.Context, filter string) ([]Client, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, filter)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (*Client, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Create(ctx context.Context, c Client) (Client, error) {
	if r.CreateFunc == nil {
		return Client{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, c)
}

func (r *StubRepo) Update(ctx context.Context, c Client) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, c)
}

func (r *StubRepo) Delete(ctx context.Context, id int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}
