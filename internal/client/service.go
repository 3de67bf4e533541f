package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/model"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/cnpj"
)

var ErrIDMismatch = errors.New("client service: id mismatch")

// ClientRepository persists clients.
type ClientRepository interface {
	List(ctx context.Context, filter string) ([]Client, error)
	Find(ctx context.Context, id int64) (*Client, error)
	Create(ctx context.Context, c Client) (Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo ClientRepository
}

var _ Service = (*service)(nil)

func NewService(repo ClientRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter string) ([]Client, error) {
	clients, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Client, error) {
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, params Params) (*Client, error) {
	c := fromParams(params)
	c.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &created, nil
}

func (s *service) Update(ctx context.Context, id int64, params UpdateParams) error {
	if params.ID != id {
		return fmt.Errorf("%w: path id %d, body id %d", ErrIDMismatch, id, params.ID)
	}

	c := fromParams(params.Params)
	c.ID = id

	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("update client %d: %w", id, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}

func fromParams(p Params) Client {
	c := Client{
		CompanyName: strings.TrimSpace(p.CompanyName),
		TradeName:   model.NullIfBlank(p.TradeName),
		CNPJ:        cnpj.Format(strings.TrimSpace(p.CNPJ)),
		Email:       model.NullIfBlank(p.Email),
		Phone:       model.NullIfBlank(p.Phone),
		Address:     model.NullIfBlank(p.Address),
		City:        model.NullIfBlank(p.City),
		State:       model.NullIfBlank(p.State),
		PostalCode:  model.NullIfBlank(p.PostalCode),
	}
	if c.State != nil {
		upper := strings.ToUpper(*c.State)
		c.State = &upper
	}
	return c
}
