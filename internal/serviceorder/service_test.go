package serviceorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/model"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
	"github.com/ferdiebergado/legacyprocs/internal/platform/events"
	"github.com/ferdiebergado/legacyprocs/internal/serviceorder"
)

func TestService_CreateOpensOrder(t *testing.T) {
	t.Parallel()

	var published []string
	publisher := &events.StubPublisher{
		PublishFunc: func(_ context.Context, routingKey string, _ any) error {
			published = append(published, routingKey)
			return nil
		},
	}
	repo := &serviceorder.StubRepo{
		CreateFunc: func(_ context.Context, o serviceorder.ServiceOrder) (serviceorder.ServiceOrder, error) {
			o.ID = 11
			return o, nil
		},
	}
	svc := serviceorder.NewService(repo, &db.StubTxManager{}, publisher)

	got, err := svc.Create(context.Background(), serviceorder.Params{Title: " Fix pump ", Technician: "Ana", Description: str("")})
	if err != nil {
		t.Fatal(err)
	}

	if got.Status != serviceorder.StatusOpen {
		t.Errorf("got.Status = %q, want: %q", got.Status, serviceorder.StatusOpen)
	}
	if got.Title != "Fix pump" {
		t.Errorf("got.Title = %q, want: %q", got.Title, "Fix pump")
	}
	if got.Description != nil {
		t.Errorf("got.Description = %q, want: nil", *got.Description)
	}
	if got.CreatedAt.IsZero() {
		t.Error("got.CreatedAt is zero, want: creation time")
	}
	if got.UpdatedAt != nil {
		t.Errorf("got.UpdatedAt = %v, want: nil", got.UpdatedAt)
	}
	if len(published) != 1 || published[0] != serviceorder.EventCreated {
		t.Errorf("published = %v, want: [%s]", published, serviceorder.EventCreated)
	}
}

func TestService_PublishFailureIsNotReturned(t *testing.T) {
	t.Parallel()

	publisher := &events.StubPublisher{
		PublishFunc: func(context.Context, string, any) error {
			return errors.New("broker down")
		},
	}
	repo := &serviceorder.StubRepo{
		DeleteFunc: func(context.Context, int64) error { return nil },
	}
	svc := serviceorder.NewService(repo, &db.StubTxManager{}, publisher)

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Errorf("svc.Delete() = %v, want: nil", err)
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		params      serviceorder.UpdateParams
		repoErr     error
		wantErr     error
		wantPublish bool
	}{
		{"Success", serviceorder.UpdateParams{ID: 2, Status: serviceorder.StatusCompleted}, nil, nil, true},
		{"Id mismatch", serviceorder.UpdateParams{ID: 3, Status: serviceorder.StatusCompleted}, nil, serviceorder.ErrIDMismatch, false},
		{"Not found", serviceorder.UpdateParams{ID: 2, Status: serviceorder.StatusOpen}, serviceorder.ErrNotFound, serviceorder.ErrNotFound, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var published bool
			publisher := &events.StubPublisher{
				PublishFunc: func(context.Context, string, any) error {
					published = true
					return nil
				},
			}
			repo := &serviceorder.StubRepo{
				UpdateFunc: func(_ context.Context, o serviceorder.ServiceOrder) error {
					if o.UpdatedAt == nil {
						t.Error("o.UpdatedAt = nil, want: update time")
					}
					if o.Status != tc.params.Status {
						t.Errorf("o.Status = %q, want: %q", o.Status, tc.params.Status)
					}
					return tc.repoErr
				},
			}
			svc := serviceorder.NewService(repo, &db.StubTxManager{}, publisher)

			err := svc.Update(context.Background(), 2, tc.params)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("svc.Update() = %v, want: %v", err, tc.wantErr)
			}
			if published != tc.wantPublish {
				t.Errorf("published = %t, want: %t", published, tc.wantPublish)
			}
		})
	}
}

func TestService_ListPaged_ClampsQuery(t *testing.T) {
	t.Parallel()

	repo := &serviceorder.StubRepo{
		CountFunc: func(context.Context, string) (int, error) { return 250, nil },
		ListPageFunc: func(_ context.Context, q model.PageQuery) ([]serviceorder.ServiceOrder, error) {
			if q.Number != 1 || q.Size != model.MaxPageSize {
				t.Errorf("q = %+v, want: page 1 of size %d", q, model.MaxPageSize)
			}
			return []serviceorder.ServiceOrder{}, nil
		},
	}
	svc := serviceorder.NewService(repo, &db.StubTxManager{}, events.NewNoopPublisher())

	page, err := svc.ListPaged(context.Background(), model.PageQuery{Number: -1, Size: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalPages() != 3 {
		t.Errorf("page.TotalPages() = %d, want: %d", page.TotalPages(), 3)
	}
}

func TestService_ListPaged_PastLastPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number int
	}{
		{"One page past the end", 2},
		{"Huge page number", 922337203685477583},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &serviceorder.StubRepo{
				CountFunc: func(context.Context, string) (int, error) { return 3, nil },
				ListPageFunc: func(_ context.Context, q model.PageQuery) ([]serviceorder.ServiceOrder, error) {
					t.Errorf("ListPage(%+v) called for a page past the end", q)
					return nil, nil
				},
			}
			svc := serviceorder.NewService(repo, &db.StubTxManager{}, events.NewNoopPublisher())

			page, err := svc.ListPaged(context.Background(), model.PageQuery{Number: tt.number, Size: 10})
			if err != nil {
				t.Fatal(err)
			}
			if len(page.Items) != 0 || page.Items == nil {
				t.Errorf("page.Items = %v, want: empty slice", page.Items)
			}
			if page.HasNext() {
				t.Error("page.HasNext() = true, want: false")
			}
			if page.TotalPages() != 1 {
				t.Errorf("page.TotalPages() = %d, want: %d", page.TotalPages(), 1)
			}
		})
	}
}

func TestService_ListPaged_CountFails(t *testing.T) {
	t.Parallel()

	errDB := errors.New("db down")
	repo := &serviceorder.StubRepo{
		CountFunc: func(context.Context, string) (int, error) { return 0, errDB },
	}
	svc := serviceorder.NewService(repo, &db.StubTxManager{}, events.NewNoopPublisher())

	if _, err := svc.ListPaged(context.Background(), model.PageQuery{}); !errors.Is(err, errDB) {
		t.Errorf("svc.ListPaged() = %v, want: %v", err, errDB)
	}
}
