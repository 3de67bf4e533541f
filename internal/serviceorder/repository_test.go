package serviceorder_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/model"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
	"github.com/ferdiebergado/legacyprocs/internal/platform/events"
	"github.com/ferdiebergado/legacyprocs/internal/serviceorder"
	"github.com/google/go-cmp/cmp"
)

func str(s string) *string {
	return &s
}

var base = time.Date(2025, 10, 18, 8, 0, 0, 0, time.UTC)

// seedOrders inserts n orders titled "Order 01".."Order n", each a minute newer than the last.
func seedOrders(t *testing.T, repo *serviceorder.Repository, n int) {
	t.Helper()

	for i := 1; i <= n; i++ {
		o := serviceorder.ServiceOrder{
			Model:      model.Model{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			Title:      fmt.Sprintf("Order %02d", i),
			Technician: "Ana",
			Status:     serviceorder.StatusOpen,
		}
		if i%5 == 0 {
			o.Title = fmt.Sprintf("Leak %02d", i)
		}
		if _, err := repo.Create(t.Context(), o); err != nil {
			t.Fatalf("repo.Create(%q) = %v", o.Title, err)
		}
	}
}

func titles(orders []serviceorder.ServiceOrder) []string {
	got := make([]string, 0, len(orders))
	for _, o := range orders {
		got = append(got, o.Title)
	}
	return got
}

func TestRepository_ListNewestFirst(t *testing.T) {
	t.Parallel()

	repo := serviceorder.NewRepository(db.NewTestDB(t))
	seedOrders(t, repo, 6)

	orders, err := repo.List(t.Context(), "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Order 06", "Leak 05", "Order 04", "Order 03", "Order 02", "Order 01"}
	if diff := cmp.Diff(want, titles(orders)); diff != "" {
		t.Errorf("repo.List() mismatch (-want +got):\n%s", diff)
	}

	orders, err = repo.List(t.Context(), "LEAK")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Leak 05"}, titles(orders)); diff != "" {
		t.Errorf("repo.List(LEAK) mismatch (-want +got):\n%s", diff)
	}
}

func TestService_ListPaged(t *testing.T) {
	t.Parallel()

	conn := db.NewTestDB(t)
	repo := serviceorder.NewRepository(conn)
	seedOrders(t, repo, 25)
	svc := serviceorder.NewService(repo, db.NewSQLTxManager(conn), events.NewNoopPublisher())

	tests := []struct {
		name         string
		query        model.PageQuery
		wantTitles   []string
		wantTotal    int
		wantPages    int
		wantPrevious bool
		wantNext     bool
	}{
		{
			name:       "Second page of ten",
			query:      model.PageQuery{Number: 2, Size: 10},
			wantTitles: []string{"Leak 15", "Order 14", "Order 13", "Order 12", "Order 11", "Leak 10", "Order 09", "Order 08", "Order 07", "Order 06"},
			wantTotal:  25, wantPages: 3, wantPrevious: true, wantNext: true,
		},
		{
			name:       "Last partial page",
			query:      model.PageQuery{Number: 3, Size: 10},
			wantTitles: []string{"Leak 05", "Order 04", "Order 03", "Order 02", "Order 01"},
			wantTotal:  25, wantPages: 3, wantPrevious: true, wantNext: false,
		},
		{
			name:       "Filtered",
			query:      model.PageQuery{Number: 1, Size: 2, Filter: "leak"},
			wantTitles: []string{"Leak 25", "Leak 20"},
			wantTotal:  5, wantPages: 3, wantPrevious: false, wantNext: true,
		},
		{
			name:       "No match",
			query:      model.PageQuery{Filter: "pump"},
			wantTitles: []string{},
			wantTotal:  0, wantPages: 0, wantPrevious: false, wantNext: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := svc.ListPaged(t.Context(), tc.query)
			if err != nil {
				t.Fatalf("svc.ListPaged() = %v", err)
			}

			if diff := cmp.Diff(tc.wantTitles, titles(page.Items)); diff != "" {
				t.Errorf("page.Items mismatch (-want +got):\n%s", diff)
			}
			if page.TotalCount != tc.wantTotal {
				t.Errorf("page.TotalCount = %d, want: %d", page.TotalCount, tc.wantTotal)
			}
			if got := page.TotalPages(); got != tc.wantPages {
				t.Errorf("page.TotalPages() = %d, want: %d", got, tc.wantPages)
			}
			if got := page.HasPrevious(); got != tc.wantPrevious {
				t.Errorf("page.HasPrevious() = %t, want: %t", got, tc.wantPrevious)
			}
			if got := page.HasNext(); got != tc.wantNext {
				t.Errorf("page.HasNext() = %t, want: %t", got, tc.wantNext)
			}
		})
	}
}

func TestRepository_Lifecycle(t *testing.T) {
	t.Parallel()

	repo := serviceorder.NewRepository(db.NewTestDB(t))

	want := serviceorder.ServiceOrder{
		Model:       model.Model{CreatedAt: base},
		Title:       "Fix the chiller",
		Description: str("Compressor trips after ten minutes."),
		Technician:  "Ana",
		Status:      serviceorder.StatusOpen,
	}

	created, err := repo.Create(t.Context(), want)
	if err != nil {
		t.Fatal(err)
	}
	want.ID = created.ID

	got, err := repo.Find(t.Context(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("repo.Find() mismatch (-want +got):\n%s", diff)
	}

	updatedAt := base.Add(time.Hour)
	want.Status = serviceorder.StatusCompleted
	want.Description = nil
	want.UpdatedAt = &updatedAt
	if err := repo.Update(t.Context(), want); err != nil {
		t.Fatalf("repo.Update() = %v", err)
	}

	got, err = repo.Find(t.Context(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("repo.Find() after update mismatch (-want +got):\n%s", diff)
	}

	if err := repo.Delete(t.Context(), created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Find(t.Context(), created.ID); !errors.Is(err, serviceorder.ErrNotFound) {
		t.Errorf("repo.Find() after delete = %v, want: %v", err, serviceorder.ErrNotFound)
	}
	if err := repo.Update(t.Context(), want); !errors.Is(err, serviceorder.ErrNotFound) {
		t.Errorf("repo.Update() after delete = %v, want: %v", err, serviceorder.ErrNotFound)
	}
}
