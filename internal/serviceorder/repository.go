package serviceorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/legacyprocs/internal/model"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("service order repository: service order not found")
	ErrQueryFailed = errors.New("service order repository: query failed")
)

type Repository struct {
	db *sql.DB
}

var _ ServiceOrderRepository = (*Repository)(nil)

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

const (
	columns     = "id, title, description, technician, status, created_at, updated_at"
	titleFilter = `LOWER(title) LIKE $1 ESCAPE '\'`
)

type scanner interface {
	Scan(dest ...any) error
}

func scanServiceOrder(row scanner) (ServiceOrder, error) {
	var o ServiceOrder
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.Technician, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]ServiceOrder, error) {
	rows, err := db.ExecutorFrom(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	orders := make([]ServiceOrder, 0)
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("service order repository: scan row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("service order repository: close service order rows: %w", err)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("service order repository: iterate over service order rows: %w", err)
	}

	return orders, nil
}

const QueryServiceOrderList = "SELECT " + columns + " FROM service_orders WHERE " + titleFilter +
	" ORDER BY created_at DESC, id DESC"

func (r *Repository) List(ctx context.Context, filter string) ([]ServiceOrder, error) {
	orders, err := r.query(ctx, QueryServiceOrderList, db.ContainsPattern(filter))
	if err != nil {
		return nil, fmt.Errorf("list service orders matching %q: %w", filter, err)
	}
	return orders, nil
}

const QueryServiceOrderPage = QueryServiceOrderList + " LIMIT $2 OFFSET $3"

func (r *Repository) ListPage(ctx context.Context, q model.PageQuery) ([]ServiceOrder, error) {
	orders, err := r.query(ctx, QueryServiceOrderPage, db.ContainsPattern(q.Filter), q.Size, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list page %d of service orders matching %q: %w", q.Number, q.Filter, err)
	}
	return orders, nil
}

const QueryServiceOrderCount = "SELECT COUNT(*) FROM service_orders WHERE " + titleFilter

func (r *Repository) Count(ctx context.Context, filter string) (int, error) {
	var n int
	row := db.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, QueryServiceOrderCount, db.ContainsPattern(filter))
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count service orders matching %q: %v", ErrQueryFailed, filter, err)
	}
	return n, nil
}

const QueryServiceOrderFind = "SELECT " + columns + " FROM service_orders WHERE id = $1"

func (r *Repository) Find(ctx context.Context, id int64) (*ServiceOrder, error) {
	row := db.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, QueryServiceOrderFind, id)
	o, err := scanServiceOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find service order with id %d: %v", ErrQueryFailed, id, err)
	}
	return &o, nil
}

const QueryServiceOrderCreate = `
INSERT INTO service_orders (title, description, technician, status, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *Repository) Create(ctx context.Context, o ServiceOrder) (ServiceOrder, error) {
	row := db.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, QueryServiceOrderCreate,
		o.Title, o.Description, o.Technician, o.Status, o.CreatedAt)
	if err := row.Scan(&o.ID); err != nil {
		return o, fmt.Errorf("%w: create service order %q: %v", ErrQueryFailed, o.Title, err)
	}
	return o, nil
}

const QueryServiceOrderUpdate = `
UPDATE service_orders
SET title = $1, description = $2, technician = $3, status = $4, updated_at = $5
WHERE id = $6`

func (r *Repository) Update(ctx context.Context, o ServiceOrder) error {
	res, err := db.ExecutorFrom(ctx, r.db).ExecContext(ctx, QueryServiceOrderUpdate,
		o.Title, o.Description, o.Technician, o.Status, o.UpdatedAt, o.ID)
	if err != nil {
		return fmt.Errorf("%w: update service order with id %d: %v", ErrQueryFailed, o.ID, err)
	}
	return requireRow(res, o.ID)
}

const QueryServiceOrderDelete = "DELETE FROM service_orders WHERE id = $1"

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := db.ExecutorFrom(ctx, r.db).ExecContext(ctx, QueryServiceOrderDelete, id)
	if err != nil {
		return fmt.Errorf("%w: delete service order with id %d: %v", ErrQueryFailed, id, err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for service order with id %d: %v", ErrQueryFailed, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
