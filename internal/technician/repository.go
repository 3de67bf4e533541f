package technician

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("technician repository: technician not found")
	ErrQueryFailed = errors.New("technician repository: query failed")
)

type Repository struct {
	db *sql.DB
}

var _ TechnicianRepository = (*Repository)(nil)

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

const columns = "id, name, email, phone, specialty, status, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanTechnician(row scanner) (Technician, error) {
	var t Technician
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Specialty, &t.Status, &t.CreatedAt)
	return t, err
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]Technician, error) {
	rows, err := db.ExecutorFrom(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	technicians := make([]Technician, 0)
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("technician repository: scan row: %w", err)
		}
		technicians = append(technicians, t)
	}

	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("technician repository: close technician rows: %w", err)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("technician repository: iterate over technician rows: %w", err)
	}

	return technicians, nil
}

const QueryTechnicianList = "SELECT " + columns + ` FROM technicians
WHERE LOWER(name) LIKE $1 ESCAPE '\' OR LOWER(COALESCE(specialty, '')) LIKE $1 ESCAPE '\'
ORDER BY name, id`

func (r *Repository) List(ctx context.Context, filter string) ([]Technician, error) {
	technicians, err := r.query(ctx, QueryTechnicianList, db.ContainsPattern(filter))
	if err != nil {
		return nil, fmt.Errorf("list technicians matching %q: %w", filter, err)
	}
	return technicians, nil
}

const QueryTechnicianListByStatus = "SELECT " + columns + " FROM technicians WHERE status = $1 ORDER BY name, id"

func (r *Repository) ListByStatus(ctx context.Context, status Status) ([]Technician, error) {
	technicians, err := r.query(ctx, QueryTechnicianListByStatus, status)
	if err != nil {
		return nil, fmt.Errorf("list technicians with status %q: %w", status, err)
	}
	return technicians, nil
}

const QueryTechnicianFind = "SELECT " + columns + " FROM technicians WHERE id = $1"

func (r *Repository) Find(ctx context.Context, id int64) (*Technician, error) {
	row := db.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, QueryTechnicianFind, id)
	t, err := scanTechnician(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find technician with id %d: %v", ErrQueryFailed, id, err)
	}
	return &t, nil
}

const QueryTechnicianCreate = `
INSERT INTO technicians (name, email, phone, specialty, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *Repository) Create(ctx context.Context, t Technician) (Technician, error) {
	row := db.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, QueryTechnicianCreate,
		t.Name, t.Email, t.Phone, t.Specialty, t.Status, t.CreatedAt)
	if err := row.Scan(&t.ID); err != nil {
		return t, fmt.Errorf("%w: create technician %q: %v", ErrQueryFailed, t.Name, err)
	}
	return t, nil
}

const QueryTechnicianUpdate = `
UPDATE technicians
SET name = $1, email = $2, phone = $3, specialty = $4, status = $5
WHERE id = $6`

func (r *Repository) Update(ctx context.Context, t Technician) error {
	res, err := db.ExecutorFrom(ctx, r.db).ExecContext(ctx, QueryTechnicianUpdate,
		t.Name, t.Email, t.Phone, t.Specialty, t.Status, t.ID)
	if err != nil {
		return fmt.Errorf("%w: update technician with id %d: %v", ErrQueryFailed, t.ID, err)
	}
	return requireRow(res, t.ID)
}

const QueryTechnicianDelete = "DELETE FROM technicians WHERE id = $1"

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := db.ExecutorFrom(ctx, r.db).ExecContext(ctx, QueryTechnicianDelete, id)
	if err != nil {
		return fmt.Errorf("%w: delete technician with id %d: %v", ErrQueryFailed, id, err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for technician with id %d: %v", ErrQueryFailed, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
