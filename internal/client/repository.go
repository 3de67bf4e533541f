package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/cnpj"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("client repository: client not found")
	ErrQueryFailed = errors.New("client repository: query failed")
)

type Repository struct {
	db *sql.DB
}

var _ ClientRepository = (*Repository)(nil)

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

const columns = "id, company_name, trade_name, cnpj, email, phone, address, city, state, postal_code, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.CompanyName, &c.TradeName, &c.CNPJ, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.State, &c.PostalCode, &c.CreatedAt)
	return c, err
}

// QueryClientList matches the filter against the company name and the stored
// CNPJ; $2 holds the filter's digits so unpunctuated CNPJs match too.
const QueryClientList = "SELECT " + columns + ` FROM clients
WHERE LOWER(company_name) LIKE $1 ESCAPE '\' OR LOWER(cnpj) LIKE $1 ESCAPE '\'
OR ($2 <> '' AND REPLACE(REPLACE(REPLACE(cnpj, '.', ''), '/', ''), '-', '') LIKE '%' || $2 || '%')
ORDER BY company_name, id`

func (r *Repository) List(ctx context.Context, filter string) ([]Client, error) {
	digits := cnpj.Digits(filter)
	rows, err := db.ExecutorFrom(ctx, r.db).QueryContext(ctx, QueryClientList, db.ContainsPattern(filter), digits)
	if err != nil {
		return nil, fmt.Errorf("%w: list clients matching %q: %v", ErrQueryFailed, filter, err)
	}
	defer rows.Close()

	clients := make([]Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("client repository: scan row: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("client repository: close client rows: %w", err)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("client repository: iterate over client rows: %w", err)
	}

	return clients, nil
}

const QueryClientFind = "SELECT " + columns + " FROM clients WHERE id = $1"

func (r *Repository) Find(ctx context.Context, id int64) (*Client, error) {
	row := db.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, QueryClientFind, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find client with id %d: %v", ErrQueryFailed, id, err)
	}
	return &c, nil
}

const QueryClientCreate = `
INSERT INTO clients (company_name, trade_name, cnpj, email, phone, address, city, state, postal_code, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *Repository) Create(ctx context.Context, c Client) (Client, error) {
	row := db.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, QueryClientCreate,
		c.CompanyName, c.TradeName, c.CNPJ, c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode, c.CreatedAt)
	if err := row.Scan(&c.ID); err != nil {
		return c, fmt.Errorf("%w: create client %q: %v", ErrQueryFailed, c.CompanyName, err)
	}
	return c, nil
}

const QueryClientUpdate = `
UPDATE clients
SET company_name = $1, trade_name = $2, cnpj = $3, email = $4, phone = $5,
    address = $6, city = $7, state = $8, postal_code = $9
WHERE id = $10`

func (r *Repository) Update(ctx context.Context, c Client) error {
	res, err := db.ExecutorFrom(ctx, r.db).ExecContext(ctx, QueryClientUpdate,
		c.CompanyName, c.TradeName, c.CNPJ, c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode, c.ID)
	if err != nil {
		return fmt.Errorf("%w: update client with id %d: %v", ErrQueryFailed, c.ID, err)
	}
	return requireRow(res, c.ID)
}

const QueryClientDelete = "DELETE FROM clients WHERE id = $1"

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := db.ExecutorFrom(ctx, r.db).ExecContext(ctx, QueryClientDelete, id)
	if err != nil {
		return fmt.Errorf("%w: delete client with id %d: %v", ErrQueryFailed, id, err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for client with id %d: %v", ErrQueryFailed, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
