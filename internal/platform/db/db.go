// Package db opens the database pool, applies the schema and runs transactions.
package db

import (
	"context"
	"database/sql"
)

// Executor is satisfied by both *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type TxManager interface {
	// RunInTx calls fn with a context carrying a new transaction.
	// The transaction is committed when fn returns nil and rolled back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecutorFrom returns the transaction stored in ctx, or conn when there is none.
//
//nolint:ireturn // Callers only need the Executor methods.
func ExecutorFrom(ctx context.Context, conn *sql.DB) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}
