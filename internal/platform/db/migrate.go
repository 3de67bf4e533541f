package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ferdiebergado/legacyprocs/internal/config"
)

//go:embed schema/*.sql
var schemaFS embed.FS

var schemaFiles = map[string]string{
	config.DriverPostgres: "schema/postgres.sql",
	config.DriverSQLite:   "schema/sqlite.sql",
}

// Migrate creates the tables and indexes for driver. It is safe to run repeatedly.
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	name, ok := schemaFiles[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	schema, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read schema for driver %q: %w", driver, err)
	}

	slog.Info("Applying database schema...", "driver", driver)

	txMgr := NewSQLTxManager(conn)
	err = txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		exec := ExecutorFrom(txCtx, conn)
		for _, stmt := range statements(string(schema)) {
			if _, err := exec.ExecContext(txCtx, stmt); err != nil {
				return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	slog.Info("Database schema is up to date.")
	return nil
}

// statements splits a schema file on semicolons, dropping comments and blanks.
func statements(schema string) []string {
	var lines []string
	for _, line := range strings.Split(schema, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "--") {
			lines = append(lines, line)
		}
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return line
}
