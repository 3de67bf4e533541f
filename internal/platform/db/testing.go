package db

import (
	"database/sql"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/config"
)

// NewTestDB opens a migrated in-memory sqlite database that is closed when t ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open(config.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// every connection to :memory: gets its own database.
	conn.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	if err := Migrate(t.Context(), conn, config.DriverSQLite); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return conn
}
