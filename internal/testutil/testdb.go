package testutil

import (
	"testing"

	"github.com/alexanderramin/raiden/internal/db"
	"github.com/alexanderramin/raiden/internal/logger"
	"github.com/jmoiron/sqlx"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Open(db.DriverSQLite, db.MemoryDSN, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
