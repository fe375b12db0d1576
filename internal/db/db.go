package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/raiden/internal/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported SQL drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// MemoryDSN opens a private in-memory SQLite database.
const MemoryDSN = ":memory:"

// Open connects to the database for driver and runs migrations.
// For SQLite, the parent directory of a file DSN is created and WAL mode is
// enabled; an in-memory database is pinned to a single connection so every
// query sees the same schema.
func Open(driver, dsn string, log *logger.Logger) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)
	switch driver {
	case DriverSQLite:
		db, err = openSQLite(dsn)
	case DriverMySQL, DriverPostgres:
		db, err = sqlx.Open(driver, dsn)
		if err != nil {
			err = fmt.Errorf("opening %s: %w", driver, err)
		}
	default:
		return nil, fmt.Errorf("unsupported store driver %q: must be sqlite3, mysql, or postgres", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db, driver, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	version, err := SchemaVersion(db, driver)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("reading schema version: %w", err)
	}
	logger.OrNop(log).Debug("database ready", "driver", driver, "schema_version", version)
	return db, nil
}

func openSQLite(dsn string) (*sqlx.DB, error) {
	memory := dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
	if !memory && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	// modernc registers itself as "sqlite".
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if memory {
		db.SetMaxOpenConns(1)
		return db, nil
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	return db, nil
}
