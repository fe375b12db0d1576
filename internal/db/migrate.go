package db

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/alexanderramin/raiden/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var Migrations embed.FS

// Migrate applies pending goose migrations from the embedded files.
// Re-running it on an up-to-date database is a no-op.
func Migrate(db *sqlx.DB, driver string, log *logger.Logger) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	goose.SetLogger(gooseLogger{log: logger.OrNop(log)})

	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sub migrations fs: %w", err)
	}

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)
	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SchemaVersion reports the highest applied migration.
func SchemaVersion(db *sqlx.DB, driver string) (int64, error) {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return 0, err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.GetDBVersion(db.DB)
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3", nil
	case DriverMySQL:
		return "mysql", nil
	case DriverPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unknown driver for goose dialect: %q", driver)
	}
}

// gooseLogger routes goose progress lines to the debug log so they stay off
// command output.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Debug(fmt.Sprintf(format, v...), "component", "migrate")
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.SugaredLogger.Fatalf(format, v...)
}
