package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/raiden/internal/db"
)

// SQLKVRepo implements KVRepo on the kv_entries table. It works against
// SQLite, MySQL and PostgreSQL; only the upsert statement differs.
type SQLKVRepo struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLKVRepo creates a new SQLKVRepo.
func NewSQLKVRepo(conn db.DBTX) *SQLKVRepo {
	return &SQLKVRepo{db: conn, now: time.Now}
}

func (r *SQLKVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, r.db.Rebind(`SELECT value FROM kv_entries WHERE store_key = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading kv entry %s: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLKVRepo) Put(ctx context.Context, key, value string) error {
	ts := r.now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(upsertQuery(r.db.DriverName())), key, value, ts); err != nil {
		return fmt.Errorf("writing kv entry %s: %w", key, err)
	}
	return nil
}

func upsertQuery(driverName string) string {
	if driverName == db.DriverMySQL {
		return `INSERT INTO kv_entries (store_key, value, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`
	}
	return `INSERT INTO kv_entries (store_key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (store_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
}
