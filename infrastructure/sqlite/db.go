package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a single Bun connection. The app has exactly one logical writer
// (every mutation runs to completion on the event path that triggered it),
// so one serialized handle is enough.
type DB struct {
	SQL *sql.DB
	Bun *bun.DB
}

// OpenDB initializes the sqlite handle with an immediate write lock and a
// busy timeout so concurrent test processes do not trip over each other.
func OpenDB(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", path)
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	sqldb.SetConnMaxLifetime(15 * time.Minute)

	return &DB{
		SQL: sqldb,
		Bun: bun.NewDB(sqldb, sqlitedialect.New()),
	}, nil
}

// Close closes the underlying handle.
func (db *DB) Close() error {
	if db == nil || db.Bun == nil {
		return nil
	}
	return db.Bun.Close()
}
