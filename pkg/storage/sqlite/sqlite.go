package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Scheme is the DATABASE_URL prefix that selects the embedded store.
const Scheme = "sqlite://"

// IsDSN reports whether dsn points at a sqlite file rather than postgres.
func IsDSN(dsn string) bool {
	return strings.HasPrefix(dsn, Scheme)
}

// Open opens (and creates if needed) a sqlite database and pings it.
// Accepts a bare path, ":memory:" or a sqlite:// URL.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	path := strings.TrimPrefix(dsn, Scheme)
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite serialises writers anyway; one connection also keeps ":memory:" a single database
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
