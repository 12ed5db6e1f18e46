// Package cache keeps downloaded meetsetup.xml files on disk together with a
// SQLite index of what was downloaded from where, and how decoding went.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Index is the SQLite index of the cache directory.
type Index struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens or creates the index database at path and applies pending
// migrations. Use ":memory:" in tests.
func Open(path string, logger *slog.Logger) (*Index, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	// _busy_timeout lets concurrent download workers wait for each other.
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to index: %w", err)
	}
	if path == ":memory:" {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	idx := &Index{db: db, logger: logger}
	if err := idx.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating index: %w", err)
	}
	return idx, nil
}

func (i *Index) Close() error {
	return i.db.Close()
}

// Ping checks the index is reachable.
func (i *Index) Ping(ctx context.Context) error {
	return i.db.PingContext(ctx)
}
