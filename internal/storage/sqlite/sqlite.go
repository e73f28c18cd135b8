// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. For two keys and a roster that fits in memory that is plenty.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/employee-dashboard/internal/storage"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at path, creates the kv table if it does
// not already exist, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS runs on every startup.
	//
	// Schema:
	//   key   — entry name, e.g. "auth_token" or "employees"
	//   value — the serialized entry, always written whole
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Get fetches the value stored under key.
//
// QueryRow returns exactly one row. If the query finds no match the
// error surfaces only when Scan is called, as sql.ErrNoRows, which we
// translate into storage.ErrKeyNotFound so callers never see driver
// sentinels.
func (s *SQLite) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.Db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ? LIMIT 1", key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrKeyNotFound
		}
		return "", fmt.Errorf("Get: scan %q: %w", key, err)
	}

	return value, nil
}

// Set upserts value under key.
//
// ON CONFLICT ... DO UPDATE turns the insert into an update when the key
// already exists, so the whole value is replaced in one statement.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	stmt, err := s.Db.PrepareContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)
	if err != nil {
		return fmt.Errorf("Set: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, key, value); err != nil {
		return fmt.Errorf("Set: exec %q: %w", key, err)
	}

	return nil
}

// Delete removes key. A DELETE that matches no row is not an error.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	stmt, err := s.Db.PrepareContext(ctx, "DELETE FROM kv WHERE key = ?")
	if err != nil {
		return fmt.Errorf("Delete: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, key); err != nil {
		return fmt.Errorf("Delete: exec %q: %w", key, err)
	}

	return nil
}

// Close closes the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
