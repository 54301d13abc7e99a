// Package sqlite implements ports.KV on a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// KV is a SQLite-backed key-value store.
type KV struct {
	db *sql.DB
}

// Open opens the database at path and creates the slots table if needed.
// The special path ":memory:" opens a private in-memory database.
func Open(path string) (*KV, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := "file::memory:?_pragma=busy_timeout(5000)"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// An in-memory database lives as long as its connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &KV{db: db}, nil
}

// Get returns the value stored under key.
func (s *KV) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("slot %q: %w", key, domain.ErrStorageAbsent)
	}

	if err != nil {
		return "", fmt.Errorf("get slot %q: %w", key, err)
	}

	return value, nil
}

// Set upserts key.
func (s *KV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		    value = excluded.value,
		    updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("set slot %q: %w", key, err)
	}

	return nil
}

// Delete removes key.
func (s *KV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}

	return nil
}

// Clear removes every slot.
func (s *KV) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots`); err != nil {
		return fmt.Errorf("clear slots: %w", err)
	}

	return nil
}

// Close releases the underlying connection.
func (s *KV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *KV) Name() string {
	return "storage"
}

// Check implements ports.HealthChecker.
func (s *KV) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
