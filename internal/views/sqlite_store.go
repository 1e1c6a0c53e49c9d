package views

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
//
// The increment is a single upsert guarded by a mutex, replacing the
// original site's unsynchronized read-modify-write over a JSON file that
// could lose updates under concurrent requests.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore creates a new SQLite-based view store.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS views (
		slug TEXT PRIMARY KEY,
		count INTEGER NOT NULL DEFAULT 0
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get returns the count for slug, zero when the slug has never been viewed.
func (s *SQLiteStore) Get(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT count FROM views WHERE slug = ?", slug).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query views: %w", err)
	}
	return count, nil
}

// Increment adds one view for slug and returns the new count.
func (s *SQLiteStore) Increment(ctx context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO views (slug, count) VALUES (?, 1) ON CONFLICT(slug) DO UPDATE SET count = count + 1",
		slug,
	)
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT count FROM views WHERE slug = ?", slug).Scan(&count); err != nil {
		return 0, fmt.Errorf("read incremented count: %w", err)
	}
	return count, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
