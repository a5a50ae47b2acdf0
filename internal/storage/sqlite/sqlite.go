/*
Package sqlite provides a SQLite-backed InputStore.

KEY TABLES:

	inputs: one JSON document of raw calculator inputs per key

CONCURRENCY:

	Uses sync.RWMutex for thread-safety. The database is opened in WAL mode so
	readers do not block each other.

USAGE:

	store, err := sqlite.New("./data/coastfire.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/storage"
)

// Store implements storage.InputStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS inputs (
		key TEXT PRIMARY KEY,
		data_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save upserts inputs under key.
func (s *Store) Save(ctx context.Context, key string, inputs domain.RawInputs) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	data, err := storage.Encode(inputs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO inputs (key, data_json, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data_json = excluded.data_json, updated_at = excluded.updated_at
	`, key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save inputs %q: %w", key, err)
	}
	return nil
}

// Load returns the inputs stored under key or storage.ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) (domain.RawInputs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data_json FROM inputs WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RawInputs{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.RawInputs{}, fmt.Errorf("failed to load inputs %q: %w", key, err)
	}
	return storage.Decode([]byte(data))
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM inputs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete inputs %q: %w", key, err)
	}
	return nil
}
