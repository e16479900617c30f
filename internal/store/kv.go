// Package store persists budget data in a SQLite-backed key-value store.
//
// Every slot is written as a single atomic value replacement, last write
// wins. Reads tolerate both absence (first run) and malformed content:
// corruption is reported as a diagnostic wrapping ErrMalformedData, never
// as a fatal error.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Sentinel errors surfaced to the presentation layer.
var (
	// ErrDuplicateProfile is returned when a create or rename collides
	// with an existing profile name (case-sensitive exact match).
	ErrDuplicateProfile = errors.New("profile already exists")

	// ErrCannotDeleteActiveProfile is returned when delete targets the
	// active profile.
	ErrCannotDeleteActiveProfile = errors.New("cannot delete the active profile")

	// ErrMalformedData wraps parse failures of persisted slots. The slot
	// is treated as absent; the error exists for diagnostics only.
	ErrMalformedData = errors.New("malformed persisted data")
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Store is the budget planner's durable key-value store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get reads the value at key. The second result is false when the slot
// is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}
	return value, true, nil
}

// Put writes value at key, replacing any previous value.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

// Delete removes the slot at key. Deleting an absent slot is a no-op.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// Move transfers the values at the given [old, new] key pairs inside one
// transaction. A pair whose source slot is absent is skipped: the
// destination stays untouched rather than being created empty. Either
// every pair moves or none do.
func (s *Store) Move(pairs ...[2]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range pairs {
		oldKey, newKey := p[0], p[1]

		var value string
		err := tx.QueryRow("SELECT value FROM kv WHERE key = ?", oldKey).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %q: %w", oldKey, err)
		}

		if _, err := tx.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", newKey, value); err != nil {
			return fmt.Errorf("writing %q: %w", newKey, err)
		}
		if _, err := tx.Exec("DELETE FROM kv WHERE key = ?", oldKey); err != nil {
			return fmt.Errorf("deleting %q: %w", oldKey, err)
		}
	}

	return tx.Commit()
}
