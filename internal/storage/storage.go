// Package storage is the console's durable local store: a small SQLite-backed
// key/value table. It holds UI preferences and the persisted session, never
// catalog data; the remote API owns that.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Well-known keys.
const (
	KeyTheme         = "theme"
	KeyLoggedInUser  = "loggedInUser"
	KeySessionSecret = "session_secret"
)

// Store is a durable key/value store scoped to the local profile.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	// Set pragmas for performance and correctness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// SessionSecret returns the key used to sign the console's own session
// cookies, generating and storing one on first use. INSERT OR IGNORE plus
// re-SELECT avoids a TOCTOU race on concurrent startup.
func (s *Store) SessionSecret(ctx context.Context, generate func() (string, error)) (string, error) {
	candidate, err := generate()
	if err != nil {
		return "", fmt.Errorf("generating session secret: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		KeySessionSecret, candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing session secret: %w", err)
	}

	var secret string
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, KeySessionSecret,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("querying session secret: %w", err)
	}
	return secret, nil
}
