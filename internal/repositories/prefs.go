// package repositories provides the persistence layer backing the session's
// preference store contract.
package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// PrefRepository implements session.Store over a local SQLite database.
//
// One row per key; Set upserts, so last write wins. The database file scopes
// the store to a single installation, matching the one-writer persistence
// model of the session.
type PrefRepository struct {
	db *sql.DB
}

// NewPrefRepository creates a PrefRepository and ensures its schema exists.
func NewPrefRepository(db *sql.DB) (*PrefRepository, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create prefs table: %w", err)
	}

	return &PrefRepository{db: db}, nil
}

// Get returns the stored value for key and whether the key was present.
func (r *PrefRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query pref %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes key to value, replacing any previous value.
func (r *PrefRepository) Set(key, value string) error {
	query := `
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set pref %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (r *PrefRepository) Remove(key string) error {
	if _, err := r.db.Exec("DELETE FROM prefs WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove pref %s: %w", key, err)
	}
	return nil
}

// Keys lists all stored preference keys, for diagnostics.
func (r *PrefRepository) Keys() ([]string, error) {
	rows, err := r.db.Query("SELECT key FROM prefs ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list prefs: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan pref key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return keys, nil
}
