package kv

import (
	"database/sql"
	"fmt"
)

// SQLite stores each key as one row of the kv_store table created by db.ApplyMigrations.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

func (s *SQLite) SetMany(values map[string]string) error {
	return s.Replace(values)
}

func (s *SQLite) Delete(keys ...string) error {
	return s.Replace(nil, keys...)
}

// Replace runs the deletes and upserts in a single transaction.
func (s *SQLite) Replace(values map[string]string, deletes ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin kv write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, k := range deletes {
		if _, err := tx.Exec(`DELETE FROM kv_store WHERE key = ?`, k); err != nil {
			return fmt.Errorf("delete %q: %w", k, err)
		}
	}
	for k, v := range values {
		if _, err := tx.Exec(`
INSERT INTO kv_store(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, k, v); err != nil {
			return fmt.Errorf("set %q: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit kv write: %w", err)
	}
	return nil
}
