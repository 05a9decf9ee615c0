package session

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps the session record in a SQLite key-value table. It is
// the backend for hosts where a dotfile is not wanted, and `:memory:` makes
// tests hermetic.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStorage opens (or creates) a SQLite database at dbPath.
func NewSQLiteStorage(dbPath string, logger *slog.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS session_entries (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create session table: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		logger: logger.With("component", "session-storage"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Get returns the value for key and whether it exists.
func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	s.logger.Debug("sql", "op", "select", "key", key)

	var value string
	err := s.db.QueryRow(`SELECT value FROM session_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value for key.
func (s *SQLiteStorage) Set(key, value string) error {
	s.logger.Debug("sql", "op", "upsert", "key", key)

	_, err := s.db.Exec(
		`INSERT INTO session_entries (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (s *SQLiteStorage) Delete(key string) error {
	s.logger.Debug("sql", "op", "delete", "key", key)

	if _, err := s.db.Exec(`DELETE FROM session_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
