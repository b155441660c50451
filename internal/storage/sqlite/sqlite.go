// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitwise/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens the database at dbPath, creating the file and its parent
// directories if needed, and ensures the schema exists.
// Every failure is returned as a *storage.Error.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storage.Wrap("open", fmt.Errorf("failed to create database directory: %w", err))
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, storage.Wrap("open", fmt.Errorf("failed to open database: %w", err))
	}

	// One writer, one reader, same process. A single connection also keeps
	// the foreign_keys pragma in effect for every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, storage.Wrap("open", fmt.Errorf("failed to enable foreign keys: %w", err))
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, storage.Wrap("create schema", fmt.Errorf("failed to run migrations: %w", err))
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
