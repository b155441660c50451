package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/splitwise/internal/models"
	"github.com/mmynk/splitwise/internal/storage"
)

// AddUser returns the ID of the named user, inserting the user first if it
// does not exist.
func (s *SQLiteStore) AddUser(ctx context.Context, name string) (int64, error) {
	user, err := s.GetUserByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if user != nil {
		return user.ID, nil
	}

	res, err := s.db.ExecContext(ctx, "INSERT INTO users (name) VALUES (?)", name)
	if err != nil {
		return 0, storage.Wrap("add user", fmt.Errorf("failed to insert user: %w", err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storage.Wrap("add user", fmt.Errorf("failed to read user id: %w", err))
	}

	return id, nil
}

// GetUserByName retrieves a user by exact name.
func (s *SQLiteStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM users WHERE name = ?",
		name,
	).Scan(&user.ID, &user.Name)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, storage.Wrap("get user", fmt.Errorf("failed to get user by name: %w", err))
	}

	return user, nil
}
