// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitwise/internal/models"
)

// Store defines the interface for the expense ledger.
// This abstraction lets the application layer run against SQLite in
// production and against a failing fake in tests.
type Store interface {
	// AddUser returns the ID of the user with the given name, creating the
	// user if it does not exist yet. Calling it twice with the same name
	// returns the same ID.
	AddUser(ctx context.Context, name string) (int64, error)

	// GetUserByName looks up a user by exact name.
	// Returns nil and no error if the user does not exist.
	GetUserByName(ctx context.Context, name string) (*models.User, error)

	// AddPayment records a payment against payeeID.
	AddPayment(ctx context.Context, description string, amount float64, payeeID int64) error

	// SettlePayment records a settlement of amount with the named user as a
	// negated payment. It is a no-op if the user does not exist.
	SettlePayment(ctx context.Context, userName string, amount float64) error

	// GetAllPayments returns every payment with its payee name, in
	// insertion order.
	GetAllPayments(ctx context.Context) ([]models.Payment, error)

	// GetBalances returns the net balance of every user that has at least
	// one payment, ordered by name.
	GetBalances(ctx context.Context) ([]models.Balance, error)

	// Close releases any resources held by the store.
	Close() error
}
