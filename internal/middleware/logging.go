// Package middleware wraps a storage.Store with cross-cutting behavior.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/splitwise/internal/models"
	"github.com/mmynk/splitwise/internal/storage"
)

// Ensure LoggingStore implements storage.Store
var _ storage.Store = (*LoggingStore)(nil)

// LoggingStore logs every store call with its duration and outcome.
// Successful calls log at debug, failures at error.
type LoggingStore struct {
	next storage.Store
}

// WithLogging wraps next.
func WithLogging(next storage.Store) *LoggingStore {
	return &LoggingStore{next: next}
}

func logCall(op string, start time.Time, err error, attrs ...any) {
	args := append([]any{"op", op, "duration_ms", time.Since(start).Milliseconds()}, attrs...)
	if err != nil {
		slog.Error("Store call failed", append(args, "error", err)...)
		return
	}
	slog.Debug("Store call ok", args...)
}

// AddUser logs and delegates to the wrapped store.
func (s *LoggingStore) AddUser(ctx context.Context, name string) (int64, error) {
	start := time.Now()
	id, err := s.next.AddUser(ctx, name)
	logCall("add user", start, err, "name", name, "user_id", id)
	return id, err
}

// GetUserByName logs and delegates to the wrapped store.
func (s *LoggingStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	start := time.Now()
	user, err := s.next.GetUserByName(ctx, name)
	logCall("get user", start, err, "name", name, "found", user != nil)
	return user, err
}

// AddPayment logs and delegates to the wrapped store.
func (s *LoggingStore) AddPayment(ctx context.Context, description string, amount float64, payeeID int64) error {
	start := time.Now()
	err := s.next.AddPayment(ctx, description, amount, payeeID)
	logCall("add payment", start, err, "description", description, "amount", amount, "payee_id", payeeID)
	return err
}

// SettlePayment logs and delegates to the wrapped store.
func (s *LoggingStore) SettlePayment(ctx context.Context, userName string, amount float64) error {
	start := time.Now()
	err := s.next.SettlePayment(ctx, userName, amount)
	logCall("settle payment", start, err, "user", userName, "amount", amount)
	return err
}

// GetAllPayments logs and delegates to the wrapped store.
func (s *LoggingStore) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	start := time.Now()
	payments, err := s.next.GetAllPayments(ctx)
	logCall("get payments", start, err, "count", len(payments))
	return payments, err
}

// GetBalances logs and delegates to the wrapped store.
func (s *LoggingStore) GetBalances(ctx context.Context) ([]models.Balance, error) {
	start := time.Now()
	balances, err := s.next.GetBalances(ctx)
	logCall("get balances", start, err, "count", len(balances))
	return balances, err
}

// Close closes the wrapped store.
func (s *LoggingStore) Close() error {
	start := time.Now()
	err := s.next.Close()
	logCall("close", start, err)
	return err
}
