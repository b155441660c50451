package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitwise/internal/models"
	"github.com/mmynk/splitwise/internal/storage"
)

// AddPayment persists a new, unsettled payment.
func (s *SQLiteStore) AddPayment(ctx context.Context, description string, amount float64, payeeID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO payments (description, amount, payee_id) VALUES (?, ?, ?)",
		description, amount, payeeID,
	)
	if err != nil {
		return storage.Wrap("add payment", fmt.Errorf("failed to insert payment: %w", err))
	}

	return nil
}

// SettlePayment records a settlement with the named user as a payment of
// -amount. Nothing is written if the user does not exist.
func (s *SQLiteStore) SettlePayment(ctx context.Context, userName string, amount float64) error {
	user, err := s.GetUserByName(ctx, userName)
	if err != nil {
		return err
	}
	if user == nil {
		slog.Debug("Settle up skipped, no such user", "user", userName)
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO payments (description, amount, payee_id, is_settled) VALUES (?, ?, ?, 0)",
		models.SettlementDescription(userName), -amount, user.ID,
	)
	if err != nil {
		return storage.Wrap("settle payment", fmt.Errorf("failed to insert settlement: %w", err))
	}

	return nil
}

// GetAllPayments retrieves every payment joined with its payee name.
func (s *SQLiteStore) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payments.id, payments.description, payments.amount, payments.payee_id, payments.is_settled, users.name
		 FROM payments
		 JOIN users ON payments.payee_id = users.id
		 ORDER BY payments.id`,
	)
	if err != nil {
		return nil, storage.Wrap("get payments", fmt.Errorf("failed to list payments: %w", err))
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.Description, &p.Amount, &p.PayeeID, &p.IsSettled, &p.PayeeName); err != nil {
			return nil, storage.Wrap("get payments", fmt.Errorf("failed to scan payment: %w", err))
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Wrap("get payments", fmt.Errorf("failed to iterate payments: %w", err))
	}

	return payments, nil
}
