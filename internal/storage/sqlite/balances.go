package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/splitwise/internal/models"
	"github.com/mmynk/splitwise/internal/storage"
)

// GetBalances sums payment amounts per user. Users without payments do not
// appear in the result.
func (s *SQLiteStore) GetBalances(ctx context.Context) ([]models.Balance, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.name, SUM(p.amount) AS balance
		 FROM payments p
		 JOIN users u ON p.payee_id = u.id
		 GROUP BY u.name
		 ORDER BY u.name`,
	)
	if err != nil {
		return nil, storage.Wrap("get balances", fmt.Errorf("failed to get balances: %w", err))
	}
	defer rows.Close()

	var balances []models.Balance
	for rows.Next() {
		var b models.Balance
		if err := rows.Scan(&b.UserName, &b.Amount); err != nil {
			return nil, storage.Wrap("get balances", fmt.Errorf("failed to scan balance: %w", err))
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Wrap("get balances", fmt.Errorf("failed to iterate balances: %w", err))
	}

	return balances, nil
}
