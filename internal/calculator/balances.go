package calculator

import (
	"math"
	"sort"

	"github.com/mmynk/splitwise/internal/models"
)

// settledEpsilon is the tolerance below which a balance counts as settled.
// Amounts are displayed with two decimals, so anything under half a cent
// would render as zero.
const settledEpsilon = 0.005

// NetBalances aggregates payments into one balance per payee, ordered by
// name. Payees without payments cannot appear since the input is the
// payments themselves.
func NetBalances(payments []models.Payment) []models.Balance {
	totals := make(map[string]float64)
	for _, p := range payments {
		totals[p.PayeeName] += p.Amount
	}

	balances := make([]models.Balance, 0, len(totals))
	for name, amount := range totals {
		balances = append(balances, models.Balance{UserName: name, Amount: amount})
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].UserName < balances[j].UserName
	})

	return balances
}

// IsSettled reports whether a balance is zero for display purposes.
func IsSettled(amount float64) bool {
	return math.Abs(amount) < settledEpsilon
}
