package tui

import (
	"fmt"
	"strconv"

	"github.com/mmynk/splitwise/internal/calculator"
	"github.com/mmynk/splitwise/internal/models"
)

// BalanceStatus describes a balance from the user's point of view.
func BalanceStatus(amount float64) string {
	switch {
	case calculator.IsSettled(amount):
		return "settled"
	case amount > 0:
		return fmt.Sprintf("owes you %.2f", amount)
	default:
		return fmt.Sprintf("you owe %.2f", -amount)
	}
}

// BalanceLine renders one row of the balance list.
func BalanceLine(b models.Balance) string {
	return fmt.Sprintf("%s: %s", b.UserName, BalanceStatus(b.Amount))
}

// PaymentLine renders one row of the history list. Amounts use the
// shortest exact decimal form, so 10.0 prints as "10".
func PaymentLine(p models.Payment) string {
	return fmt.Sprintf("%s: %s (%s)", p.Description, strconv.FormatFloat(p.Amount, 'f', -1, 64), p.PayeeName)
}
