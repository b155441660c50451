package models

import "fmt"

// SettlementDescription is the description recorded for a settle-up payment.
func SettlementDescription(userName string) string {
	return fmt.Sprintf("Settlement with %s", userName)
}

// Payment represents one signed amount recorded against a friend.
type Payment struct {
	// ID is the database-assigned identity.
	ID int64

	// Description is the free-text label entered by the user, or
	// "Settlement with {name}" for settle-up payments.
	Description string

	// Amount is the signed share. Splits record half of the entered total,
	// settlements record the negated settle amount.
	Amount float64

	// PayeeID references the User this payment is recorded against.
	PayeeID int64

	// IsSettled is persisted as false and not interpreted.
	IsSettled bool

	// PayeeName is filled in by the read path from a join on users.
	// It is never written independently.
	PayeeName string
}

// Balance is the net sum of one friend's payment amounts.
type Balance struct {
	UserName string
	Amount   float64
}
