package tui

import (
	"testing"

	"github.com/mmynk/splitwise/internal/models"
)

func TestBalanceStatus(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{10, "owes you 10.00"},
		{3.456, "owes you 3.46"},
		{-7.5, "you owe 7.50"},
		{0, "settled"},
		{0.001, "settled"},
		{-0.001, "settled"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := BalanceStatus(tt.amount); got != tt.want {
				t.Errorf("BalanceStatus(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestBalanceLine(t *testing.T) {
	got := BalanceLine(models.Balance{UserName: "Bob", Amount: -2})
	if want := "Bob: you owe 2.00"; got != want {
		t.Errorf("BalanceLine = %q, want %q", got, want)
	}
}

func TestPaymentLine(t *testing.T) {
	tests := []struct {
		payment models.Payment
		want    string
	}{
		{models.Payment{Description: "Lunch", Amount: 10, PayeeName: "Bob"}, "Lunch: 10 (Bob)"},
		{models.Payment{Description: "Settlement with Bob", Amount: -10, PayeeName: "Bob"}, "Settlement with Bob: -10 (Bob)"},
		{models.Payment{Description: "Coffee", Amount: 1.75, PayeeName: "Alice"}, "Coffee: 1.75 (Alice)"},
		{models.Payment{Description: "", Amount: 0, PayeeName: "Eve"}, ": 0 (Eve)"},
	}

	for _, tt := range tests {
		if got := PaymentLine(tt.payment); got != tt.want {
			t.Errorf("PaymentLine = %q, want %q", got, tt.want)
		}
	}
}
