package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/splitwise/internal/models"
)

func TestNetBalances(t *testing.T) {
	payments := []models.Payment{
		{Description: "Lunch", Amount: 10, PayeeName: "Bob"},
		{Description: "Taxi", Amount: 4.5, PayeeName: "Alice"},
		{Description: "Settlement with Bob", Amount: -10, PayeeName: "Bob"},
		{Description: "Cinema", Amount: 6, PayeeName: "Alice"},
	}

	got := NetBalances(payments)
	if len(got) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(got))
	}

	if got[0].UserName != "Alice" || math.Abs(got[0].Amount-10.5) > 1e-9 {
		t.Errorf("got[0] = %+v, want Alice 10.5", got[0])
	}
	if got[1].UserName != "Bob" || got[1].Amount != 0 {
		t.Errorf("got[1] = %+v, want Bob 0", got[1])
	}
}

func TestNetBalancesEmpty(t *testing.T) {
	if got := NetBalances(nil); len(got) != 0 {
		t.Errorf("expected no balances, got %v", got)
	}
}

func TestIsSettled(t *testing.T) {
	tests := []struct {
		amount float64
		want   bool
	}{
		{0, true},
		{0.004, true},
		{-0.004, true},
		{0.01, false},
		{-0.01, false},
		{10, false},
	}

	for _, tt := range tests {
		if got := IsSettled(tt.amount); got != tt.want {
			t.Errorf("IsSettled(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}
