package app

import (
	"fmt"
	"slices"

	"github.com/mmynk/splitwise/internal/models"
)

// TabKind identifies which view is active.
type TabKind int

const (
	TabPayments TabKind = iota
	TabSettleUp
	TabHistory
)

// Tab is the active view. User is only set for TabSettleUp.
type Tab struct {
	Kind TabKind
	User string
}

// PaymentsTab returns the Payments tab.
func PaymentsTab() Tab { return Tab{Kind: TabPayments} }

// SettleUpTab returns the settle-up tab for user.
func SettleUpTab(user string) Tab { return Tab{Kind: TabSettleUp, User: user} }

// HistoryTab returns the History tab.
func HistoryTab() Tab { return Tab{Kind: TabHistory} }

func (t Tab) String() string {
	switch t.Kind {
	case TabPayments:
		return "Payments"
	case TabSettleUp:
		return fmt.Sprintf("SettleUp(%s)", t.User)
	case TabHistory:
		return "History"
	default:
		return fmt.Sprintf("Tab(%d)", int(t.Kind))
	}
}

// State is the in-memory snapshot rendered by the presentation layer.
// Payments and Balances mirror the store as of the last successful reload.
type State struct {
	// Input buffers
	FriendName   string
	Amount       string
	Description  string
	SettleAmount string

	// SettlingWith is the friend being settled with, empty when none.
	SettlingWith string

	Payments []models.Payment
	Balances []models.Balance

	Tab Tab

	// Err is the last storage failure, shown as a banner until the next
	// non-edit intent.
	Err error
}

func (s State) clone() State {
	s.Payments = slices.Clone(s.Payments)
	s.Balances = slices.Clone(s.Balances)
	return s
}
