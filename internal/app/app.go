// Package app holds the application state and the update function that
// applies intents to it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitwise/internal/calculator"
	"github.com/mmynk/splitwise/internal/metrics"
	"github.com/mmynk/splitwise/internal/models"
	"github.com/mmynk/splitwise/internal/storage"
)

// splitWays is the number of people a payment is split between: the user
// and one friend.
const splitWays = 2

// App owns the state and mutates it only through Update.
type App struct {
	store   storage.Store
	metrics *metrics.Metrics
	state   State
}

// New creates an App on top of store. Call Load before the first render.
func New(store storage.Store, m *metrics.Metrics) *App {
	if m == nil {
		m = metrics.New()
	}
	return &App{
		store:   store,
		metrics: m,
		state:   State{Tab: PaymentsTab()},
	}
}

// Load fills payments and balances from the store.
func (a *App) Load(ctx context.Context) error {
	if err := a.reload(ctx); err != nil {
		return err
	}
	slog.Info("Ledger loaded", "payments", len(a.state.Payments), "balances", len(a.state.Balances))
	return nil
}

// State returns a copy of the current state.
func (a *App) State() State {
	return a.state.clone()
}

// Update applies intent to the state, calling the store for intents that
// write. Storage failures are recorded in State.Err and never abort.
func (a *App) Update(ctx context.Context, intent Intent) {
	a.metrics.Intents.WithLabelValues(intent.kind()).Inc()

	switch in := intent.(type) {
	case EditFriendName:
		a.state.FriendName = in.Value
	case EditAmount:
		a.state.Amount = in.Value
	case EditDescription:
		a.state.Description = in.Value
	case EditSettleAmount:
		a.state.SettleAmount = in.Value
	case SplitPayment:
		a.state.Err = nil
		a.splitPayment(ctx)
	case BeginSettleUp:
		a.state.Err = nil
		a.state.SettlingWith = in.User
		a.state.SettleAmount = ""
		a.state.Tab = SettleUpTab(in.User)
	case ConfirmSettleUp:
		a.state.Err = nil
		a.confirmSettleUp(ctx)
	case CancelSettleUp:
		a.state.Err = nil
		a.state.SettlingWith = ""
		a.state.SettleAmount = ""
		a.state.Tab = PaymentsTab()
	case SwitchToPayments:
		a.state.Err = nil
		a.state.Tab = PaymentsTab()
	case SwitchToHistory:
		a.state.Err = nil
		a.state.Tab = HistoryTab()
	default:
		panic(fmt.Sprintf("app: unhandled intent %T", intent))
	}
}

func (a *App) splitPayment(ctx context.Context) {
	s := &a.state
	if s.FriendName == "" || s.Amount == "" {
		return
	}

	friendID, err := a.store.AddUser(ctx, s.FriendName)
	if err != nil {
		a.fail("add user", err)
		return
	}

	total, err := calculator.ParseAmount(s.Amount)
	if err != nil {
		// Unparsable amounts are recorded as zero, not rejected.
		slog.Debug("Split amount is not a number, using 0", "input", s.Amount, "error", err)
		total = 0
	}
	share := calculator.SplitEvenly(total, splitWays)

	if err := a.store.AddPayment(ctx, s.Description, share, friendID); err != nil {
		a.fail("add payment", err)
		return
	}
	a.metrics.PaymentsRecorded.WithLabelValues(metrics.KindSplit).Inc()
	slog.Info("Payment split", "friend", s.FriendName, "description", s.Description, "share", share)

	s.FriendName = ""
	s.Amount = ""
	s.Description = ""

	if err := a.reload(ctx); err != nil {
		a.fail("reload", err)
	}
}

func (a *App) confirmSettleUp(ctx context.Context) {
	s := &a.state
	if s.SettlingWith == "" {
		return
	}

	if s.SettleAmount != "" {
		amount, err := calculator.ParseAmount(s.SettleAmount)
		if err != nil {
			// Unparsable amounts settle zero, not rejected.
			slog.Debug("Settle amount is not a number, using 0", "input", s.SettleAmount, "error", err)
			amount = 0
		}

		before := len(s.Payments)
		if err := a.store.SettlePayment(ctx, s.SettlingWith, amount); err != nil {
			a.fail("settle payment", err)
		} else if err := a.reload(ctx); err != nil {
			a.fail("reload", err)
		} else if len(s.Payments) > before {
			a.metrics.PaymentsRecorded.WithLabelValues(metrics.KindSettlement).Inc()
			slog.Info("Settled up", "friend", s.SettlingWith, "amount", amount)
		}
	}

	s.SettlingWith = ""
	s.SettleAmount = ""
	s.Tab = PaymentsTab()
}

// reload replaces payments and balances only if both queries succeed.
func (a *App) reload(ctx context.Context) error {
	payments, err := a.store.GetAllPayments(ctx)
	if err != nil {
		return err
	}
	balances, err := a.store.GetBalances(ctx)
	if err != nil {
		return err
	}
	a.state.Payments = payments
	a.state.Balances = balances
	return nil
}

func (a *App) fail(op string, err error) {
	label := op
	var se *storage.Error
	if errors.As(err, &se) {
		label = se.Op
	}
	a.metrics.StoreErrors.WithLabelValues(label).Inc()
	slog.Error("Store operation failed", "op", op, "error", err)
	a.state.Err = err
}

// BalanceFor returns the balance for name from the current snapshot.
// The second result is false if name has no payments.
func (a *App) BalanceFor(name string) (models.Balance, bool) {
	for _, b := range a.state.Balances {
		if b.UserName == name {
			return b, true
		}
	}
	return models.Balance{}, false
}
