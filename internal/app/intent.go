package app

// Intent is a user action the update loop knows how to handle.
// The set is closed: only the types in this file implement it.
type Intent interface {
	isIntent()
	// kind is the metrics label for the intent.
	kind() string
}

// EditFriendName overwrites the friend-name buffer.
type EditFriendName struct{ Value string }

// EditAmount overwrites the amount buffer.
type EditAmount struct{ Value string }

// EditDescription overwrites the description buffer.
type EditDescription struct{ Value string }

// EditSettleAmount overwrites the settle-amount buffer.
type EditSettleAmount struct{ Value string }

// SplitPayment records half of the entered amount against the entered friend.
type SplitPayment struct{}

// BeginSettleUp opens the settle-up view for User.
type BeginSettleUp struct{ User string }

// ConfirmSettleUp records the entered settle amount and returns to Payments.
type ConfirmSettleUp struct{}

// CancelSettleUp returns to Payments without recording anything.
type CancelSettleUp struct{}

// SwitchToPayments shows the Payments tab.
type SwitchToPayments struct{}

// SwitchToHistory shows the History tab.
type SwitchToHistory struct{}

func (EditFriendName) isIntent()   {}
func (EditAmount) isIntent()       {}
func (EditDescription) isIntent()  {}
func (EditSettleAmount) isIntent() {}
func (SplitPayment) isIntent()     {}
func (BeginSettleUp) isIntent()    {}
func (ConfirmSettleUp) isIntent()  {}
func (CancelSettleUp) isIntent()   {}
func (SwitchToPayments) isIntent() {}
func (SwitchToHistory) isIntent()  {}

func (EditFriendName) kind() string   { return "edit_friend_name" }
func (EditAmount) kind() string       { return "edit_amount" }
func (EditDescription) kind() string  { return "edit_description" }
func (EditSettleAmount) kind() string { return "edit_settle_amount" }
func (SplitPayment) kind() string     { return "split_payment" }
func (BeginSettleUp) kind() string    { return "begin_settle_up" }
func (ConfirmSettleUp) kind() string  { return "confirm_settle_up" }
func (CancelSettleUp) kind() string   { return "cancel_settle_up" }
func (SwitchToPayments) kind() string { return "switch_to_payments" }
func (SwitchToHistory) kind() string  { return "switch_to_history" }
