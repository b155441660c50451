package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mmynk/splitwise/internal/app"
)

// View implements tea.Model.
func (m Model) View() string {
	s := m.app.State()

	var body string
	switch s.Tab.Kind {
	case app.TabSettleUp:
		body = m.settleUpView(s)
	case app.TabHistory:
		body = m.historyView()
	default:
		body = m.paymentsView(s)
	}

	parts := []string{m.tabBar(s.Tab), body}
	if s.Err != nil {
		parts = append(parts, m.styles.Error.Render(m.fit("Error: "+s.Err.Error())))
	}
	parts = append(parts, m.help.View(m.helpKeys(s.Tab)))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) tabBar(tab app.Tab) string {
	render := func(label string, active bool) string {
		if active {
			return m.styles.ActiveTab.Render(label)
		}
		return m.styles.InactiveTab.Render(label)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		render("Payments", tab.Kind != app.TabHistory),
		" ",
		render("History", tab.Kind == app.TabHistory),
	)
	return lipgloss.NewStyle().MarginBottom(1).Render(bar)
}

func (m Model) paymentsView(s app.State) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Split a Payment"))
	b.WriteString("\n")
	b.WriteString(m.field("Name", m.name.View()))
	b.WriteString(m.field("Amount", m.amount.View()))
	b.WriteString(m.field("Description", m.description.View()))
	b.WriteString(m.styles.Hint.Render("enter to split the payment in half"))
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Balances:"))
	b.WriteString("\n")
	if len(s.Balances) == 0 {
		b.WriteString(m.styles.Row.Render(m.styles.Hint.Render("No balances yet.")))
		b.WriteString("\n")
	}
	for i, bal := range s.Balances {
		line := m.fit(BalanceLine(bal))
		if m.focus == focusBalances && i == m.cursor {
			b.WriteString(m.styles.SelectedRow.Render("> " + line + "  [Settle Up]"))
		} else {
			b.WriteString(m.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) settleUpView(s app.State) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Settle Up with %s", s.Tab.User)))
	b.WriteString("\n")
	if bal, ok := m.app.BalanceFor(s.Tab.User); ok {
		b.WriteString(m.styles.Hint.Render("Currently: " + BalanceStatus(bal.Amount)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.field("Amount", m.settle.View()))
	b.WriteString(m.styles.Hint.Render("enter to confirm, esc to cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) historyView() string {
	return m.styles.Title.Render("History") + "\n" + m.history.View() + "\n"
}

func (m Model) historyContent(s app.State) string {
	if len(s.Payments) == 0 {
		return m.styles.Hint.Render("No payments yet.")
	}

	lines := make([]string, len(s.Payments))
	for i, p := range s.Payments {
		lines[i] = m.fit(PaymentLine(p))
	}
	return strings.Join(lines, "\n")
}

func (m Model) field(label, input string) string {
	return m.styles.Label.Render(label) + input + "\n"
}

// fit truncates line to the window width once the size is known.
func (m Model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return ansi.Truncate(line, max(m.width-4, 1), "…")
}

// helpKeys enables only the bindings that do something on tab.
func (m Model) helpKeys(tab app.Tab) keyMap {
	k := m.keys
	onPayments := tab.Kind == app.TabPayments
	onSettle := tab.Kind == app.TabSettleUp
	onHistory := tab.Kind == app.TabHistory

	k.Next.SetEnabled(onPayments)
	k.Prev.SetEnabled(onPayments)
	k.Up.SetEnabled(onHistory || (onPayments && m.focus == focusBalances))
	k.Down.SetEnabled(onHistory || (onPayments && m.focus == focusBalances))
	k.Submit.SetEnabled(!onHistory)
	k.Cancel.SetEnabled(onSettle)
	k.Payments.SetEnabled(onHistory)
	k.History.SetEnabled(onPayments)
	return k
}
