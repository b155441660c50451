// Package tui is the terminal front end: a Bubble Tea program that renders
// the application state and turns key presses into intents.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/splitwise/internal/app"
)

// focus is the element of the Payments view that receives keys.
type focus int

const (
	focusName focus = iota
	focusAmount
	focusDescription
	focusBalances
	focusCount
)

// Model adapts an *app.App to Bubble Tea. The app state is the source of
// truth; the text inputs are re-synced from it after every intent.
type Model struct {
	ctx    context.Context
	app    *app.App
	keys   keyMap
	help   help.Model
	styles Styles

	name        textinput.Model
	amount      textinput.Model
	description textinput.Model
	settle      textinput.Model
	history     viewport.Model

	focus  focus
	cursor int
	width  int
	height int
}

// New builds the root model for a.
func New(ctx context.Context, a *app.App) Model {
	m := Model{
		ctx:         ctx,
		app:         a,
		keys:        defaultKeyMap(),
		help:        help.New(),
		styles:      defaultStyles(),
		name:        newInput("Name"),
		amount:      newInput("Amount"),
		description: newInput("Description"),
		settle:      newInput("Amount to settle"),
		history:     viewport.New(0, 10),
	}
	m.sync()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 0 // unlimited; views truncate on display only
	return ti
}

// Run launches the Bubble Tea program and blocks until the user quits or
// ctx is cancelled. Cancellation is a normal exit.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.Width = msg.Width
		m.history.Height = max(msg.Height-8, 3)
		m.sync()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.app.State().Tab.Kind {
		case app.TabSettleUp:
			return m.updateSettleUp(msg)
		case app.TabHistory:
			return m.updateHistory(msg)
		default:
			return m.updatePayments(msg)
		}
	}

	// Cursor blink and other messages go to whichever input is focused.
	return m.forward(msg)
}

func (m Model) updatePayments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.History):
		m.dispatch(app.SwitchToHistory{})
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
		m.sync()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.sync()
		return m, textinput.Blink
	case m.focus == focusBalances && key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case m.focus == focusBalances && key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.app.State().Balances)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.focus == focusBalances {
			balances := m.app.State().Balances
			if m.cursor < len(balances) {
				m.dispatch(app.BeginSettleUp{User: balances[m.cursor].UserName})
			}
			return m, textinput.Blink
		}
		m.dispatch(app.SplitPayment{})
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) updateSettleUp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.dispatch(app.ConfirmSettleUp{})
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.dispatch(app.CancelSettleUp{})
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Payments) {
		m.dispatch(app.SwitchToPayments{})
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// forward hands msg to the focused text input and turns any change of its
// value into the matching edit intent.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	s := m.app.State()

	switch {
	case s.Tab.Kind == app.TabSettleUp:
		m.settle, cmd = m.settle.Update(msg)
		if v := m.settle.Value(); v != s.SettleAmount {
			m.dispatch(app.EditSettleAmount{Value: v})
		}
	case s.Tab.Kind != app.TabPayments:
		return m, nil
	case m.focus == focusName:
		m.name, cmd = m.name.Update(msg)
		if v := m.name.Value(); v != s.FriendName {
			m.dispatch(app.EditFriendName{Value: v})
		}
	case m.focus == focusAmount:
		m.amount, cmd = m.amount.Update(msg)
		if v := m.amount.Value(); v != s.Amount {
			m.dispatch(app.EditAmount{Value: v})
		}
	case m.focus == focusDescription:
		m.description, cmd = m.description.Update(msg)
		if v := m.description.Value(); v != s.Description {
			m.dispatch(app.EditDescription{Value: v})
		}
	}

	return m, cmd
}

// dispatch applies intent and re-syncs the widgets from the new state.
func (m *Model) dispatch(intent app.Intent) {
	m.app.Update(m.ctx, intent)
	m.sync()
}

// sync copies buffers, focus and list content from the app state into the
// widgets.
func (m *Model) sync() {
	s := m.app.State()

	setValue(&m.name, s.FriendName)
	setValue(&m.amount, s.Amount)
	setValue(&m.description, s.Description)
	setValue(&m.settle, s.SettleAmount)

	if m.cursor >= len(s.Balances) {
		m.cursor = max(len(s.Balances)-1, 0)
	}

	inputs := []*textinput.Model{&m.name, &m.amount, &m.description, &m.settle}
	for _, in := range inputs {
		in.Blur()
	}
	switch s.Tab.Kind {
	case app.TabSettleUp:
		m.settle.Focus()
	case app.TabPayments:
		if m.focus < focusBalances {
			inputs[m.focus].Focus()
		}
	}

	m.history.SetContent(m.historyContent(s))
}

func setValue(in *textinput.Model, v string) {
	if in.Value() != v {
		in.SetValue(v)
	}
}
