package tui

import "github.com/charmbracelet/lipgloss"

var (
	green = lipgloss.Color("#1AB34D")
	white = lipgloss.Color("#FFFFFF")
	gray  = lipgloss.Color("#828282")
	red   = lipgloss.Color("#FF5F5F")
)

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Title       lipgloss.Style
	Section     lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Label       lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Hint        lipgloss.Style
	Error       lipgloss.Style
	App         lipgloss.Style
}

func defaultStyles() Styles {
	tab := lipgloss.NewStyle().Padding(0, 2)
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(green).Bold(true).MarginBottom(1),
		Section:     lipgloss.NewStyle().Bold(true).MarginTop(1),
		ActiveTab:   tab.Background(green).Foreground(white).Bold(true),
		InactiveTab: tab.Foreground(gray),
		Label:       lipgloss.NewStyle().Width(14),
		Row:         lipgloss.NewStyle().PaddingLeft(2),
		SelectedRow: lipgloss.NewStyle().Foreground(green).Bold(true),
		Hint:        lipgloss.NewStyle().Foreground(gray),
		Error:       lipgloss.NewStyle().Foreground(red).Bold(true),
		App:         lipgloss.NewStyle().Padding(1, 2),
	}
}
