package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPanel  = panelStyle.BorderForeground(lipgloss.Color("63"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	labelStyle    = lipgloss.NewStyle().Width(7)
	debugStyle    = lipgloss.NewStyle().Faint(true)
	calendarStyle = monthStyles{
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		today:    lipgloss.NewStyle().Underline(true),
		selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
	}
)
