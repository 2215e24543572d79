package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	load      key.Binding
	connTest  key.Binding
	delete    key.Binding
	prevMonth key.Binding
	nextMonth key.Binding
	copyDebug key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
	right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save / load")),
	tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	load:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load date")),
	connTest:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "connection test")),
	delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete block")),
	prevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
	nextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
	copyDebug: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy diagnostics")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		out += b.Help().Key + ": " + b.Help().Desc
	}
	return out
}
