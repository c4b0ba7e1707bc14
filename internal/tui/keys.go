package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	AddRow    key.Binding
	RemoveAll key.Binding
	Reset     key.Binding
	Theme     key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Next:      key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row above")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row below")),
	AddRow:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add channel")),
	RemoveAll: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove added channels")),
	Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset channels")),
	Theme:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "cycle theme")),
	ScrollUp:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	ScrollDn:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.AddRow, k.RemoveAll, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.AddRow, k.RemoveAll, k.Reset},
		{k.Theme, k.ScrollUp, k.ScrollDn, k.Help, k.Quit},
	}
}
