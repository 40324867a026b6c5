package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the picker key bindings. Printable keys are not bound: they
// always go to the query.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Backspace   key.Binding
	ToggleRegex key.Binding
	ToggleView  key.Binding
	ToggleCase  key.Binding
	Favorite    key.Binding
	Delete      key.Binding
	Run         key.Binding
	Insert      key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "previous page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next page"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete character"),
		),
		ToggleRegex: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "toggle regex"),
		),
		// Terminals send C-/ as 0x1f, which bubbletea reports as ctrl+_.
		ToggleView: key.NewBinding(
			key.WithKeys("ctrl+_"),
			key.WithHelp("C-/", "cycle view"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "toggle case"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "toggle favorite"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "remove"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("ret", "run"),
		),
		Insert: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "insert"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
