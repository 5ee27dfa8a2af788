// Package keymap holds the UI key bindings.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap is a map of key bindings for the UI.
type KeyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Help     key.Binding
	UpDown   key.Binding
	Select   key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Refresh  key.Binding
}

// DefaultKeyMap returns the default key map.
func DefaultKeyMap() *KeyMap {
	km := new(KeyMap)

	km.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)

	km.Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	)

	km.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	)

	km.UpDown = key.NewBinding(
		key.WithKeys("up", "down", "k", "j"),
		key.WithHelp("↑↓", "navigate"),
	)

	km.Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)

	km.PrevWeek = key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←", "previous week"),
	)

	km.NextWeek = key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→", "next week"),
	)

	km.Today = key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	)

	km.Add = key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add slot"),
	)

	km.Edit = key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit slot"),
	)

	km.Delete = key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "delete slot"),
	)

	km.Refresh = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	)

	return km
}
