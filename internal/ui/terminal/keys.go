package terminal

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the host keybindings.
type KeyMap struct {
	NewTab      key.Binding
	NewWindow   key.Binding
	CloseWindow key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTab, k.NewWindow, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewTab, k.NewWindow, k.CloseWindow},
		{k.Cancel},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new tab"),
		),
		NewWindow: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "new window"),
		),
		CloseWindow: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close window"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
