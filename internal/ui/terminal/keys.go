package terminal

import "github.com/charmbracelet/bubbles/key"

// keyMap defines keybindings for the drawer host.
type keyMap struct {
	FocusNext  key.Binding
	FocusPrev  key.Binding
	EdgeToggle key.Binding
	SingleOpen key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.EdgeToggle, k.SingleOpen, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev},
		{k.EdgeToggle, k.SingleOpen},
		{k.Cancel, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next edge"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous edge"),
		),
		EdgeToggle: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "show/hide top, right, bottom, left"),
		),
		SingleOpen: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "single-open on focused edge"),
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
