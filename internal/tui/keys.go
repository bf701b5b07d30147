package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the specimen view.
type KeyMap struct {
	AddLine key.Binding
	CopyAll key.Binding
	Clear   key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddLine: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add line"),
		),
		CopyAll: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddLine, k.CopyAll, k.Clear, k.Menu, k.Quit}
}
