// Package keys defines the demo's key bindings.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all bindings for the card wall demo.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Flip  key.Binding
	Copy  key.Binding
	Fonts key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// Default is the demo key map.
var Default = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous card"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next card"),
	),
	Flip: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "flip card"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy card text"),
	),
	Fonts: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish font load"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Flip, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Flip},
		{k.Copy, k.Fonts, k.Quit},
	}
}
