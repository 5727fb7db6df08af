package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Export key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "scroll")),
		Down:   key.NewBinding(key.WithKeys("down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "pan")),
		Right:  key.NewBinding(key.WithKeys("right")),
		Next:   key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "next page")),
		Prev:   key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "previous page")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export page")),
		Quit:   key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer. Down and Right share the
// help entry of Up and Left.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Next, k.Prev, k.Export, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Next, k.Prev},
		{k.Export, k.Quit},
	}
}
