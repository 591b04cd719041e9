package demo

import "charm.land/bubbles/v2/key"

// KeyMap defines all global keybindings.
type KeyMap struct {
	Quit      key.Binding
	View1     key.Binding
	View2     key.Binding
	View3     key.Binding
	View4     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Curve     key.Binding
	PrevPoint key.Binding
	NextPoint key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		View1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "line"),
		),
		View2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "bars"),
		),
		View3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "stats"),
		),
		View4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "inspect"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Curve: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle curve"),
		),
		PrevPoint: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev point"),
		),
		NextPoint: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next point"),
		),
	}
}

// ShortHelp returns keybindings to show in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.View1, k.View2, k.View3, k.View4, k.Curve, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.View1, k.View2, k.View3, k.View4},
		{k.Tab, k.ShiftTab, k.Curve, k.PrevPoint, k.NextPoint, k.Quit},
	}
}
