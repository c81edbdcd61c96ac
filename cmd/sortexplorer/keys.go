package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Run selection
	NextAlgorithm key.Binding
	PrevAlgorithm key.Binding
	NextKind      key.Binding
	Restart       key.Binding

	// Pacing
	Faster     key.Binding
	Slower     key.Binding
	TogglePace key.Binding
	StopPacing key.Binding

	// Commands
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextAlgorithm: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next algorithm"),
		),
		PrevAlgorithm: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous algorithm"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "cycle input kind"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart with new input"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		TogglePace: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "toggle pacing"),
		),
		StopPacing: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "finish run unpaced"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextAlgorithm, k.Restart, k.Faster, k.Slower, k.TogglePace, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextAlgorithm, k.PrevAlgorithm, k.NextKind, k.Restart},
		{k.Faster, k.Slower, k.TogglePace, k.StopPacing},
		{k.Help, k.Quit},
	}
}
