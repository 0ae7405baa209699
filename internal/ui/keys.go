package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Enter  key.Binding
	Parent key.Binding
	Back   key.Binding

	// Actions
	Search  key.Binding
	Reload  key.Binding
	CopyURL key.Binding
	Logs    key.Binding
	Quit    key.Binding

	// Log scrolling
	LogScrollUp   key.Binding
	LogScrollDown key.Binding
	LogScrollEnd  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "right"),
			key.WithHelp("enter", "open"),
		),
		Parent: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "parent"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Logs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "logs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		LogScrollUp: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "scroll logs up"),
		),
		LogScrollDown: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "scroll logs down"),
		),
		LogScrollEnd: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "follow logs"),
		),
	}
}

// SearchShortcut builds the global search binding from a config key name.
func SearchShortcut(keys string) key.Binding {
	if keys == "" {
		keys = "ctrl+p"
	}
	return key.NewBinding(
		key.WithKeys(keys),
		key.WithHelp(keys, "search"),
	)
}
