package terminal

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the terminal timer.
type KeyMap struct {
	// Session
	Start    key.Binding
	Pause    key.Binding
	Reset    key.Binding
	Duration key.Binding

	// Tasks
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding

	// Music
	Track     key.Binding
	PlayMusic key.Binding
	StopMusic key.Binding

	// General
	Help    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Duration: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "set focus time"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "check task"),
		),
		Track: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next track"),
		),
		PlayMusic: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "play music"),
		),
		StopMusic: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "stop music"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Duration, k.Add, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset, k.Duration},
		{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Toggle},
		{k.Track, k.PlayMusic, k.StopMusic},
		{k.Help, k.Quit},
	}
}
