package remote

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the remote's key bindings
type keyMap struct {
	Power      key.Binding
	Play       key.Binding
	Stop       key.Binding
	Next       key.Binding
	Previous   key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Mute       key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Next, k.VolumeUp, k.Mute, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Stop, k.Next, k.Previous},
		{k.VolumeUp, k.VolumeDown, k.Mute},
		{k.Power, k.Refresh, k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Power: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "power"),
		),
		Play: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "play"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("→/n", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("b", "left"),
			key.WithHelp("←/b", "previous"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("↑/+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("↓/-", "volume down"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
