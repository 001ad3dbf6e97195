package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings that are not game input. Letters, Backspace
// and Enter go to the game while it is in progress; the post-game bindings
// only apply once it has ended.
type KeyMap struct {
	Quit    key.Binding // always active
	Restart key.Binding // post-game
	Copy    key.Binding // post-game
	Leave   key.Binding // post-game
	Type    key.Binding // help only
	Submit  key.Binding // help only
	Erase   key.Binding // help only
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "new game"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy result"),
		),
		Leave: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Type: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z", "type"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// playingKeys and finishedKeys drive the help footer; they implement help.KeyMap.
type playingKeys struct{ KeyMap }

func (k playingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Submit, k.Erase, k.Quit}
}
func (k playingKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type finishedKeys struct{ KeyMap }

func (k finishedKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Copy, k.Leave}
}
func (k finishedKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
