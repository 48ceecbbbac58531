package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickpong/internal/core"
)

// KeyMap binds terminal keys to game actions and feeds the help line.
type KeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the two-player hot-seat bindings: arrows for
// Player 1 on the right, W/S for Player 2 on the left.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "P1 up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "P1 down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "P2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "P2 down"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
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

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Pause, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Confirm, k.Pause, k.Back},
		{k.Help, k.Quit},
	}
}

// Action translates a key message into a game action.
// Help is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.P1Up):
		return core.ActionP1Up
	case key.Matches(msg, k.P1Down):
		return core.ActionP1Down
	case key.Matches(msg, k.P2Up):
		return core.ActionP2Up
	case key.Matches(msg, k.P2Down):
		return core.ActionP2Down
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// held reports whether a is a movement action, tracked as held rather than
// pressed.
func held(a core.Action) bool {
	switch a {
	case core.ActionP1Up, core.ActionP1Down, core.ActionP2Up, core.ActionP2Down:
		return true
	}
	return false
}
