package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/widebird/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Primary key.Binding
	Start   key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Start, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Start},
		{k.History, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space/↑/w", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/click", "play"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Primary):
		return core.ActionPrimary
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.History):
		return core.ActionHistory
	}
	return core.ActionNone
}

// MouseAction translates a mouse message to a game action. Only a released
// left button counts as a tap.
func MouseAction(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionRelease {
		return core.ActionNone
	}
	// Some terminals report releases without the button
	if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
		return core.ActionTap
	}
	return core.ActionNone
}
