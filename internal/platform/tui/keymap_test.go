package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/widebird/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPrimary},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPrimary},
		{"w", runeKey('w'), core.ActionPrimary},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionHistory},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMouseAction(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionTap},
		{"bare release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.ActionTap},
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonRight}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MouseAction(tc.msg); got != tc.want {
				t.Errorf("MouseAction() = %v, expected %v", got, tc.want)
			}
		})
	}
}
