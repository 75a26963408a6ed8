package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"? toggles help", runeKey('?'), core.ActionHelp},
		{"w goes to the game", runeKey('w'), core.ActionNone},
		{"up goes to the game", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
		{"unbound key", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 3 {
		t.Errorf("FullHelp() has %d columns, expected 3", len(km.FullHelp()))
	}
}
