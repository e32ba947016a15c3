package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggshot/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		key    core.Key
		action core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, core.ActionNone},
		{"a", runeKey('a'), core.KeyLeft, core.ActionNone},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, core.ActionNone},
		{"d", runeKey('d'), core.KeyRight, core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeyFire, core.ActionNone},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyFire, core.ActionNone},
		{"p", runeKey('p'), core.KeyNone, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyNone, core.ActionPause},
		{"r", runeKey('r'), core.KeyNone, core.ActionRestart},
		{"m", runeKey('m'), core.KeyNone, core.ActionMute},
		{"b", runeKey('b'), core.KeyNone, core.ActionBack},
		{"q", runeKey('q'), core.KeyNone, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.KeyNone, core.ActionScreenshot},
		{"unbound", runeKey('z'), core.KeyNone, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, a := km.MapKey(tc.msg)
			if k != tc.key || a != tc.action {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), k, a, tc.key, tc.action)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
