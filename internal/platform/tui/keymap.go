package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggshot/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game keys and platform actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. At most one of the results is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, core.Action) {
	switch msg.String() {
	case "left", "a", "h":
		return core.KeyLeft, core.ActionNone
	case "right", "d", "l":
		return core.KeyRight, core.ActionNone
	case " ", "up", "w":
		return core.KeyFire, core.ActionNone

	case "ctrl+c", "q":
		return core.KeyNone, core.ActionQuit
	case "b":
		return core.KeyNone, core.ActionBack
	case "p", "esc":
		return core.KeyNone, core.ActionPause
	case "r":
		return core.KeyNone, core.ActionRestart
	case "ctrl+s":
		return core.KeyNone, core.ActionScreenshot
	case "m":
		return core.KeyNone, core.ActionMute
	}
	return core.KeyNone, core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
