package core

import "fmt"

// Key is a logical gameplay control. Frontends translate physical keys
// into Keys and deliver them to the simulation as edge events.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "None"
	}
}

// InputEvent is a single press or release of a logical key.
// Repeat marks auto-repeat presses generated while the key is held.
type InputEvent struct {
	Key    Key
	Down   bool
	Repeat bool
}

// Press returns a key-down event.
func Press(k Key) InputEvent {
	return InputEvent{Key: k, Down: true}
}

// Release returns a key-up event.
func Release(k Key) InputEvent {
	return InputEvent{Key: k}
}

func (e InputEvent) String() string {
	edge := "up"
	if e.Down {
		edge = "down"
	}
	if e.Repeat {
		edge += " (repeat)"
	}
	return fmt.Sprintf("%s %s", e.Key, edge)
}

// Action is a platform command that never reaches the simulation.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
	ActionScreenshot
	ActionMute
	ActionBack
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionMute:
		return "Mute"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
