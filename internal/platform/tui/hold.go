package tui

import (
	"maps"
	"slices"
	"time"

	"github.com/vovakirdan/eggshot/internal/core"
)

// Default hold windows. Terminals wait a few hundred milliseconds before
// auto-repeating a held key, then repeat every 30-50ms.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 150 * time.Millisecond
)

// HoldTracker synthesizes key-up edges for terminals, which only report
// presses. A key counts as held until no press has been seen for the hold
// window: the long initial window covers the delay before auto-repeat,
// the short one the gap between repeats.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Key]hold
}

type hold struct {
	last     time.Time
	repeated bool
}

// NewHoldTracker creates a tracker with the given windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Key]hold),
	}
}

// Press records a press of k. It reports true for a fresh press and false
// for an auto-repeat of a key that is already held.
func (h *HoldTracker) Press(k core.Key, now time.Time) bool {
	_, ok := h.held[k]
	h.held[k] = hold{last: now, repeated: ok}
	return !ok
}

// Tap records a press of k that only counts as held for the short repeat
// window, so quick successive taps each register as fresh presses.
func (h *HoldTracker) Tap(k core.Key, now time.Time) bool {
	_, ok := h.held[k]
	h.held[k] = hold{last: now, repeated: true}
	return !ok
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}

// Expire forgets and returns the keys whose window ran out before now.
func (h *HoldTracker) Expire(now time.Time) []core.Key {
	var released []core.Key
	for _, k := range slices.Sorted(maps.Keys(h.held)) {
		st := h.held[k]
		window := h.initial
		if st.repeated {
			window = h.repeat
		}
		if now.Sub(st.last) > window {
			released = append(released, k)
			delete(h.held, k)
		}
	}
	return released
}

// ReleaseAll forgets and returns every held key.
func (h *HoldTracker) ReleaseAll() []core.Key {
	keys := slices.Sorted(maps.Keys(h.held))
	clear(h.held)
	return keys
}
