// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the platform can
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/eggshot/internal/core"
)

// Game is the interface frontends drive. Implementations are pure logic:
// frontends own timing, input translation and display.
type Game interface {
	// ID returns a unique identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset seeds the game and starts a new session.
	Reset(cfg core.RuntimeConfig)

	// HandleInput applies one key edge and reports whether it was consumed.
	HandleInput(ev core.InputEvent) bool

	// Update advances the simulation by dt seconds.
	Update(dt float64) core.StepResult

	// SetPaused freezes or resumes the simulation.
	SetPaused(paused bool)

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the session counters.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory. It panics if the ID is already taken or
// the factory builds a game reporting a different ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, g.ID()))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: g.Title()}, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, id := range slices.Sorted(maps.Keys(entries)) {
		result = append(result, entries[id].info)
	}
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
