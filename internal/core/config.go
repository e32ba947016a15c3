package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation frames per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameTime returns the fixed step length in seconds for TickRate.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// GameState summarizes a running session for the platform.
type GameState struct {
	Score      int
	Eggs       int
	GoldenEggs int
	Enemies    int
	Paused     bool
}

// EventKind identifies something noteworthy that happened during a frame.
type EventKind int

const (
	EventLanded EventKind = iota
	EventCollected
	EventGoldenCollected
	EventEnemySpawned
	EventEnemyDestroyed
	EventDeath
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventCollected:
		return "collected"
	case EventGoldenCollected:
		return "golden_collected"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Event is emitted by a frame update. Final holds the session totals
// at the moment of the event, which for EventDeath are the run's results.
type Event struct {
	Kind   EventKind
	Points int
	Final  GameState
}

// StepResult is returned after each simulation frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Died reports whether the frame ended the session.
func (r StepResult) Died() (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == EventDeath {
			return e, true
		}
	}
	return Event{}, false
}
