package config

import "math"

// DifficultyManager scales enemy tuning as a run progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a score and frame count.
func (d *DifficultyManager) Level(score int, frames int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an enemy speed from base up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, frames int) float64 {
	level := d.Level(score, frames)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval shortens the score interval between enemy spawns,
// never below half of the base interval.
func (d *DifficultyManager) SpawnInterval(base int, score int, frames int) int {
	level := d.Level(score, frames)
	result := base - int(level*float64(d.cfg.Scaling.SpawnReduction))
	floor := (base + 1) / 2
	if floor < 1 {
		floor = 1
	}
	if result < floor {
		result = floor
	}
	return result
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
