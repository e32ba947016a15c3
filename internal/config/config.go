// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management.
package config

// EggshotConfig contains all tuning for the egg shooting game.
type EggshotConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Targets    Targets          `yaml:"targets"`
	Enemies    Enemies          `yaml:"enemies"`
	AI         AI               `yaml:"ai"`
	Controls   Controls         `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Range is an inclusive [min, max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Point is a world-space position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Physics defines the playfield and ballistic parameters.
type Physics struct {
	Gravity float64 `yaml:"gravity"`
	WallX   float64 `yaml:"wall_x"`  // walls at -wall_x and +wall_x
	Ceiling float64 `yaml:"ceiling"` // ground is y = 0
}

// Player defines the launcher and its aim controls.
type Player struct {
	Radius       float64 `yaml:"radius"`
	MinAngle     float64 `yaml:"min_angle"`
	MaxAngle     float64 `yaml:"max_angle"`
	DefaultAngle float64 `yaml:"default_angle"`
	AngleRate    float64 `yaml:"angle_rate"`  // degrees per second
	ChargeRate   float64 `yaml:"charge_rate"` // power per second
	MaxPower     float64 `yaml:"max_power"`
}

// Targets defines collectible eggs and the golden variant.
type Targets struct {
	MinCount       int     `yaml:"min_count"`
	Radius         float64 `yaml:"radius"`
	Points         int     `yaml:"points"`
	GoldenPoints   int     `yaml:"golden_points"`
	SpawnX         Range   `yaml:"spawn_x"`
	SpawnY         Range   `yaml:"spawn_y"`
	GoldenFirstAt  int     `yaml:"golden_first_at"`
	GoldenEvery    int     `yaml:"golden_every"`
	GoldenDuration float64 `yaml:"golden_duration"` // seconds of invulnerability
}

// Enemies defines the enemy roster and its growth.
type Enemies struct {
	Radius            float64 `yaml:"radius"`
	Start             Point   `yaml:"start"`
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedStep         float64 `yaml:"speed_step"` // added per enemy already alive
	FirstSpawnAt      int     `yaml:"first_spawn_at"`
	SpawnEvery        int     `yaml:"spawn_every"`
	BoundsInset       float64 `yaml:"bounds_inset"`
	InvulnerableBonus float64 `yaml:"invulnerable_bonus"` // extra collision reach while golden
}

// AI defines steering and state selection for enemies.
type AI struct {
	TurnRate       Range   `yaml:"turn_rate"`        // chase, flee and hunt, degrees per second
	WanderTurnRate Range   `yaml:"wander_turn_rate"` // degrees per second
	WanderTarget   Point   `yaml:"wander_target"`
	CircleRate     float64 `yaml:"circle_rate"` // degrees per second
	PatrolLeg      float64 `yaml:"patrol_leg"`  // seconds before reversing
	HuntLead       float64 `yaml:"hunt_lead"`   // seconds of player velocity to lead by
	StateDuration  Range   `yaml:"state_duration"`
	Weights        Weights `yaml:"weights"`
}

// Weights are the relative odds of each AI state on a re-roll.
type Weights struct {
	Chase  int `yaml:"chase"`
	Flee   int `yaml:"flee"`
	Patrol int `yaml:"patrol"`
	Wander int `yaml:"wander"`
	Circle int `yaml:"circle"`
	Hunt   int `yaml:"hunt"`
}

// Total returns the sum of all weights.
func (w Weights) Total() int {
	return w.Chase + w.Flee + w.Patrol + w.Wander + w.Circle + w.Hunt
}

// Controls defines input interpretation.
type Controls struct {
	AimWhileCharging bool `yaml:"aim_while_charging"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to enemy speed factor at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // points shaved off the enemy spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
