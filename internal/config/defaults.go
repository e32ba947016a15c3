package config

import (
	_ "embed"
)

//go:embed defaults/eggshot.yaml
var defaultEggshotYAML []byte

// DefaultEggshotConfig returns the built-in tuning. It mirrors the embedded
// YAML and is the last resort when that fails to parse.
func DefaultEggshotConfig() EggshotConfig {
	return EggshotConfig{
		Physics: Physics{
			Gravity: 4.5,
			WallX:   5,
			Ceiling: 10,
		},
		Player: Player{
			Radius:       0.2,
			MinAngle:     20,
			MaxAngle:     160,
			DefaultAngle: 90,
			AngleRate:    50,
			ChargeRate:   10,
			MaxPower:     10,
		},
		Targets: Targets{
			MinCount:       10,
			Radius:         0.8,
			Points:         10,
			GoldenPoints:   50,
			SpawnX:         Range{Min: -4.5, Max: 4.5},
			SpawnY:         Range{Min: 1, Max: 9},
			GoldenFirstAt:  150,
			GoldenEvery:    150,
			GoldenDuration: 5,
		},
		Enemies: Enemies{
			Radius:            0.2,
			Start:             Point{X: 3, Y: 3},
			BaseSpeed:         1,
			SpeedStep:         0.1,
			FirstSpawnAt:      100,
			SpawnEvery:        100,
			BoundsInset:       0.2,
			InvulnerableBonus: 0.3,
		},
		AI: AI{
			TurnRate:       Range{Min: 90, Max: 180},
			WanderTurnRate: Range{Min: -20, Max: 60},
			WanderTarget:   Point{X: 0, Y: 8},
			CircleRate:     90,
			PatrolLeg:      3,
			HuntLead:       1,
			StateDuration:  Range{Min: 2, Max: 6},
			Weights: Weights{
				Chase:  2,
				Flee:   1,
				Patrol: 3,
				Wander: 3,
				Circle: 1,
				Hunt:   2,
			},
		},
		Controls: Controls{
			AimWhileCharging: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  40,
			},
		},
	}
}
