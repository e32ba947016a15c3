package config

import (
	"errors"
	"fmt"
)

// Validate rejects configurations the simulation cannot run with.
func (c EggshotConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	checkRange := func(name string, r Range) {
		check(r.Min <= r.Max, "%s: min %v exceeds max %v", name, r.Min, r.Max)
	}

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative")
	check(c.Physics.WallX > 0, "physics.wall_x must be positive")
	check(c.Physics.Ceiling > 0, "physics.ceiling must be positive")

	p := c.Player
	check(p.Radius >= 0, "player.radius must not be negative")
	check(p.MinAngle < p.MaxAngle, "player.min_angle %v must be below max_angle %v", p.MinAngle, p.MaxAngle)
	check(p.DefaultAngle >= p.MinAngle && p.DefaultAngle <= p.MaxAngle,
		"player.default_angle %v outside [%v, %v]", p.DefaultAngle, p.MinAngle, p.MaxAngle)
	check(p.MaxPower > 0, "player.max_power must be positive")
	check(p.AngleRate >= 0, "player.angle_rate must not be negative")
	check(p.ChargeRate >= 0, "player.charge_rate must not be negative")

	t := c.Targets
	check(t.MinCount >= 0, "targets.min_count must not be negative")
	check(t.Radius >= 0, "targets.radius must not be negative")
	check(t.GoldenEvery > 0, "targets.golden_every must be positive")
	check(t.GoldenDuration >= 0, "targets.golden_duration must not be negative")
	checkRange("targets.spawn_x", t.SpawnX)
	checkRange("targets.spawn_y", t.SpawnY)

	e := c.Enemies
	check(e.Radius >= 0, "enemies.radius must not be negative")
	check(e.BaseSpeed >= 0, "enemies.base_speed must not be negative")
	check(e.SpawnEvery > 0, "enemies.spawn_every must be positive")
	check(e.BoundsInset >= 0 && e.BoundsInset < c.Physics.WallX, "enemies.bounds_inset out of range")
	check(e.InvulnerableBonus >= 0, "enemies.invulnerable_bonus must not be negative")

	a := c.AI
	checkRange("ai.turn_rate", a.TurnRate)
	checkRange("ai.wander_turn_rate", a.WanderTurnRate)
	checkRange("ai.state_duration", a.StateDuration)
	check(a.PatrolLeg > 0, "ai.patrol_leg must be positive")
	w := a.Weights
	check(w.Chase >= 0 && w.Flee >= 0 && w.Patrol >= 0 && w.Wander >= 0 && w.Circle >= 0 && w.Hunt >= 0,
		"ai.weights must not be negative")
	check(w.Total() > 0, "ai.weights must not all be zero")

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		check(false, "difficulty.progression.type %q unknown", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
