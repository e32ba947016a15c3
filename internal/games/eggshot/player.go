package eggshot

import (
	"github.com/vovakirdan/eggshot/internal/config"
	"github.com/vovakirdan/eggshot/internal/core"
)

// Phase is the launcher's state.
type Phase int

const (
	PhaseAiming Phase = iota
	PhaseCharging
	PhaseFlying
	// PhaseDead is reserved for a game-over screen; deaths currently reset the session at once.
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseCharging:
		return "charging"
	case PhaseFlying:
		return "flying"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Grounded reports whether the player is standing on the ground.
func (p Phase) Grounded() bool {
	return p == PhaseAiming || p == PhaseCharging
}

// Player is the launched character and its aim state.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Phase  Phase
	Angle  float64 // degrees, counter-clockwise from +x
	Power  float64

	left, right bool

	cfg              config.Player
	physics          config.Physics
	aimWhileCharging bool
}

// NewPlayer creates a player standing at the origin, ready to aim.
func NewPlayer(cfg config.EggshotConfig) Player {
	p := Player{
		cfg:              cfg.Player,
		physics:          cfg.Physics,
		aimWhileCharging: cfg.Controls.AimWhileCharging,
	}
	p.Reset()
	return p
}

// Reset returns the player to the origin in the aiming phase with no held keys.
func (p *Player) Reset() {
	p.Pos = core.Vec2{}
	p.Vel = core.Vec2{}
	p.Radius = p.cfg.Radius
	p.Phase = PhaseAiming
	p.Angle = p.cfg.DefaultAngle
	p.Power = 0
	p.left, p.right = false, false
}

// HandleInput applies one key edge. It reports whether the event was consumed.
// Rotation keys only record intent and are accepted in every phase. Fire
// starts charging when pressed while aiming and launches when released while
// charging; any other fire edge is ignored.
func (p *Player) HandleInput(ev core.InputEvent) bool {
	if ev.Repeat {
		return false
	}

	switch ev.Key {
	case core.KeyLeft:
		p.left = ev.Down
		return true
	case core.KeyRight:
		p.right = ev.Down
		return true
	case core.KeyFire:
		if ev.Down && p.Phase == PhaseAiming {
			p.Phase = PhaseCharging
			if !p.aimWhileCharging {
				p.left, p.right = false, false
			}
			return true
		}
		if !ev.Down && p.Phase == PhaseCharging {
			p.launch()
			return true
		}
	}
	return false
}

func (p *Player) launch() {
	p.Vel = core.Heading(p.Angle).Scale(p.Power)
	p.Phase = PhaseFlying
}

// Update advances the phase state machine by dt seconds.
// It reports whether the player touched down this frame.
func (p *Player) Update(dt float64) bool {
	landed := false

	switch p.Phase {
	case PhaseAiming:
		p.aim(dt)
	case PhaseCharging:
		p.Power = core.ClampF(p.Power+p.cfg.ChargeRate*dt, 0, p.cfg.MaxPower)
		if p.aimWhileCharging {
			p.aim(dt)
		}
	case PhaseFlying:
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y -= p.physics.Gravity * dt
		if p.Pos.Y <= 0 {
			p.land()
			landed = true
		}
		p.bounce()
	}

	return landed
}

func (p *Player) aim(dt float64) {
	if p.left {
		p.Angle += p.cfg.AngleRate * dt
	}
	if p.right {
		p.Angle -= p.cfg.AngleRate * dt
	}
	p.Angle = core.ClampF(p.Angle, p.cfg.MinAngle, p.cfg.MaxAngle)
}

func (p *Player) land() {
	p.Pos.Y = 0
	p.Vel = core.Vec2{}
	p.Phase = PhaseAiming
	p.Angle = p.cfg.DefaultAngle
	p.Power = 0
}

// bounce mirrors the player back inside the side walls.
func (p *Player) bounce() {
	wall := p.physics.WallX
	switch {
	case p.Pos.X >= wall:
		p.Vel.X = -abs(p.Vel.X)
		p.Pos.X = wall - (p.Pos.X - wall)
	case p.Pos.X <= -wall:
		p.Vel.X = abs(p.Vel.X)
		p.Pos.X = -wall - (p.Pos.X + wall)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
