package eggshot

import (
	"math/rand"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/config"
	"github.com/vovakirdan/eggshot/internal/core"
)

// AIState is an enemy's current behavior.
type AIState int

const (
	StateChase AIState = iota
	StateFlee
	StatePatrol
	StateWander
	StateCircle
	StateHunt
)

// String returns a human-readable name for the state.
func (s AIState) String() string {
	switch s {
	case StateChase:
		return "chase"
	case StateFlee:
		return "flee"
	case StatePatrol:
		return "patrol"
	case StateWander:
		return "wander"
	case StateCircle:
		return "circle"
	case StateHunt:
		return "hunt"
	default:
		return "unknown"
	}
}

// Category groups states for visual cues.
type Category int

const (
	CategoryAggressive Category = iota
	CategoryPatrolling
	CategoryMindless
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryAggressive:
		return "aggressive"
	case CategoryPatrolling:
		return "patrolling"
	default:
		return "mindless"
	}
}

// Category returns the visual group of the state.
func (s AIState) Category() Category {
	switch s {
	case StateChase, StateHunt:
		return CategoryAggressive
	case StatePatrol, StateCircle:
		return CategoryPatrolling
	default:
		return CategoryMindless
	}
}

// Enemy is one adversary. Heading is in degrees and always within [0, 360).
type Enemy struct {
	Pos     core.Vec2
	Speed   float64
	Heading float64
	Radius  float64
	State   AIState
	Mesh    assets.MeshID

	StateTime  float64 // time spent in State since the last re-roll
	TargetTime float64 // re-roll once StateTime exceeds this
	LegTime    float64 // patrol: time on the current leg
}

// Situation is what enemies can see of the player during a frame.
type Situation struct {
	Pos          core.Vec2
	Vel          core.Vec2
	Radius       float64
	Grounded     bool
	Invulnerable bool
}

// Outcome reports what an enemy pass did to the player.
type Outcome struct {
	Destroyed int  // enemies removed by an invulnerable player
	Killed    bool // an enemy reached a vulnerable player; the pass stopped there
}

type weightedState struct {
	state  AIState
	weight int
}

// AIEngine owns the enemy roster and runs each enemy's state machine.
type AIEngine struct {
	enemies []Enemy
	cfg     config.Enemies
	ai      config.AI
	physics config.Physics
	rng     *rand.Rand
	mesh    assets.MeshID
	table   []weightedState
	total   int
}

// NewAIEngine creates an empty roster drawing all randomness from rng.
func NewAIEngine(cfg config.EggshotConfig, rng *rand.Rand, mesh assets.MeshID) *AIEngine {
	w := cfg.AI.Weights
	table := []weightedState{
		{StateChase, w.Chase},
		{StateFlee, w.Flee},
		{StatePatrol, w.Patrol},
		{StateWander, w.Wander},
		{StateCircle, w.Circle},
		{StateHunt, w.Hunt},
	}
	return &AIEngine{
		cfg:     cfg.Enemies,
		ai:      cfg.AI,
		physics: cfg.Physics,
		rng:     rng,
		mesh:    mesh,
		table:   table,
		total:   w.Total(),
	}
}

// Spawn appends a chasing enemy.
func (e *AIEngine) Spawn(pos core.Vec2, speed float64) Enemy {
	en := Enemy{
		Pos:        pos,
		Speed:      speed,
		Radius:     e.cfg.Radius,
		State:      StateChase,
		Mesh:       e.mesh,
		TargetTime: e.duration(),
	}
	e.enemies = append(e.enemies, en)
	return en
}

// Enemies returns the live roster. Callers must not modify it.
func (e *AIEngine) Enemies() []Enemy {
	return e.enemies
}

// Len returns the number of live enemies.
func (e *AIEngine) Len() int {
	return len(e.enemies)
}

// Clear removes every enemy.
func (e *AIEngine) Clear() {
	e.enemies = e.enemies[:0]
}

// Update runs one frame for every enemy in roster order. A collision with a
// vulnerable player stops the pass immediately and reports Killed.
func (e *AIEngine) Update(dt float64, s Situation) Outcome {
	var out Outcome

	for i := 0; i < len(e.enemies); {
		en := &e.enemies[i]

		if s.Invulnerable {
			en.State = StateFlee
			en.StateTime = 0
		}

		en.Pos = en.Pos.Add(core.Heading(en.Heading).Scale(en.Speed * dt))
		e.steer(en, dt, s)
		e.clamp(en)

		reach := en.Radius + s.Radius
		if s.Invulnerable {
			reach += e.cfg.InvulnerableBonus
		}
		if core.Within(en.Pos, s.Pos, reach) {
			if !s.Invulnerable {
				out.Killed = true
				return out
			}
			e.enemies = append(e.enemies[:i], e.enemies[i+1:]...)
			out.Destroyed++
			continue
		}

		if s.Grounded && !s.Invulnerable {
			en.StateTime += dt
			if en.StateTime > en.TargetTime {
				e.reroll(en)
			}
		}
		i++
	}

	return out
}

func (e *AIEngine) steer(en *Enemy, dt float64, s Situation) {
	switch en.State {
	case StateChase:
		e.turnToward(en, core.Bearing(en.Pos, s.Pos), e.ai.TurnRate, dt)
	case StateFlee:
		e.turnToward(en, core.Bearing(s.Pos, en.Pos), e.ai.TurnRate, dt)
	case StateHunt:
		lead := s.Pos.Add(s.Vel.Scale(e.ai.HuntLead))
		e.turnToward(en, core.Bearing(en.Pos, lead), e.ai.TurnRate, dt)
	case StateWander:
		target := core.V(e.ai.WanderTarget.X, e.ai.WanderTarget.Y)
		e.turnToward(en, core.Bearing(en.Pos, target), e.ai.WanderTurnRate, dt)
	case StatePatrol:
		en.LegTime += dt
		if en.LegTime >= e.ai.PatrolLeg {
			en.Heading = core.WrapDegrees(en.Heading + 180)
			en.LegTime = 0
		}
	case StateCircle:
		en.Heading = core.WrapDegrees(en.Heading + e.ai.CircleRate*dt)
	}
}

// turnToward rotates the heading toward bearing along the shorter arc by a
// rate drawn from rates. Positive rates never overshoot the bearing; a
// negative draw turns away.
func (e *AIEngine) turnToward(en *Enemy, bearing float64, rates config.Range, dt float64) {
	step := uniform(e.rng, rates.Min, rates.Max) * dt
	delta := core.WrapDegrees(bearing - en.Heading)

	if delta < 180 {
		en.Heading += min(step, delta)
	} else {
		en.Heading -= min(step, 360-delta)
	}
	en.Heading = core.WrapDegrees(en.Heading)
}

func (e *AIEngine) clamp(en *Enemy) {
	inset := e.cfg.BoundsInset
	en.Pos.X = core.ClampF(en.Pos.X, -e.physics.WallX+inset, e.physics.WallX-inset)
	en.Pos.Y = core.ClampF(en.Pos.Y, inset, e.physics.Ceiling-inset)
}

func (e *AIEngine) reroll(en *Enemy) {
	en.State = e.roll()
	en.StateTime = 0
	en.TargetTime = e.duration()

	switch en.State {
	case StatePatrol, StateWander, StateCircle:
		en.Heading = e.rng.Float64() * 360
		en.LegTime = 0
	}
}

func (e *AIEngine) roll() AIState {
	if e.total <= 0 {
		return StateChase
	}
	n := e.rng.Intn(e.total)
	for _, ws := range e.table {
		if n < ws.weight {
			return ws.state
		}
		n -= ws.weight
	}
	return StateChase
}

func (e *AIEngine) duration() float64 {
	return uniform(e.rng, e.ai.StateDuration.Min, e.ai.StateDuration.Max)
}
