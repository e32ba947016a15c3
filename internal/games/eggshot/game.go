// Package eggshot implements the egg shooting game: aim and charge a launch,
// fly through the air collecting eggs, and avoid the enemies that multiply
// as the score climbs. Golden eggs grant a short window in which enemies
// flee and can be destroyed on contact.
package eggshot

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/config"
	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/registry"
)

// ID is the registry and score table identifier of the game.
const ID = "eggshot"

// Mesh names the game resolves from the asset bundle.
const (
	MeshPlayer = "Doll"
	MeshTarget = "Egg"
	MeshEnemy  = "Cube"
	MeshGolden = "GoldenEgg" // optional, falls back to MeshTarget
)

// Meshes are the handles entities carry for renderers.
type Meshes struct {
	Player assets.MeshID
	Target assets.MeshID
	Golden assets.MeshID
	Enemy  assets.MeshID
}

// ResolveMeshes looks up the game's meshes in a bundle.
func ResolveMeshes(b *assets.Bundle) (Meshes, error) {
	ids, err := b.Resolve(MeshPlayer, MeshTarget, MeshEnemy)
	if err != nil {
		return Meshes{}, err
	}
	m := Meshes{Player: ids[0], Target: ids[1], Golden: ids[1], Enemy: ids[2]}
	if golden, err := b.Lookup(MeshGolden); err == nil {
		m.Golden = golden.ID
	}
	return m, nil
}

// Package-level configuration set by the CLI before games are created.
var (
	configOverride *config.EggshotConfig
)

// SetConfig makes every game reset with cfg instead of loading from disk.
func SetConfig(cfg config.EggshotConfig) {
	configOverride = &cfg
}

// activeConfig returns the CLI override or the config found on disk. A
// file that fails to load yields the defaults along with its error.
func activeConfig() (config.EggshotConfig, error) {
	if configOverride != nil {
		return *configOverride, nil
	}
	return config.LoadEggshot("")
}

func init() {
	registry.Register(ID, func() registry.Game {
		return MustNew(assets.MustLoad())
	})
}

// Game owns every entity and advances them once per frame.
type Game struct {
	cfg       config.EggshotConfig
	configErr error // why the last Reset fell back to defaults
	pinned    bool
	runtime   core.RuntimeConfig

	bundle *assets.Bundle
	meshes Meshes

	rng        *rand.Rand
	difficulty *config.DifficultyManager

	player  Player
	targets *TargetManager
	enemies *AIEngine

	score        int
	eggs         int
	goldenEggs   int
	nextEnemyAt  int
	nextGoldenAt int
	invulnerable float64 // seconds left in the golden window
	frame        int

	paused bool
	events []core.Event
}

// New creates a game whose configuration is resolved on every Reset.
// It fails when the bundle lacks one of the game's meshes.
func New(bundle *assets.Bundle) (*Game, error) {
	meshes, err := ResolveMeshes(bundle)
	if err != nil {
		return nil, fmt.Errorf("eggshot: %w", err)
	}
	return &Game{bundle: bundle, meshes: meshes}, nil
}

// NewWithConfig creates a game pinned to cfg.
func NewWithConfig(bundle *assets.Bundle, cfg config.EggshotConfig) (*Game, error) {
	g, err := New(bundle)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("eggshot: %w", err)
	}
	g.cfg = cfg
	g.pinned = true
	return g, nil
}

// MustNew is New that panics on error.
func MustNew(bundle *assets.Bundle) *Game {
	g, err := New(bundle)
	if err != nil {
		panic(err)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Egg Shot"
}

// Bundle returns the asset bundle the game's mesh handles come from.
func (g *Game) Bundle() *assets.Bundle {
	return g.bundle
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.EggshotConfig {
	return g.cfg
}

// ConfigErr reports why the last Reset could not load the config from
// disk. It is nil when the session runs on the configuration it asked for.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Reset seeds the random source and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.pinned {
		g.cfg, g.configErr = activeConfig()
	}
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed)) //#nosec G404 -- gameplay randomness must be seedable
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.paused = false
	g.restart()
}

// restart rebuilds the session from scratch, keeping only the random source.
func (g *Game) restart() {
	g.player = NewPlayer(g.cfg)
	g.targets = NewTargetManager(g.cfg.Targets, g.rng, g.meshes.Target, g.meshes.Golden)
	g.enemies = NewAIEngine(g.cfg, g.rng, g.meshes.Enemy)

	g.score = 0
	g.eggs = 0
	g.goldenEggs = 0
	g.invulnerable = 0
	g.frame = 0
	g.nextEnemyAt = g.cfg.Enemies.FirstSpawnAt
	g.nextGoldenAt = g.cfg.Targets.GoldenFirstAt

	start := core.V(g.cfg.Enemies.Start.X, g.cfg.Enemies.Start.Y)
	g.enemies.Spawn(start, g.cfg.Enemies.BaseSpeed)
	g.targets.Fill(g.cfg.Targets.MinCount, nil)
}

// HandleInput forwards a key edge to the player. It reports whether the
// event changed anything.
func (g *Game) HandleInput(ev core.InputEvent) bool {
	if g.paused {
		return false
	}
	return g.player.HandleInput(ev)
}

// SetPaused freezes or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Update advances the simulation by dt seconds in a fixed order:
// player, golden timer, egg collection, enemies.
func (g *Game) Update(dt float64) core.StepResult {
	g.events = g.events[:0]
	if g.paused || dt <= 0 {
		return g.result()
	}
	g.frame++

	if g.player.Update(dt) {
		g.onLanding()
	}

	g.invulnerable -= dt
	if g.invulnerable < 0 {
		g.invulnerable = 0
	}

	g.collect()

	out := g.enemies.Update(dt, Situation{
		Pos:          g.player.Pos,
		Vel:          g.player.Vel,
		Radius:       g.player.Radius,
		Grounded:     g.player.Phase.Grounded(),
		Invulnerable: g.invulnerable > 0,
	})
	for range out.Destroyed {
		g.emit(core.EventEnemyDestroyed, 0)
	}
	if out.Killed {
		g.emit(core.EventDeath, 0)
		g.restart()
	}

	return g.result()
}

func (g *Game) onLanding() {
	// At most one golden target per landing; the threshold advances once.
	goldenDue := g.score >= g.nextGoldenAt
	g.targets.Fill(g.cfg.Targets.MinCount, func() bool {
		if !goldenDue {
			return false
		}
		goldenDue = false
		g.nextGoldenAt += g.cfg.Targets.GoldenEvery
		return true
	})

	if g.score >= g.nextEnemyAt {
		pos := core.V(g.cfg.Enemies.Start.X, g.cfg.Enemies.Start.Y)
		if live := g.enemies.Enemies(); len(live) > 0 {
			pos = live[0].Pos
		}
		base := g.cfg.Enemies.BaseSpeed + g.cfg.Enemies.SpeedStep*float64(g.enemies.Len())
		g.enemies.Spawn(pos, g.difficulty.Speed(base, g.score, g.frame))
		g.nextEnemyAt += g.difficulty.SpawnInterval(g.cfg.Enemies.SpawnEvery, g.score, g.frame)
		g.emit(core.EventEnemySpawned, 0)
	}

	g.emit(core.EventLanded, 0)
}

func (g *Game) collect() {
	for _, t := range g.targets.Collect(g.player.Pos, g.player.Radius) {
		g.score += t.Points
		if t.Golden {
			g.goldenEggs++
			g.invulnerable += g.cfg.Targets.GoldenDuration
			g.emit(core.EventGoldenCollected, t.Points)
			continue
		}
		g.eggs++
		g.emit(core.EventCollected, t.Points)
	}
}

func (g *Game) emit(kind core.EventKind, points int) {
	g.events = append(g.events, core.Event{Kind: kind, Points: points, Final: g.State()})
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// State returns the session counters.
func (g *Game) State() core.GameState {
	enemies := 0
	if g.enemies != nil {
		enemies = g.enemies.Len()
	}
	return core.GameState{
		Score:      g.score,
		Eggs:       g.eggs,
		GoldenEggs: g.goldenEggs,
		Enemies:    enemies,
		Paused:     g.paused,
	}
}

// Phase returns the player's phase.
func (g *Game) Phase() Phase {
	return g.player.Phase
}

// Invulnerable returns the seconds left in the golden window.
func (g *Game) Invulnerable() float64 {
	return g.invulnerable
}
