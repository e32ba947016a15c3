package eggshot

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/eggshot/internal/assets"
)

// PlayerView is the drawable state of the player.
type PlayerView struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Phase  Phase
	Angle  float64
	Power  float64
	Mesh   assets.MeshID
}

// EnemyView is the drawable state of one enemy.
type EnemyView struct {
	X, Y     float64
	Heading  float64
	Speed    float64
	Radius   float64
	State    AIState
	Category Category
	Mesh     assets.MeshID
}

// TargetView is the drawable state of one egg.
type TargetView struct {
	X, Y   float64
	Radius float64
	Golden bool
	Points int
	Mesh   assets.MeshID
}

// Snapshot is a read-only copy of everything renderers and tests need.
type Snapshot struct {
	Frame        int
	Player       PlayerView
	Enemies      []EnemyView
	Targets      []TargetView
	Score        int
	Eggs         int
	GoldenEggs   int
	NextEnemyAt  int
	NextGoldenAt int
	Invulnerable float64
	MaxPower     float64
	WallX        float64
	Ceiling      float64
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Frame: g.frame,
		Player: PlayerView{
			X: p.Pos.X, Y: p.Pos.Y,
			VX: p.Vel.X, VY: p.Vel.Y,
			Radius: p.Radius,
			Phase:  p.Phase,
			Angle:  p.Angle,
			Power:  p.Power,
			Mesh:   g.meshes.Player,
		},
		Score:        g.score,
		Eggs:         g.eggs,
		GoldenEggs:   g.goldenEggs,
		NextEnemyAt:  g.nextEnemyAt,
		NextGoldenAt: g.nextGoldenAt,
		Invulnerable: g.invulnerable,
		MaxPower:     g.cfg.Player.MaxPower,
		WallX:        g.cfg.Physics.WallX,
		Ceiling:      g.cfg.Physics.Ceiling,
	}

	if g.enemies != nil {
		snap.Enemies = make([]EnemyView, 0, g.enemies.Len())
		for _, e := range g.enemies.Enemies() {
			snap.Enemies = append(snap.Enemies, EnemyView{
				X: e.Pos.X, Y: e.Pos.Y,
				Heading:  e.Heading,
				Speed:    e.Speed,
				Radius:   e.Radius,
				State:    e.State,
				Category: e.State.Category(),
				Mesh:     e.Mesh,
			})
		}
	}
	if g.targets != nil {
		snap.Targets = make([]TargetView, 0, g.targets.Len())
		for _, t := range g.targets.Targets() {
			snap.Targets = append(snap.Targets, TargetView{
				X: t.Pos.X, Y: t.Pos.Y,
				Radius: t.Radius,
				Golden: t.Golden,
				Points: t.Points,
				Mesh:   t.Mesh,
			})
		}
	}
	return snap
}

// Hash returns an FNV-1a digest of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	putInt(s.Frame)
	putFloat(s.Player.X)
	putFloat(s.Player.Y)
	putFloat(s.Player.VX)
	putFloat(s.Player.VY)
	putInt(int(s.Player.Phase))
	putFloat(s.Player.Angle)
	putFloat(s.Player.Power)
	putInt(s.Score)
	putInt(s.Eggs)
	putInt(s.GoldenEggs)
	putInt(s.NextEnemyAt)
	putInt(s.NextGoldenAt)
	putFloat(s.Invulnerable)

	putInt(len(s.Enemies))
	for _, e := range s.Enemies {
		putFloat(e.X)
		putFloat(e.Y)
		putFloat(e.Heading)
		putFloat(e.Speed)
		putInt(int(e.State))
	}

	putInt(len(s.Targets))
	for _, t := range s.Targets {
		putFloat(t.X)
		putFloat(t.Y)
		putInt(t.Points)
	}

	return h.Sum64()
}
