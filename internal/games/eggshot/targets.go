package eggshot

import (
	"math/rand"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/config"
	"github.com/vovakirdan/eggshot/internal/core"
)

// Target is a collectible egg.
type Target struct {
	Pos    core.Vec2
	Points int
	Radius float64
	Golden bool
	Mesh   assets.MeshID
}

// TargetManager spawns eggs and resolves their collection.
type TargetManager struct {
	targets    []Target
	cfg        config.Targets
	rng        *rand.Rand
	mesh       assets.MeshID
	goldenMesh assets.MeshID
}

// NewTargetManager creates an empty pool drawing positions from rng.
func NewTargetManager(cfg config.Targets, rng *rand.Rand, mesh, goldenMesh assets.MeshID) *TargetManager {
	return &TargetManager{
		cfg:        cfg,
		rng:        rng,
		mesh:       mesh,
		goldenMesh: goldenMesh,
	}
}

// Spawn adds one egg at a uniformly random point of the spawn band.
func (m *TargetManager) Spawn(golden bool) Target {
	y := uniform(m.rng, m.cfg.SpawnY.Min, m.cfg.SpawnY.Max)
	x := uniform(m.rng, m.cfg.SpawnX.Min, m.cfg.SpawnX.Max)

	t := Target{
		Pos:    core.V(x, y),
		Points: m.cfg.Points,
		Radius: m.cfg.Radius,
		Mesh:   m.mesh,
	}
	if golden {
		t.Golden = true
		t.Points = m.cfg.GoldenPoints
		t.Mesh = m.goldenMesh
	}
	m.targets = append(m.targets, t)
	return t
}

// Fill spawns eggs until the pool holds count of them. For each new egg
// golden is asked whether it should be the golden variant. It returns the
// number of eggs spawned.
func (m *TargetManager) Fill(count int, golden func() bool) int {
	spawned := 0
	for len(m.targets) < count {
		m.Spawn(golden != nil && golden())
		spawned++
	}
	return spawned
}

// Collect removes and returns every egg touching a circle at pos.
func (m *TargetManager) Collect(pos core.Vec2, radius float64) []Target {
	var collected []Target
	kept := m.targets[:0]
	for _, t := range m.targets {
		if core.Within(t.Pos, pos, t.Radius+radius) {
			collected = append(collected, t)
			continue
		}
		kept = append(kept, t)
	}
	m.targets = kept
	return collected
}

// Targets returns the live pool. Callers must not modify it.
func (m *TargetManager) Targets() []Target {
	return m.targets
}

// Len returns the number of live eggs.
func (m *TargetManager) Len() int {
	return len(m.targets)
}

// Clear removes every egg.
func (m *TargetManager) Clear() {
	m.targets = m.targets[:0]
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
