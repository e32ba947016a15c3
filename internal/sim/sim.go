// Package sim runs Egg Shot without a frontend, driven by a scripted pilot.
// Runs are reproducible: the same seed and options yield the same hash.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/games/eggshot"
)

// Options configures a headless run.
type Options struct {
	Frames   int
	Seed     int64
	TickRate int
	// LaunchEvery is the pilot's cycle length in frames. Each cycle it
	// rotates, charges and launches once. Zero leaves the player idle.
	LaunchEvery int
	// ChargeFrames is how long the pilot holds fire before launching.
	ChargeFrames int
}

// DefaultOptions is one minute of play with a launch every two seconds.
func DefaultOptions() Options {
	return Options{
		Frames:       3600,
		TickRate:     60,
		LaunchEvery:  120,
		ChargeFrames: 30,
	}
}

// Summary reports what happened during a run.
type Summary struct {
	Frames    int
	Deaths    int
	Landings  int
	Collected int
	Golden    int
	Spawned   int
	Destroyed int
	Best      int
	Final     eggshot.Snapshot
	Hash      uint64
}

// pilot holds rotation for a quarter of each cycle, alternating direction,
// then charges and launches.
func pilot(g *eggshot.Game, frame int, opts Options) {
	cycle := opts.LaunchEvery
	if cycle <= 0 {
		return
	}
	aim := cycle / 4
	rotate := core.KeyLeft
	if (frame/cycle)%2 == 1 {
		rotate = core.KeyRight
	}
	charge := min(opts.ChargeFrames, cycle-aim-1)

	switch frame % cycle {
	case 0:
		g.HandleInput(core.Press(rotate))
	case aim:
		g.HandleInput(core.Release(rotate))
		g.HandleInput(core.Press(core.KeyFire))
	case aim + max(charge, 1):
		g.HandleInput(core.Release(core.KeyFire))
	}
}

// Run resets g with the options' seed and plays it for opts.Frames frames.
// observe, when not nil, sees every step result.
func Run(g *eggshot.Game, opts Options, logger *log.Logger, observe func(core.StepResult)) Summary {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: opts.TickRate, Seed: opts.Seed})
	dt := 1 / float64(opts.TickRate)

	var sum Summary
	for frame := range opts.Frames {
		pilot(g, frame, opts)
		res := g.Update(dt)
		if observe != nil {
			observe(res)
		}
		sum.Best = max(sum.Best, res.State.Score)

		for _, ev := range res.Events {
			sum.Best = max(sum.Best, ev.Final.Score)
			switch ev.Kind {
			case core.EventLanded:
				sum.Landings++
				logger.Debug("landed", "frame", frame, "score", ev.Final.Score)
			case core.EventCollected:
				sum.Collected++
			case core.EventGoldenCollected:
				sum.Golden++
				logger.Debug("golden egg", "frame", frame, "score", ev.Final.Score)
			case core.EventEnemySpawned:
				sum.Spawned++
			case core.EventEnemyDestroyed:
				sum.Destroyed++
			case core.EventDeath:
				sum.Deaths++
				logger.Info("death", "frame", frame, "score", ev.Final.Score, "eggs", ev.Final.Eggs)
			}
		}
	}

	sum.Frames = opts.Frames
	sum.Final = g.Snapshot()
	sum.Hash = sum.Final.Hash()
	return sum
}
