package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/config"
	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/games/eggshot"
)

func newGame(t *testing.T) *eggshot.Game {
	t.Helper()
	g, err := eggshot.NewWithConfig(assets.MustLoad(), config.DefaultEggshotConfig())
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRunIsReproducible(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 77

	a := Run(newGame(t), opts, nil, nil)
	b := Run(newGame(t), opts, nil, nil)
	if a.Hash != b.Hash {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash, b.Hash)
	}
	a.Final, b.Final = eggshot.Snapshot{}, eggshot.Snapshot{}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("summaries differ:\n%+v\n%+v", a, b)
	}

	opts.Seed = 78
	if c := Run(newGame(t), opts, nil, nil); c.Hash == b.Hash {
		t.Error("a different seed should change the run")
	}
}

func TestRunPilotLaunches(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 3
	sum := Run(newGame(t), opts, nil, nil)

	if sum.Frames != opts.Frames || sum.Final.Frame == 0 {
		t.Errorf("frames = %d, final frame %d", sum.Frames, sum.Final.Frame)
	}
	if sum.Landings == 0 {
		t.Error("pilot never landed")
	}
	if sum.Best < sum.Final.Score {
		t.Errorf("best %d below final score %d", sum.Best, sum.Final.Score)
	}
}

func TestRunObserverSeesEveryFrame(t *testing.T) {
	opts := Options{Frames: 90, Seed: 1, LaunchEvery: 40, ChargeFrames: 10}
	steps, landed := 0, 0
	Run(newGame(t), opts, nil, func(res core.StepResult) {
		steps++
		for _, ev := range res.Events {
			if ev.Kind == core.EventLanded {
				landed++
			}
		}
	})
	if steps != 90 {
		t.Errorf("observer saw %d steps, expected 90", steps)
	}
	if landed == 0 {
		t.Error("expected at least one landing in 90 frames")
	}
}

func TestIdlePilot(t *testing.T) {
	sum := Run(newGame(t), Options{Frames: 10, Seed: 1}, nil, nil)
	if sum.Landings != 0 || sum.Final.Player.Phase != eggshot.PhaseAiming {
		t.Errorf("idle run = %+v", sum)
	}
}
