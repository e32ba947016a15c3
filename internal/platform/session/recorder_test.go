package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/platform/audio"
	"github.com/vovakirdan/eggshot/internal/storage"
)

type fakeStore struct {
	entries []storage.ScoreEntry
	err     error
}

func (f *fakeStore) SaveScore(e storage.ScoreEntry) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.entries = append(f.entries, e)
	return int64(len(f.entries)), nil
}

type fakeSound struct{ cues []audio.Cue }

func (f *fakeSound) Play(c audio.Cue) { f.cues = append(f.cues, c) }

func step(events ...core.Event) core.StepResult {
	res := core.StepResult{Events: events}
	if len(events) > 0 {
		res.State = events[len(events)-1].Final
	}
	return res
}

func TestRecorderSavesOnDeathAndFinish(t *testing.T) {
	store := &fakeStore{}
	r := NewRecorder("eggshot", store, nil, nil)

	r.Observe(step(core.Event{Kind: core.EventCollected, Points: 10, Final: core.GameState{Score: 10, Eggs: 1}}))
	if len(store.entries) != 0 {
		t.Fatal("collecting must not save")
	}

	death := core.GameState{Score: 70, Eggs: 5, GoldenEggs: 1}
	r.Observe(step(core.Event{Kind: core.EventDeath, Final: death}))
	if len(store.entries) != 1 {
		t.Fatalf("saved %d entries after death", len(store.entries))
	}
	got := store.entries[0]
	if got.GameID != "eggshot" || got.RunID != r.RunID() || got.Score != 70 || got.Eggs != 5 || got.GoldenEggs != 1 {
		t.Errorf("saved entry = %+v", got)
	}

	r.Finish(core.GameState{Score: 30, Eggs: 3})
	if len(store.entries) != 2 || store.entries[1].Score != 30 {
		t.Errorf("finish entries = %+v", store.entries)
	}
	if r.Deaths() != 1 || r.Saved() != 2 || r.Best() != 70 {
		t.Errorf("deaths %d saved %d best %d", r.Deaths(), r.Saved(), r.Best())
	}
}

func TestRecorderSkipsZeroScores(t *testing.T) {
	store := &fakeStore{}
	r := NewRecorder("eggshot", store, nil, nil)
	r.Observe(step(core.Event{Kind: core.EventDeath}))
	r.Finish(core.GameState{})
	if len(store.entries) != 0 || r.Deaths() != 1 {
		t.Errorf("entries %v deaths %d", store.entries, r.Deaths())
	}
}

func TestRecorderPlaysCues(t *testing.T) {
	sound := &fakeSound{}
	r := NewRecorder("eggshot", nil, sound, nil)
	r.Observe(step(
		core.Event{Kind: core.EventLanded},
		core.Event{Kind: core.EventGoldenCollected, Points: 50, Final: core.GameState{Score: 50}},
		core.Event{Kind: core.EventEnemyDestroyed},
	))

	want := []audio.Cue{audio.CueGolden, audio.CueDestroy}
	if len(sound.cues) != len(want) {
		t.Fatalf("cues = %v, expected %v", sound.cues, want)
	}
	for i := range want {
		if sound.cues[i] != want[i] {
			t.Errorf("cue %d = %v, expected %v", i, sound.cues[i], want[i])
		}
	}
}

func TestRecorderLogsSaveFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := NewRecorder("eggshot", &fakeStore{err: errors.New("disk full")}, nil, logger)

	r.Observe(step(core.Event{Kind: core.EventDeath, Final: core.GameState{Score: 40}}))

	out := buf.String()
	if !strings.Contains(out, "score not saved") || !strings.Contains(out, "disk full") {
		t.Errorf("log output = %q", out)
	}
	if r.Saved() != 0 {
		t.Errorf("Saved = %d after failure", r.Saved())
	}
}

func TestRecorderWithSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	r := NewRecorder("eggshot", store, nil, nil)
	r.Observe(step(core.Event{Kind: core.EventDeath, Final: core.GameState{Score: 120, Eggs: 12}}))
	r.Finish(core.GameState{Score: 20, Eggs: 2})

	run, err := store.RunScores(r.RunID())
	if err != nil {
		t.Fatal(err)
	}
	if len(run) != 2 || run[0].Score != 120 || run[1].Score != 20 {
		t.Errorf("run scores = %+v", run)
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	a := NewRecorder("eggshot", nil, nil, nil)
	b := NewRecorder("eggshot", nil, nil, nil)
	if a.RunID() == b.RunID() || len(a.RunID()) != 36 {
		t.Errorf("run ids %q %q", a.RunID(), b.RunID())
	}
}
