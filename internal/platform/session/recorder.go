// Package session turns simulation step events into side effects shared by
// every frontend: log lines, sound cues and saved scores.
package session

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/platform/audio"
	"github.com/vovakirdan/eggshot/internal/storage"
)

// ScoreSaver persists finished runs. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(storage.ScoreEntry) (int64, error)
}

// CuePlayer plays sound cues. *audio.Player satisfies it.
type CuePlayer interface {
	Play(audio.Cue)
}

// Recorder watches one play session. A session spans every death and
// restart until the frontend exits, and all its scores share a run ID.
type Recorder struct {
	gameID string
	runID  string
	store  ScoreSaver
	sound  CuePlayer
	logger *log.Logger

	deaths int
	saved  int
	best   int
}

// NewRecorder starts a session. Any of store, sound and logger may be nil.
func NewRecorder(gameID string, store ScoreSaver, sound CuePlayer, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runID := uuid.NewString()
	return &Recorder{
		gameID: gameID,
		runID:  runID,
		store:  store,
		sound:  sound,
		logger: logger.With("run", runID[:8]),
	}
}

// RunID identifies the session in storage.
func (r *Recorder) RunID() string { return r.runID }

// Deaths counts deaths seen so far.
func (r *Recorder) Deaths() int { return r.deaths }

// Saved counts scores written to the store.
func (r *Recorder) Saved() int { return r.saved }

// Best is the highest score reached in the session.
func (r *Recorder) Best() int { return r.best }

// Observe handles the events of one step.
func (r *Recorder) Observe(res core.StepResult) {
	for _, ev := range res.Events {
		if r.sound != nil {
			if cue := audio.CueFor(ev); cue != audio.CueNone {
				r.sound.Play(cue)
			}
		}
		r.best = max(r.best, ev.Final.Score)

		switch ev.Kind {
		case core.EventLanded, core.EventCollected:
			r.logger.Debug(ev.Kind.String(), "score", ev.Final.Score, "eggs", ev.Final.Eggs)
		case core.EventGoldenCollected:
			r.logger.Info("golden egg", "score", ev.Final.Score, "golden", ev.Final.GoldenEggs)
		case core.EventEnemySpawned:
			r.logger.Info("enemy spawned", "score", ev.Final.Score, "enemies", ev.Final.Enemies)
		case core.EventEnemyDestroyed:
			r.logger.Info("enemy destroyed", "enemies", ev.Final.Enemies)
		case core.EventDeath:
			r.deaths++
			r.logger.Info("death", "score", ev.Final.Score, "eggs", ev.Final.Eggs, "deaths", r.deaths)
			r.save(ev.Final)
		}
	}
	r.best = max(r.best, res.State.Score)
}

// Finish records the run in progress when the frontend exits.
func (r *Recorder) Finish(state core.GameState) {
	r.best = max(r.best, state.Score)
	r.save(state)
	r.logger.Info("session finished", "deaths", r.deaths, "best", r.best, "saved", r.saved)
}

func (r *Recorder) save(state core.GameState) {
	if state.Score <= 0 || r.store == nil {
		return
	}
	_, err := r.store.SaveScore(storage.ScoreEntry{
		GameID:     r.gameID,
		RunID:      r.runID,
		Score:      state.Score,
		Eggs:       state.Eggs,
		GoldenEggs: state.GoldenEggs,
	})
	if err != nil {
		r.logger.Warn("score not saved", "score", state.Score, "err", err)
		return
	}
	r.saved++
	r.logger.Debug("score saved", "score", state.Score)
}
