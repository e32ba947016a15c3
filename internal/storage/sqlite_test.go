package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, e ScoreEntry) {
	t.Helper()
	if _, err := s.SaveScore(e); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", e, err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.eggshot/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".eggshot", "scores.db"); got != want {
		t.Errorf("ExpandPath = %q, expected %q", got, want)
	}
	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "eggshot", RunID: "run-a", Score: 100, Eggs: 10})
	mustSave(t, store, ScoreEntry{GameID: "eggshot", RunID: "run-a", Score: 50, Eggs: 5})
	mustSave(t, store, ScoreEntry{GameID: "eggshot", RunID: "run-b", Score: 200, Eggs: 15, GoldenEggs: 1})
	mustSave(t, store, ScoreEntry{GameID: "other", Score: 500})

	scores, err := store.TopScores("eggshot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}

	best := scores[0]
	if best.RunID != "run-b" || best.Eggs != 15 || best.GoldenEggs != 1 {
		t.Errorf("Entry fields not round-tripped: %+v", best)
	}
	if best.CreatedAt.IsZero() || time.Since(best.CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v", best.CreatedAt)
	}
}

func TestStoreSaveRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil || !strings.Contains(err.Error(), "game id") {
		t.Errorf("SaveScore error = %v", err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		mustSave(t, store, ScoreEntry{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	if all, _ := store.TopScores("test", 0); len(all) != 5 {
		t.Errorf("non-positive limit should default to 10, got %d rows", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("eggshot")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		mustSave(t, store, ScoreEntry{GameID: "eggshot", Score: s})
	}
	if high, _ = store.HighScore("eggshot"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, ScoreEntry{GameID: "eggshot", Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "eggshot", Score: 200})
	mustSave(t, store, ScoreEntry{GameID: "other", Score: 300})

	if err := store.ClearScores("eggshot"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.AllScores("eggshot"); len(left) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(left))
	}
	if other, _ := store.AllScores("other"); len(other) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)
	for i := range 20 {
		mustSave(t, store, ScoreEntry{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{50, 300, 20, 80} {
		mustSave(t, store, ScoreEntry{GameID: "eggshot", Score: score})
	}
	mustSave(t, store, ScoreEntry{GameID: "other", Score: 999})

	recent, err := store.RecentScores("eggshot", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{80, 20, 300}
	if len(recent) != len(want) {
		t.Fatalf("got %d scores, expected %d", len(recent), len(want))
	}
	for i, w := range want {
		if recent[i].Score != w {
			t.Errorf("recent[%d] = %d, expected %d", i, recent[i].Score, w)
		}
	}
}

func TestStoreRunScores(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, ScoreEntry{GameID: "eggshot", RunID: "r1", Score: 30})
	mustSave(t, store, ScoreEntry{GameID: "eggshot", RunID: "r2", Score: 90})
	mustSave(t, store, ScoreEntry{GameID: "eggshot", RunID: "r1", Score: 70})

	run, err := store.RunScores("r1")
	if err != nil {
		t.Fatalf("RunScores() failed: %v", err)
	}
	if len(run) != 2 || run[0].Score != 30 || run[1].Score != 70 {
		t.Errorf("RunScores(r1) = %+v, expected 30 then 70", run)
	}
	if none, _ := store.RunScores("missing"); len(none) != 0 {
		t.Errorf("unknown run returned %d rows", len(none))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("eggshot")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, ScoreEntry{GameID: "eggshot", Score: 100, Eggs: 5, GoldenEggs: 1})
	mustSave(t, store, ScoreEntry{GameID: "eggshot", Score: 300, Eggs: 20, GoldenEggs: 2})
	mustSave(t, store, ScoreEntry{GameID: "other", Score: 40, Eggs: 4})

	stats, err := store.GetGameStats("eggshot")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalEggs != 25 || stats.GoldenEggs != 3 {
		t.Errorf("egg totals = %d, %d", stats.TotalEggs, stats.GoldenEggs)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["other"].HighScore != 40 || all["eggshot"].GamesCount != 2 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		in   any
		want time.Time
	}{
		{want, want},
		{"2024-03-01 12:30:00", want},
		{"2024-03-01T12:30:00Z", want},
		{"garbage", time.Time{}},
		{nil, time.Time{}},
	}
	for _, tc := range tests {
		if got := parseTimestamp(tc.in); !got.Equal(tc.want) {
			t.Errorf("parseTimestamp(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
