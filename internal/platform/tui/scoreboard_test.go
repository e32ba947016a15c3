package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggshot/internal/storage"
)

func TestScoreboardListings(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, score := range []int{40, 250, 90} {
		if _, err := store.SaveScore(storage.ScoreEntry{GameID: "eggshot", RunID: "0123456789abcdef", Score: score, Eggs: score / 10}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 80, 24)
	if m.GameID() != "eggshot" {
		t.Fatalf("game = %q", m.GameID())
	}
	if len(m.scores) != 3 || m.scores[0].Score != 250 {
		t.Fatalf("top listing = %+v", m.scores)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "3 runs", "best 250", "01234567"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Listing() != ListingRecent || m.scores[0].Score != 90 {
		t.Errorf("recent listing = %v %+v", m.Listing(), m.scores)
	}

	next, cmd := m.Update(runeKey('b'))
	m = next.(ScoreboardModel)
	if cmd == nil || !m.IsGoingBack() || m.View() != "" {
		t.Error("b should go back to the menu")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard message missing")
	}
	if !strings.Contains(m.View(), "no runs yet") {
		t.Error("empty stats line missing")
	}
}
