package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/storage"
)

func menuSend(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, score := range []int{120, 45} {
		if _, err := store.SaveScore(storage.ScoreEntry{GameID: "eggshot", Score: score}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewMenuModel(store, core.DefaultConfig())
	view := m.View()
	for _, want := range []string{"Play Egg Shot", "(best 120, 2 runs)", "High Scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuHidesStatsWithoutRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := NewMenuModel(store, core.DefaultConfig())
	if it := m.items[0]; it.Runs != 0 || it.Best != 0 {
		t.Errorf("play entry = %+v, expected no stats", it)
	}
	if strings.Contains(m.View(), "(best") {
		t.Error("menu should not show stats before any run")
	}
}

func TestMenuResults(t *testing.T) {
	cfg := core.DefaultConfig()

	tests := []struct {
		name string
		keys []tea.Msg
		want MenuResult
	}{
		{"play first entry", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{GameID: "eggshot", Config: cfg}},
		{"scoreboard entry", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{WantsScoreboard: true, Config: cfg}},
		{"tab opens scores", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, MenuResult{WantsScoreboard: true, Config: cfg}},
		{"quit entry", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{Quit: true, Config: cfg}},
		{"q quits", []tea.Msg{runeKey('q')}, MenuResult{Quit: true, Config: cfg}},
		{"cursor stops at top", []tea.Msg{tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{GameID: "eggshot", Config: cfg}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, cfg)
			for _, k := range tt.keys {
				m = menuSend(t, m, k)
			}
			if got := m.Result(); got != tt.want {
				t.Errorf("Result() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := menuSend(t, NewMenuModel(nil, core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	m = menuSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Result().Config; got.ScreenW != 120 || got.ScreenH != 40 {
		t.Errorf("config = %+v", got)
	}
}
