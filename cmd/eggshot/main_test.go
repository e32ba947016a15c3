package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggshot/internal/config"
	"github.com/vovakirdan/eggshot/internal/platform/tui"
	"github.com/vovakirdan/eggshot/internal/storage"
)

func TestEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvFPS, "30")
	t.Setenv(config.EnvSeed, "5")
	t.Setenv(config.EnvDifficulty, "hard")
	t.Setenv(config.EnvDB, filepath.Join(t.TempDir(), "scores.db"))

	rootCmd.SetArgs([]string{"sim", "--frames", "60", "--seed", "9"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if flagFPS != 30 {
		t.Errorf("fps = %d, expected the environment value", flagFPS)
	}
	if flagSeed != 9 {
		t.Errorf("seed = %d, expected the flag to win", flagSeed)
	}
	if !gameConfig.Difficulty.Enabled || gameConfig.Difficulty.InitialLevel == 0 {
		t.Errorf("hard preset not applied: %+v", gameConfig.Difficulty)
	}
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	saved := flagFPS
	t.Cleanup(func() { flagFPS = saved })

	cmd := &cobra.Command{Use: "sim"}
	t.Setenv(config.EnvFPS, "fast")
	if err := applyEnv(cmd); err == nil || !strings.Contains(err.Error(), config.EnvFPS) {
		t.Errorf("applyEnv error = %v", err)
	}

	t.Setenv(config.EnvFPS, "0")
	if err := applyEnv(cmd); err == nil {
		t.Error("zero fps should be rejected")
	}
}

func TestOwnsTerminal(t *testing.T) {
	tests := []struct {
		cmd         *cobra.Command
		interactive bool
		want        bool
	}{
		{playCmd, false, true},
		{menuCmd, false, true},
		{windowCmd, false, false},
		{simCmd, false, false},
		{scoresCmd, false, false},
		{scoresCmd, true, true},
	}
	saved := flagInteractive
	t.Cleanup(func() { flagInteractive = saved })

	for _, tt := range tests {
		flagInteractive = tt.interactive
		if got := ownsTerminal(tt.cmd); got != tt.want {
			t.Errorf("ownsTerminal(%s, interactive=%v) = %v", tt.cmd.Name(), tt.interactive, got)
		}
	}
}

func TestShortRun(t *testing.T) {
	if got := shortRun("0123456789"); got != "01234567" {
		t.Errorf("shortRun = %q", got)
	}
	if got := shortRun("abc"); got != "abc" {
		t.Errorf("shortRun = %q", got)
	}
}

func TestStoredBestAndRecord(t *testing.T) {
	if got := storedBest(nil, "eggshot"); got != 0 {
		t.Errorf("storedBest without a store = %d", got)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "eggshot", Score: 80}); err != nil {
		t.Fatal(err)
	}

	prev := storedBest(store, "eggshot")
	if prev != 80 {
		t.Fatalf("storedBest = %d, expected 80", prev)
	}
	if logGameOver(tui.Result{Best: 80}, prev) {
		t.Error("tying the stored best is not a record")
	}
	if !logGameOver(tui.Result{Best: 95}, prev) {
		t.Error("beating the stored best should be a record")
	}
}
