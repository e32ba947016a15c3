package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/games/eggshot"
	"github.com/vovakirdan/eggshot/internal/platform/audio"
	"github.com/vovakirdan/eggshot/internal/platform/tui"
	"github.com/vovakirdan/eggshot/internal/registry"
	"github.com/vovakirdan/eggshot/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Left/Right, A/D  - Rotate the aim
  Space/Up         - Start charging, press again to launch
  P/Esc            - Pause
  R                - Restart
  M                - Mute
  Ctrl+S           - Screenshot
  B                - Back
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a held key counts as held while it
keeps repeating. Space toggles: the first press starts charging and the next
press launches.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  eggshot play
  eggshot play --difficulty hard
  eggshot play --config ./my-eggshot.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := eggshot.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'eggshot list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := openSound()
	defer sound.Close()

	prev := storedBest(store, gameID)
	res, err := tui.Run(game, terminalConfig(), tui.Options{Store: store, Sound: sound, Logger: logger})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logGameOver(res, prev)
	return nil
}

// storedBest is the best saved score for gameID, or 0 without a store.
func storedBest(store *storage.Store, gameID string) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("cannot read high score", "game", gameID, "err", err)
		return 0
	}
	return best
}

// logGameOver reports whether the session beat the previous stored best.
func logGameOver(res tui.Result, prev int) bool {
	record := res.Best > prev
	logger.Info("game over", "run", res.RunID, "best", res.Best, "previous", prev, "record", record)
	return record
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openSound starts the speaker unless muted. The returned player is nil
// when sound is unavailable; a nil player is silent.
func openSound() *audio.Player {
	if flagMute {
		return nil
	}
	p := audio.NewPlayer(0.4)
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return p
}
