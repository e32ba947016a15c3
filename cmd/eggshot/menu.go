package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggshot/internal/platform/tui"
	"github.com/vovakirdan/eggshot/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu and scoreboard",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends with B, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  eggshot menu
  eggshot menu --fps 30
  eggshot menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := openSound()
	defer sound.Close()

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fixed seed replays the same game every time it is picked.
		run := cfg
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		prev := storedBest(store, menuResult.GameID)
		res, err := tui.Run(game, run, tui.Options{Store: store, Sound: sound, Logger: logger})
		if err != nil {
			return fmt.Errorf("run game: %w", err)
		}
		logGameOver(res, prev)
		if !res.Back {
			return nil
		}
	}
}
