package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/games/eggshot"
	"github.com/vovakirdan/eggshot/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with real key releases.

Controls:
  Left/Right, A/D  - Rotate the aim while held
  Space/Up         - Hold to charge, release to launch
  P                - Pause
  R                - Restart
  M                - Mute
  Q/Esc            - Quit

Examples:
  eggshot window
  eggshot window --width 1024 --height 900 --seed 3`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	bundle, err := assets.Load()
	if err != nil {
		return err
	}
	game, err := eggshot.NewWithConfig(bundle, gameConfig)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := openSound()
	defer sound.Close()

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info("window opened", "width", flagWidth, "height", flagHeight, "seed", cfg.Seed)
	return window.Run(game, cfg, window.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Width:  flagWidth,
		Height: flagHeight,
	})
}
