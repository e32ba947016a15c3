// eggshot launches a player egg from the ground, collecting eggs and dodging
// enemies, in the terminal or in a desktop window.
//
// Usage:
//
//	eggshot play            - Play in the terminal
//	eggshot menu            - Start menu with scoreboard
//	eggshot window          - Play in a desktop window
//	eggshot sim             - Run a headless scripted game
//	eggshot scores          - Show high scores
//	eggshot list            - List available games
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.eggshot/scores.db)
//	--config <path>        - Load game tuning from a YAML file
//	--difficulty <preset>  - easy, normal, hard or fixed
//
// Every flag except --env-file also reads an EGGSHOT_* variable, optionally
// loaded from a .env file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggshot/internal/config"
	// Importing the game also registers it.
	"github.com/vovakirdan/eggshot/internal/games/eggshot"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagEnvFile    string
	flagMute       bool
)

var (
	logger     = log.New(io.Discard)
	logFile    *os.File
	gameConfig config.EggshotConfig
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggshot",
	Short: "Egg Shot - launch, collect, survive",
	Long: `Egg Shot is a small arcade game. Aim, charge and launch yourself from the
ground to collect eggs while enemies hunt you. Golden eggs make you briefly
invulnerable and destroy every enemy you touch.

Available commands:
  play     - Play in the terminal
  menu     - Interactive menu with scoreboard
  window   - Play in a desktop window
  sim      - Run a headless scripted game
  scores   - View high scores
  list     - Show all available games

Examples:
  eggshot play
  eggshot play --difficulty hard
  eggshot window --seed 42
  eggshot sim --frames 7200 --seed 1
  eggshot scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.eggshot/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal modes log nowhere otherwise)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagEnvFile, "env-file", "", "Load EGGSHOT_* variables from this file (default: ./.env if present)")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup resolves flags against the environment, then builds the logger and
// the game configuration shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(flagEnvFile); err != nil {
		return err
	}
	if err := applyEnv(cmd); err != nil {
		return err
	}

	l, err := newLogger(cmd)
	if err != nil {
		return err
	}
	logger = l

	cfg, err := config.LoadEggshot(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyEggshotPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	gameConfig = cfg
	eggshot.SetConfig(cfg)

	logger.Debug("configured", "fps", flagFPS, "seed", flagSeed, "db", flagDBPath, "difficulty", flagDifficulty)
	return nil
}

// applyEnv fills flags the user did not set from EGGSHOT_* variables.
func applyEnv(cmd *cobra.Command) error {
	changed := cmd.Flags().Changed
	var err error
	if !changed("fps") {
		if flagFPS, err = config.EnvInt(config.EnvFPS, flagFPS); err != nil {
			return err
		}
	}
	if !changed("seed") {
		if flagSeed, err = config.EnvInt64(config.EnvSeed, flagSeed); err != nil {
			return err
		}
	}
	if !changed("db") {
		flagDBPath = config.EnvString(config.EnvDB, flagDBPath)
	}
	if !changed("difficulty") {
		flagDifficulty = config.EnvString(config.EnvDifficulty, flagDifficulty)
	}
	if !changed("config") {
		flagConfig = config.EnvString(config.EnvConfig, flagConfig)
	}
	if !changed("log-level") {
		flagLogLevel = config.EnvString(config.EnvLogLevel, flagLogLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}
	return nil
}

// newLogger writes to --log-file when given. Without one, only the window
// and headless commands log to stderr, since the terminal UI owns the screen.
func newLogger(cmd *cobra.Command) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	case !ownsTerminal(cmd):
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "eggshot",
		Level:           level,
	}), nil
}

func ownsTerminal(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case playCmd.Name(), menuCmd.Name():
		return true
	case scoresCmd.Name():
		return flagInteractive
	}
	return false
}
