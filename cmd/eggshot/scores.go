package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggshot/internal/games/eggshot"
	"github.com/vovakirdan/eggshot/internal/platform/tui"
	"github.com/vovakirdan/eggshot/internal/registry"
	"github.com/vovakirdan/eggshot/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
	flagRecent      bool
	flagAll         bool
	flagRun         string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  eggshot scores
  eggshot scores --limit 25
  eggshot scores --recent
  eggshot scores --all
  eggshot scores --run 3f2a9c1e-...   (every death of one session)
  eggshot scores --interactive
  eggshot scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the scoreboard screen")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest scores instead of the best")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every score, best first")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "List the scores of one session by run id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := eggshot.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'eggshot list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}
	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}

	var (
		scores  []storage.ScoreEntry
		heading string
	)
	switch {
	case flagRun != "":
		scores, err = store.RunScores(flagRun)
		heading = "Run " + shortRun(flagRun)
	case flagAll:
		scores, err = store.AllScores(gameID)
		heading = "All Scores"
	case flagRecent:
		scores, err = store.RecentScores(gameID, flagLimit)
		heading = "Recent Scores"
	default:
		scores, err = store.TopScores(gameID, flagLimit)
		heading = "High Scores"
	}
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'eggshot play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-16s  %s\n", "Rank", "Score", "Eggs", "Golden", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-16s  %s\n", "----", "-----", "----", "------", "----", "---")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-16s  %s\n",
			i+1, e.Score, e.Eggs, e.GoldenEggs, e.CreatedAt.Format("2006-01-02 15:04"), shortRun(e.RunID))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.0f   Eggs: %d (%d golden)\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalEggs, stats.GoldenEggs)
	}
	return nil
}

func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
