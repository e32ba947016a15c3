package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/games/eggshot"
	"github.com/vovakirdan/eggshot/internal/platform/session"
	"github.com/vovakirdan/eggshot/internal/sim"
)

var (
	flagFrames      int
	flagLaunchEvery int
	flagCharge      int
	flagRecord      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless scripted game",
	Long: `Run the game without a frontend. A scripted pilot alternates its aim,
charges and launches on a fixed cycle. The same seed and flags always print
the same state hash.

Examples:
  eggshot sim --seed 1
  eggshot sim --frames 36000 --launch-every 90 --charge 40
  eggshot sim --seed 5 --record --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	def := sim.DefaultOptions()
	simCmd.Flags().IntVar(&flagFrames, "frames", def.Frames, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagLaunchEvery, "launch-every", def.LaunchEvery, "Frames per aim and launch cycle (0 = idle)")
	simCmd.Flags().IntVar(&flagCharge, "charge", def.ChargeFrames, "Frames to charge before each launch")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save scores to the database")
}

func runSim(_ *cobra.Command, _ []string) error {
	bundle, err := assets.Load()
	if err != nil {
		return err
	}
	game, err := eggshot.NewWithConfig(bundle, gameConfig)
	if err != nil {
		return err
	}

	var saver session.ScoreSaver
	if flagRecord {
		if store := openStore(); store != nil {
			defer store.Close()
			saver = store
		}
	}
	rec := session.NewRecorder(game.ID(), saver, nil, logger)

	opts := sim.Options{
		Frames:       flagFrames,
		Seed:         flagSeed,
		TickRate:     flagFPS,
		LaunchEvery:  flagLaunchEvery,
		ChargeFrames: flagCharge,
	}
	sum := sim.Run(game, opts, logger, rec.Observe)
	rec.Finish(game.State())

	printSummary(sum, opts)
	if flagRecord {
		fmt.Printf("Run:       %s (%d saved)\n", rec.RunID(), rec.Saved())
	}
	return nil
}

func printSummary(sum sim.Summary, opts sim.Options) {
	fmt.Printf("Frames:    %d (seed %d, %d fps)\n", sum.Frames, opts.Seed, opts.TickRate)
	fmt.Printf("Landings:  %d\n", sum.Landings)
	fmt.Printf("Eggs:      %d collected, %d golden\n", sum.Collected, sum.Golden)
	fmt.Printf("Enemies:   %d spawned, %d destroyed, %d alive\n", sum.Spawned, sum.Destroyed, len(sum.Final.Enemies))
	fmt.Printf("Deaths:    %d\n", sum.Deaths)
	fmt.Printf("Best:      %d\n", sum.Best)
	fmt.Printf("Final:     score %d, eggs %d, phase %s\n", sum.Final.Score, sum.Final.Eggs, sum.Final.Player.Phase)
	fmt.Printf("Hash:      %016x\n", sum.Hash)
}
