package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

var (
	flagSimRounds  int
	flagSimRecord  bool
	flagSimTimeout float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless bot-vs-bot match",
	Long: `Play a match between two bots without a terminal UI and print the
winner of each round. The simulation uses fixed ticks of 1/fps seconds
scaled by --tempo, so the same seed always gives the same match.

Examples:
  skirmish sim
  skirmish sim --rounds 20 --seed 42
  skirmish sim --record --log-level debug`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRounds, "rounds", 5, "Number of rounds to play")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the rounds to the results database")
	simCmd.Flags().Float64Var(&flagSimTimeout, "max-round-time", 600, "Game seconds a round may last")
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadSkirmish(settings.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr, "skirmish-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := skirmish.SimOptions{
		Rounds:       flagSimRounds,
		Seed:         seed,
		Step:         settings.Tempo.Scale() / float64(settings.FPS),
		MaxRoundTime: flagSimTimeout,
		MatchID:      storage.NewMatchID(),
		Logger:       logger,
	}

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(settings.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		opts.Recorder = store
	}

	fmt.Printf("Simulating %d rounds (seed %d)\n\n", opts.Rounds, seed)

	results, simErr := skirmish.Simulate(gameCfg, opts)

	fmt.Printf("  %-5s  %-6s  %-5s  %-5s  %s\n", "Round", "Winner", "Score", "Units", "Time")
	fmt.Printf("  %-5s  %-6s  %-5s  %-5s  %s\n", "-----", "------", "-----", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-5d  %-6s  %-5s  %-5d  %ds\n",
			r.Round+1,
			skirmish.Team(r.Winner).Name(),
			fmt.Sprintf("%d:%d", r.Points1, r.Points2),
			r.UnitsPlaced,
			r.Duration,
		)
	}

	if len(results) > 0 {
		last := results[len(results)-1]
		fmt.Printf("\nFinal score: Blue %d - Red %d\n", last.Points1, last.Points2)
	}

	if simErr != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", simErr)
		os.Exit(1)
	}
}
