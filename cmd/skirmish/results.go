package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded rounds and standings",
	Long: `Display the overall standings and the most recent rounds.

In a terminal this opens an interactive table; tab cycles through the
recorded matches. --plain prints a text table instead.

Examples:
  skirmish results
  skirmish results --plain --limit 20
  skirmish results --clear`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rounds to show with --plain")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded rounds deleted.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunResults(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printResults(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
}

func printResults(store *storage.Store, limit int) error {
	standings, err := store.Standings()
	if err != nil {
		return err
	}
	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}

	fmt.Println("Standings")
	fmt.Println()
	if standings.Rounds == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skirmish play' or 'skirmish sim --record' to record some!")
		return nil
	}
	fmt.Printf("  Blue %d - Red %d  (%d rounds in %d matches, last played %s)\n\n",
		standings.Team1Wins, standings.Team2Wins, standings.Rounds, standings.Matches,
		standings.LastPlayed.Local().Format("2006-01-02 15:04"))

	fmt.Printf("  %-8s  %-5s  %-6s  %-5s  %-5s  %-5s  %s\n", "Match", "Round", "Winner", "Score", "Units", "Time", "Date")
	fmt.Printf("  %-8s  %-5s  %-6s  %-5s  %-5s  %-5s  %s\n", "-----", "-----", "------", "-----", "-----", "----", "----")
	for _, r := range rounds {
		match := r.MatchID
		if len(match) > 8 {
			match = match[:8]
		}
		fmt.Printf("  %-8s  %-5d  %-6s  %-5s  %-5d  %-5s  %s\n",
			match,
			r.Round+1,
			skirmish.Team(r.Winner).Name(),
			fmt.Sprintf("%d:%d", r.Points1, r.Points2),
			r.UnitsPlaced,
			fmt.Sprintf("%ds", r.Duration),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return nil
}
