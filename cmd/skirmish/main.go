// skirmish is a turn-based unit battle for two players in the terminal.
//
// Usage:
//
//	skirmish play            - Play a match (hot seat, or --vs-bot)
//	skirmish sim             - Run a headless bot-vs-bot match
//	skirmish results         - Show recorded rounds and standings
//	skirmish units           - List unit kinds and their stats
//	skirmish serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible bots
//	--db <path>         - Set database path (default: ~/.skirmish/results.db)
//	--config <path>     - Use a custom skirmish.yaml
//	--tempo <preset>    - Game speed: slow, normal, fast
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn, error
//
// Every global flag can also be set in ~/.skirmish/settings.toml or through
// SKIRMISH_* environment variables (SKIRMISH_LOG_LEVEL=debug).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/config"
)

// settings is loaded before any subcommand runs.
var settings config.Settings

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skirmish",
	Short: "TUI Skirmish - a turn-based unit battle in your terminal",
	Long: `TUI Skirmish is a two-team battle game. Teams take turns placing
units; units march on the enemy base and fight whatever they meet. The
first unit to reach the enemy base line wins the round.

Available commands:
  play     - Play a match in this terminal
  sim      - Run a headless bot-vs-bot match
  results  - View recorded rounds and standings
  units    - List unit kinds and their stats
  serve    - Start SSH server for remote play

Examples:
  skirmish play
  skirmish play --vs-bot --tempo fast
  skirmish sim --rounds 10 --seed 42
  skirmish results
  skirmish serve --port 2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		s, err := config.LoadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		settings = s
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int(config.KeyFPS, 60, "Tick rate (frames per second)")
	pf.Int64(config.KeySeed, 0, "RNG seed for bots (0 = random based on time)")
	pf.String(config.KeyDB, config.DefaultDBPath(), "Path to results database")
	pf.String(config.KeyConfig, "", "Path to custom skirmish.yaml")
	pf.String(config.KeyTempo, string(config.TempoNormal), "Game speed: slow, normal, fast")
	pf.String(config.KeyLogFile, "", "Write logs to this file")
	pf.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(serveCmd)
}
