package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/skirmish"
)

var flagDefaults bool

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List unit kinds and their stats",
	Long: `Shows the selectable unit kinds with the stats of the active config
(--config, ~/.skirmish/configs/skirmish.yaml, ./configs/skirmish.yaml or the
built-in defaults, in that order).

--defaults prints the built-in skirmish.yaml, a starting point for your own.`,
	Run: runUnits,
}

func init() {
	unitsCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in skirmish.yaml")
}

func runUnits(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadSkirmish(settings.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Unit kinds:")
	fmt.Println()
	fmt.Printf("  %-3s  %-14s  %-4s  %-6s  %-5s  %-5s  %-5s  %s\n", "Key", "Kind", "Cost", "Health", "Speed", "Range", "Power", "Notes")
	fmt.Printf("  %-3s  %-14s  %-4s  %-6s  %-5s  %-5s  %-5s  %s\n", "---", "----", "----", "------", "-----", "-----", "-----", "-----")

	for i, kind := range skirmish.Selectable {
		stats, _ := cfg.Units.Stats(kind)
		notes := ""
		if kind == skirmish.KindShooterGroup {
			stats, _ = cfg.Units.Stats(skirmish.KindShooter)
			stats.Cost = cfg.Units.ShooterGroup.Cost
			notes = "five shooters"
		}
		if stats.Flying {
			notes = "flying"
		}
		fmt.Printf("  %-3d  %c %-12s  %-4g  %-6g  %-5g  %-5g  %-5g  %s\n",
			i+1, skirmish.Glyph(kind), skirmish.DisplayName(kind),
			stats.Cost, stats.MaxHealth, stats.Speed, stats.Range, stats.Power, notes)
	}

	fmt.Println()
	fmt.Println("Run 'skirmish play' to start a match.")
}
