package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

var (
	flagVsBot  bool
	flagRounds int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in this terminal. Blue (bottom) and Red (top) take
turns placing units into their start area. By default both teams are played
from this keyboard; --vs-bot hands Red to the computer.

Controls:
  1-6          - Select unit kind (or click a slot)
  Mouse/Arrows - Aim
  Enter/Click  - Place the selected unit
  P/Esc        - Pause
  Ctrl+S       - Screenshot to ~/.skirmish/screenshots
  Q/Ctrl+C     - Quit

Examples:
  skirmish play
  skirmish play --vs-bot
  skirmish play --rounds 3 --tempo fast
  skirmish play --config ./my-skirmish.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagVsBot, "vs-bot", false, "Let a bot play the red team")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Stop after this many rounds (0 = play until quit)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadSkirmish(settings.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "skirmish")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if width < skirmish.MinScreenW || height-1 < skirmish.MinScreenH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n",
			width, height, skirmish.MinScreenW, skirmish.MinScreenH+1)
	}

	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  settings.FPS,
		Seed:      settings.Seed,
		TimeScale: settings.Tempo.Scale(),
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	opts := skirmish.Options{
		MaxRounds: flagRounds,
		Logger:    logger,
	}
	if flagVsBot {
		opts.Team2 = skirmish.NewBot(rc.Seed)
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		opts.Recorder = store
	}

	game := skirmish.New(gameCfg, opts)
	logger.Info("match started", "match", game.MatchID(), "vs_bot", flagVsBot, "tempo", settings.Tempo)

	runErr := tui.Run(game, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("match stopped", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
