package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

var (
	flagHostKey     string
	flagIdleTimeout int
	flagServeVsBot  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skirmish SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own match. Rounds are stored per-server in
the results database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skirmish/host_key

Examples:
  skirmish serve                           # Listen on 0.0.0.0:2323
  skirmish serve --port 2222               # Listen on port 2222
  skirmish serve --vs-bot                  # Every visitor plays against a bot
  skirmish serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().String(config.KeyHost, "0.0.0.0", "SSH listen host")
	serveCmd.Flags().Int(config.KeyPort, 2323, "SSH listen port")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeVsBot, "vs-bot", false, "Let a bot play the red team in every session")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadSkirmish(settings.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr, "skirmish-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage
		store = nil
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = settings.FPS
	cfg.TimeScale = settings.Tempo.Scale()
	cfg.Game = gameCfg
	cfg.VsBot = flagServeVsBot

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting skirmish SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %d\n", settings.Port)
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	if store != nil {
		store.Close()
	}
	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
