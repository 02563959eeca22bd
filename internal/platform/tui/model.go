package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/skirmish"
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pauseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model that plays one skirmish match.
type Model struct {
	game     *skirmish.Game
	driver   *behavior.Driver
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	paused   bool
	quitting bool
	err      error
}

// NewModel creates a model driving game. The last terminal row is reserved
// for the help line.
func NewModel(game *skirmish.Game, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	screenH := max(cfg.ScreenH-1, 1)
	game.Resize(cfg.ScreenW, screenH)

	return Model{
		game:   game,
		driver: game.Driver(behavior.WithTimeScale(cfg.TimeScale)),
		screen: core.NewScreen(cfg.ScreenW, screenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MouseEvent(msg); ok && !m.paused {
			return m.send(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	return m.send(KeyEvent(msg))
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one fixed frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	if err := m.driver.Tick(1 / float64(m.config.TickRate)); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if _, done := m.driver.Done(); done {
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) send(ev behavior.Event) (tea.Model, tea.Cmd) {
	if err := m.driver.Send(ev); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if _, done := m.driver.Done(); done {
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	m.game.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skirmish", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("skirmish_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the game and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.screen)

	status := helpStyle.Render(m.help.View(m.keys))
	if m.paused {
		status = pauseStyle.Render("PAUSED") + "  " + status
	}
	return RenderScreen(m.screen) + "\n" + status
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays game in the terminal until the user quits or the match ends.
func Run(game *skirmish.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return fmt.Errorf("game stopped: %w", m.err)
	}
	return nil
}
