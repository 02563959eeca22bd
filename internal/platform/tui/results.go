package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skirmish/internal/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

// Results layout constants
const (
	maxResults   = 100 // Max rounds to load
	matchIDWidth = 8   // Shown prefix of a match ID
)

// ResultsSource provides stored rounds. *storage.Store implements it.
type ResultsSource interface {
	RecentRounds(limit int) ([]storage.RoundResult, error)
	MatchRounds(matchID string) ([]storage.RoundResult, error)
	Standings() (storage.Standings, error)
}

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextMatch key.Binding
	PrevMatch key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMatch, k.PrevMatch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMatch, k.PrevMatch, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev match"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results screen. It shows
// the overall standings above a table of rounds, either the most recent
// ones or those of a single match.
type ResultsModel struct {
	source    ResultsSource
	standings storage.Standings
	recent    []storage.RoundResult
	matches   []string // Match IDs, newest first
	cursor    int      // 0 shows recent rounds, i > 0 shows matches[i-1]
	rounds    []storage.RoundResult
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	width     int
	height    int
	err       error
	quitting  bool
}

// NewResultsModel loads the standings and recent rounds from source.
func NewResultsModel(source ResultsSource, width, height int) ResultsModel {
	m := ResultsModel{
		source: source,
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ResultsModel) load() {
	standings, err := m.source.Standings()
	if err != nil {
		m.err = err
		return
	}
	recent, err := m.source.RecentRounds(maxResults)
	if err != nil {
		m.err = err
		return
	}
	m.standings = standings
	m.recent = recent

	seen := make(map[string]bool)
	m.matches = m.matches[:0]
	for _, r := range recent {
		if !seen[r.MatchID] {
			seen[r.MatchID] = true
			m.matches = append(m.matches, r.MatchID)
		}
	}
	m.show(0)
}

// show switches the table to the recent rounds or one match.
func (m *ResultsModel) show(cursor int) {
	m.cursor = cursor
	if cursor == 0 {
		m.rounds = m.recent
	} else {
		rounds, err := m.source.MatchRounds(m.matches[cursor-1])
		if err != nil {
			m.err = err
			return
		}
		m.rounds = rounds
	}
	m.updateTableRows()
}

func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Match", Width: matchIDWidth},
		{Title: "Round", Width: 6},
		{Title: "Winner", Width: 7},
		{Title: "Score", Width: 7},
		{Title: "Units", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			shortID(r.MatchID),
			fmt.Sprintf("%d", r.Round+1),
			skirmish.Team(r.Winner).Name(),
			fmt.Sprintf("%d:%d", r.Points1, r.Points2),
			fmt.Sprintf("%d", r.UnitsPlaced),
			fmt.Sprintf("%ds", r.Duration),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMatch):
			if len(m.matches) > 0 {
				m.show((m.cursor + 1) % (len(m.matches) + 1))
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMatch):
			if len(m.matches) > 0 {
				n := len(m.matches) + 1
				m.show((m.cursor - 1 + n) % n)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RESULTS - recent rounds"
	if m.cursor > 0 {
		title = fmt.Sprintf("RESULTS - match %s", shortID(m.matches[m.cursor-1]))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderStandings())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ResultsModel) renderStandings() string {
	s := m.standings
	blue := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render(fmt.Sprintf("Blue %d", s.Team1Wins))
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(fmt.Sprintf("Red %d", s.Team2Wins))

	line := fmt.Sprintf("%s : %s   %d rounds in %d matches", blue, red, s.Rounds, s.Matches)
	if !s.LastPlayed.IsZero() {
		line += ", last played " + s.LastPlayed.Local().Format("Jan 02 15:04")
	}
	return line
}

func (m ResultsModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay a match to fill this table!")
	}
	return m.table.View()
}

// Err returns the error that occurred while loading results.
func (m ResultsModel) Err() error {
	return m.err
}

func shortID(id string) string {
	if len(id) > matchIDWidth {
		return id[:matchIDWidth]
	}
	return id
}

// RunResults runs the results screen.
func RunResults(source ResultsSource, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(source, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ResultsModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
