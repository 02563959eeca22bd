package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

type fakeSource struct {
	rounds []storage.RoundResult
	err    error
}

func (f *fakeSource) RecentRounds(limit int) ([]storage.RoundResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rounds[:min(limit, len(f.rounds))], nil
}

func (f *fakeSource) MatchRounds(matchID string) ([]storage.RoundResult, error) {
	var out []storage.RoundResult
	for _, r := range f.rounds {
		if r.MatchID == matchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSource) Standings() (storage.Standings, error) {
	if f.err != nil {
		return storage.Standings{}, f.err
	}
	s := storage.Standings{Rounds: len(f.rounds), Matches: 2}
	for _, r := range f.rounds {
		if r.Winner == 1 {
			s.Team1Wins++
		} else {
			s.Team2Wins++
		}
	}
	return s, nil
}

func sampleSource() *fakeSource {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return &fakeSource{rounds: []storage.RoundResult{
		{MatchID: "bbbbbbbb-2", Round: 1, Winner: 2, Points1: 0, Points2: 2, UnitsPlaced: 9, Duration: 80, CreatedAt: now},
		{MatchID: "bbbbbbbb-2", Round: 0, Winner: 2, Points1: 0, Points2: 1, UnitsPlaced: 7, Duration: 64, CreatedAt: now},
		{MatchID: "aaaaaaaa-1", Round: 0, Winner: 1, Points1: 1, Points2: 0, UnitsPlaced: 4, Duration: 41, CreatedAt: now},
	}}
}

func TestResultsShowStandingsAndRounds(t *testing.T) {
	m := NewResultsModel(sampleSource(), 100, 30)

	require.NoError(t, m.Err())
	view := m.View()
	assert.Contains(t, view, "Blue 1")
	assert.Contains(t, view, "Red 2")
	assert.Contains(t, view, "3 rounds in 2 matches")
	assert.Contains(t, view, "recent rounds")
	assert.Len(t, m.table.Rows(), 3)
}

func TestResultsCycleMatches(t *testing.T) {
	m := NewResultsModel(sampleSource(), 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	assert.Contains(t, m.View(), "match bbbbbbbb")
	assert.Len(t, m.table.Rows(), 2)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	assert.Contains(t, m.View(), "match aaaaaaaa")
	assert.Len(t, m.table.Rows(), 1)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	assert.Contains(t, m.View(), "recent rounds")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ResultsModel)
	assert.Contains(t, m.View(), "match aaaaaaaa")
}

func TestResultsEmpty(t *testing.T) {
	m := NewResultsModel(&fakeSource{}, 80, 24)

	assert.Contains(t, m.View(), "No rounds recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, next.(ResultsModel).View(), "recent rounds")
}

func TestResultsLoadError(t *testing.T) {
	m := NewResultsModel(&fakeSource{err: errors.New("no such table")}, 80, 24)

	assert.EqualError(t, m.Err(), "no such table")
	assert.Contains(t, m.View(), "Error: no such table")
}

func TestResultsQuit(t *testing.T) {
	m := NewResultsModel(sampleSource(), 80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
