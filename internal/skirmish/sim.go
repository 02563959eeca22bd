package skirmish

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

// ErrRoundTimeout is returned by Simulate when a round has no winner in time.
var ErrRoundTimeout = errors.New("skirmish: round timed out")

// SimOptions configures a headless bot-vs-bot match.
type SimOptions struct {
	Rounds       int
	Seed         int64
	Step         float64 // Tick length in seconds
	MaxRoundTime float64 // Game seconds a round may last; 0 means 600
	Recorder     Recorder
	MatchID      string
	Logger       *log.Logger
}

// Simulate plays opts.Rounds rounds between two bots with fixed-size ticks
// and returns the round results in order. The same seed always produces the
// same match.
func Simulate(cfg config.SkirmishConfig, opts SimOptions) ([]storage.RoundResult, error) {
	if opts.Rounds <= 0 {
		return nil, fmt.Errorf("skirmish: need at least one round, got %d", opts.Rounds)
	}
	step := opts.Step
	if step <= 0 {
		step = 1.0 / 60
	}
	limit := opts.MaxRoundTime
	if limit <= 0 {
		limit = 600
	}

	var results []storage.RoundResult
	g := New(cfg, Options{
		Team1:         NewBot(opts.Seed),
		Team2:         NewBot(opts.Seed + 1),
		Recorder:      opts.Recorder,
		MatchID:       opts.MatchID,
		MaxRounds:     opts.Rounds,
		ContinueAfter: 0.5,
		Logger:        opts.Logger,
		OnRound: func(r storage.RoundResult) {
			results = append(results, r)
		},
	})
	d := g.Driver()

	for {
		if _, done := d.Done(); done {
			return results, nil
		}
		w := g.World()
		if w.Winner == NoTeam && w.Elapsed > limit {
			return results, fmt.Errorf("%w: round %d ran for %.0fs", ErrRoundTimeout, w.Round+1, w.Elapsed)
		}
		if err := d.Tick(step); err != nil {
			return results, err
		}
	}
}
