package skirmish

import (
	"fmt"
	"math"

	bt "github.com/joeycumines/go-behaviortree"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/behavior/btree"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

// rounds plays rounds until the match is over.
func (g *Game) rounds() behavior.Behavior {
	return behavior.Run(behavior.While(g.matchGoesOn, g.round))
}

func (g *Game) matchGoesOn() bool {
	return g.opts.MaxRounds <= 0 || g.world.Round < g.opts.MaxRounds
}

// round runs turns until a unit reaches the enemy base, records the result
// and waits before the next round.
func (g *Game) round() behavior.Behavior {
	var result storage.RoundResult

	return behavior.Run(behavior.Steps(
		behavior.Do(g.startRound),
		behavior.Yield(func() behavior.Behavior {
			return behavior.First(g.winCondition(), behavior.Repeat(g.turn))
		}),
		behavior.Do(func() { result = g.finishRound() }),
		func(any) behavior.Behavior { return g.record(result) },
		behavior.Do(g.pool.Clear),
		func(any) behavior.Behavior {
			if !g.matchGoesOn() {
				return nil
			}
			return g.waitForContinue()
		},
	))
}

func (g *Game) startRound() {
	g.world.Reset()
	g.log.Debug("round started", "round", g.world.Round+1, "first", g.world.ActiveTeam().Name())
}

// winCondition completes once a team crossed the enemy base line. Team 1
// wins ties within the same tick.
func (g *Game) winCondition() behavior.Behavior {
	award := func(team Team) bt.Node {
		return bt.New(
			bt.Sequence,
			btree.Condition(func() bool { return g.world.crossed(team) }),
			btree.Action(func() {
				g.world.Winner = team
				g.world.Points[team.index()]++
			}),
		)
	}
	return btree.UntilSuccess(bt.New(bt.Selector, award(Team1), award(Team2)))
}

// turn gives the active team until its timer runs out to place one unit.
// The next turn lasts as long as the placed kind costs.
func (g *Game) turn() behavior.Behavior {
	team := g.world.ActiveTeam()

	return behavior.Run(behavior.Steps(
		behavior.Yield(func() behavior.Behavior {
			return behavior.First(g.turnTimer(), g.controller(team).Place(g, team))
		}),
		func(resume any) behavior.Behavior {
			next := g.cfg.Round.TurnTime
			if place, _ := resume.(bool); place {
				if cost, ok := g.place(team); ok {
					next = cost
				}
			}
			g.world.Turn++
			g.world.TurnTime = next
			g.world.Selected = nil
			return nil
		},
	))
}

func (g *Game) turnTimer() behavior.Behavior {
	return behavior.OnTick(func(dt float64) (any, bool) {
		g.world.TurnTime -= dt
		if g.world.TurnTime <= 0 {
			return false, true
		}
		return nil, false
	})
}

// place spawns the team's selection and starts its cooldown.
func (g *Game) place(team Team) (float64, bool) {
	w := g.world
	sel := w.Selected
	if sel == nil || sel.Team != team || w.OnCooldown(team, sel.Kind) {
		return 0, false
	}
	stats, ok := g.cfg.Units.Stats(sel.Kind)
	if !ok {
		return 0, false
	}

	pos := w.ClampToStart(team, sel.Pos)
	g.spawn(sel.Kind, team, pos)
	w.startCooldown(team, sel.Kind)
	w.Placed++

	g.log.Debug("unit placed", "team", team.Name(), "kind", sel.Kind, "x", math.Round(pos.X), "y", math.Round(pos.Y))
	return stats.Cost, true
}

func (g *Game) finishRound() storage.RoundResult {
	w := g.world
	res := storage.RoundResult{
		MatchID:     g.matchID,
		Round:       w.Round,
		Winner:      int(w.Winner),
		Points1:     w.Score(Team1),
		Points2:     w.Score(Team2),
		UnitsPlaced: w.Placed,
		Duration:    int(math.Round(w.Elapsed)),
	}
	w.Round++

	g.log.Info("round finished",
		"round", res.Round+1,
		"winner", w.Winner.Name(),
		"score", fmt.Sprintf("%d:%d", res.Points1, res.Points2),
		"units", res.UnitsPlaced,
		"secs", res.Duration,
	)
	if g.opts.OnRound != nil {
		g.opts.OnRound(res)
	}
	return res
}

// record saves the result in the background. A failed save halts the game.
func (g *Game) record(res storage.RoundResult) behavior.Behavior {
	rec := g.opts.Recorder
	if rec == nil {
		return nil
	}
	return behavior.Async(func() error {
		if _, err := rec.SaveRound(res); err != nil {
			return fmt.Errorf("record round %d: %w", res.Round+1, err)
		}
		return nil
	})
}

func (g *Game) waitForContinue() behavior.Behavior {
	wait := []behavior.Behavior{
		behavior.MatchKind(behavior.KindPointerDown),
		behavior.MatchKind(behavior.KindKeyDown),
	}
	if g.opts.ContinueAfter > 0 {
		wait = append(wait, behavior.Wait(g.opts.ContinueAfter))
	}
	return behavior.First(wait...)
}
