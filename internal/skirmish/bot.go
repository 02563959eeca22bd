package skirmish

import (
	"math/rand"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// botMargin keeps bot placements away from the side walls.
const botMargin = 30

// Bot places a random available kind somewhere in its start area after a
// random think time.
type Bot struct {
	rng *rand.Rand
}

// NewBot creates a bot with a deterministic RNG.
func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// Place implements Controller.
func (b *Bot) Place(g *Game, team Team) behavior.Behavior {
	bc := g.cfg.Bot
	think := bc.MinThink + b.rng.Float64()*(bc.MaxThink-bc.MinThink)

	return behavior.Run(behavior.Seq(
		func() behavior.Behavior { return behavior.Wait(think) },
		func() behavior.Behavior {
			// Keep trying; the turn timer ends the turn if everything is on cooldown
			return behavior.OnTick(func(float64) (any, bool) {
				sel, ok := b.choose(g, team)
				if !ok {
					return nil, false
				}
				g.world.Selected = sel
				return true, true
			})
		},
	))
}

func (b *Bot) choose(g *Game, team Team) (*Selection, bool) {
	var available []string
	for _, kind := range Selectable {
		if !g.world.OnCooldown(team, kind) {
			available = append(available, kind)
		}
	}
	if len(available) == 0 {
		return nil, false
	}

	kind := available[b.rng.Intn(len(available))]
	minY, maxY := g.world.StartArea(team)
	halfW := 0.5*g.cfg.Field.Width - botMargin
	pos := vec.New(
		vec.Lerp(-halfW, halfW, b.rng.Float64()),
		vec.Lerp(minY, maxY, b.rng.Float64()),
	)
	return &Selection{Kind: kind, Team: team, Pos: pos}, true
}
