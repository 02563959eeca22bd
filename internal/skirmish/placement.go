package skirmish

import (
	"strconv"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// Controller decides what a team places during its turn.
type Controller interface {
	// Place returns a behavior that completes with true once the team's
	// selection should be placed. It is built at the start of every turn.
	Place(g *Game, team Team) behavior.Behavior
}

// Keys understood by the game.
const (
	KeyConfirm = "enter"
	KeySpace   = " "
	KeyLeft    = "left"
	KeyRight   = "right"
	KeyUp      = "up"
	KeyDown    = "down"
)

// Human places units from pointer and keyboard input.
type Human struct{}

// Place implements Controller. Pressing on a slot or a number key selects a
// kind; releasing the pointer over the field or pressing enter places it.
func (Human) Place(g *Game, team Team) behavior.Behavior {
	g.selectKind(team, Selectable[0])

	return behavior.First(
		behavior.Repeat(func() behavior.Behavior {
			return behavior.Then(behavior.MatchKind(behavior.KindPointerDown), func(v any) {
				ev := v.(behavior.PointerDown)
				if slotTeam, i, ok := g.layout.SlotAt(ev.Pos); ok && slotTeam == team {
					g.selectKind(team, Selectable[i])
				}
			})
		}),
		behavior.Repeat(func() behavior.Behavior {
			return behavior.Then(behavior.MatchKind(behavior.KindKeyDown), func(v any) {
				if i, err := strconv.Atoi(v.(behavior.KeyDown).Key); err == nil && i >= 1 && i <= len(Selectable) {
					g.selectKind(team, Selectable[i-1])
				}
			})
		}),
		func(ev behavior.Event) behavior.Result {
			if g.confirms(team, ev) {
				return behavior.Done(true)
			}
			return behavior.Pending()
		},
	)
}

func (g *Game) confirms(team Team, ev behavior.Event) bool {
	switch e := ev.(type) {
	case behavior.PointerUp:
		if _, ok := g.layout.ToWorld(e.Pos); !ok {
			return false
		}
	case behavior.KeyDown:
		if e.Key != KeyConfirm && e.Key != KeySpace {
			return false
		}
	default:
		return false
	}

	sel := g.world.Selected
	return sel != nil && sel.Team == team && !g.world.OnCooldown(team, sel.Kind)
}

func (g *Game) selectKind(team Team, kind string) {
	g.world.Selected = &Selection{
		Kind: kind,
		Team: team,
		Pos:  g.world.ClampToStart(team, g.world.Cursor),
	}
}

// pointTo moves the cursor to a screen cell.
func (g *Game) pointTo(cell vec.Vec) {
	w := g.world
	w.Hover = -1
	if team, i, ok := g.layout.SlotAt(cell); ok && team == w.ActiveTeam() {
		w.Hover = i
	}
	if p, ok := g.layout.ToWorld(cell); ok {
		g.moveCursor(p)
	}
}

func (g *Game) moveCursor(p vec.Vec) {
	w := g.world
	half := vec.New(0.5*g.cfg.Field.Width, 0.5*g.cfg.Field.Height)
	w.Cursor = vec.New(
		min(max(p.X, -half.X), half.X),
		min(max(p.Y, -half.Y), half.Y),
	)
	if sel := w.Selected; sel != nil && g.isHuman(sel.Team) {
		sel.Pos = w.ClampToStart(sel.Team, w.Cursor)
	}
}

func (g *Game) trackPointer() behavior.Behavior {
	isPointer := func(ev behavior.Event) bool {
		_, ok := behavior.PointerPos(ev)
		return ok
	}
	return behavior.Repeat(func() behavior.Behavior {
		return behavior.Then(behavior.WaitFor(isPointer), func(v any) {
			pos, _ := behavior.PointerPos(v.(behavior.Event))
			g.pointTo(pos)
		})
	})
}

// trackKeys moves the cursor one cell per arrow key.
func (g *Game) trackKeys() behavior.Behavior {
	return behavior.Repeat(func() behavior.Behavior {
		return behavior.Then(behavior.MatchKind(behavior.KindKeyDown), func(v any) {
			step := g.layout.CellSize()
			var d vec.Vec
			switch v.(behavior.KeyDown).Key {
			case KeyLeft:
				d = vec.New(-step.X, 0)
			case KeyRight:
				d = vec.New(step.X, 0)
			case KeyUp:
				d = vec.New(0, -step.Y)
			case KeyDown:
				d = vec.New(0, step.Y)
			default:
				return
			}
			from := g.world.Cursor
			if sel := g.world.Selected; sel != nil && g.isHuman(sel.Team) {
				from = sel.Pos
			}
			g.moveCursor(from.Add(d))
		})
	})
}
