package skirmish

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// Visual characters for rendering
const (
	ProjectileChar = '·'
	StartAreaChar  = '.'
	BaseLineChar   = '═'
	HealthChar     = '━'
	CooldownChar   = 'x'
)

const healthBarWidth = 3

// Draw renders the game onto s, resizing the layout to the screen first.
func (g *Game) Draw(s *core.Screen) {
	if s.Width() != g.layout.width || s.Height() != g.layout.height {
		g.Resize(s.Width(), s.Height())
	}
	l := g.layout
	w := g.world

	s.Clear()
	if l.TooSmall() {
		s.TextCentered(s.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH), core.ColorYellow)
		return
	}

	f := l.Field()
	s.Box(core.NewRect(f.X-1, f.Y-1, f.W+2, f.H+2), core.ColorGray)

	if w.Winner == NoTeam {
		g.drawStartArea(s, w.ActiveTeam())
	}
	for _, team := range []Team{Team1, Team2} {
		_, y := l.ToScreen(vec.New(0, w.BaseLine(team)))
		s.HLine(f.X, y, f.W, BaseLineChar, team.Color())
	}

	for _, u := range w.Units {
		g.drawUnit(s, u)
	}
	for _, p := range w.Projectiles {
		if p.Dead {
			continue
		}
		x, y := l.ToScreen(p.Pos)
		s.Set(x, y, ProjectileChar, p.Team.Color())
	}

	if w.Winner == NoTeam {
		g.drawSelection(s)
	}
	g.drawHUD(s, Team1)
	g.drawHUD(s, Team2)

	if w.Winner != NoTeam {
		mid := f.Y + f.H/2
		s.TextCentered(mid, fmt.Sprintf(" %s wins! ", w.Winner.Name()), w.Winner.Color())
		if g.matchGoesOn() {
			s.TextCentered(mid+1, " click or press a key for the next round ", core.ColorGray)
		}
	}
}

func (g *Game) drawStartArea(s *core.Screen, team Team) {
	minY, maxY := g.world.StartArea(team)
	_, top := g.layout.ToScreen(vec.New(0, minY))
	_, bottom := g.layout.ToScreen(vec.New(0, maxY))
	f := g.layout.Field()
	for y := top; y <= bottom; y++ {
		for x := f.X; x < f.Right(); x += 2 {
			s.Set(x, y, StartAreaChar, core.ColorGray)
		}
	}
}

func (g *Game) drawUnit(s *core.Screen, u *Unit) {
	x, y := g.layout.ToScreen(u.Pos)
	color := u.Team.Color()
	if u.Progress > 0.5 {
		color = core.ColorYellow
	}
	s.Set(x, y, Glyph(u.Kind), color)

	if u.Health >= u.MaxHealth || y-1 < g.layout.Field().Y {
		return
	}
	filled := int(math.Ceil(healthBarWidth * u.Health / u.MaxHealth))
	for i := 0; i < healthBarWidth; i++ {
		c := core.ColorGray
		if i < filled {
			c = core.ColorGreen
		}
		s.Set(x-healthBarWidth/2+i, y-1, HealthChar, c)
	}
}

func (g *Game) drawSelection(s *core.Screen) {
	sel := g.world.Selected
	if sel == nil {
		return
	}
	x, y := g.layout.ToScreen(sel.Pos)
	label := DisplayName(sel.Kind)
	if cd := g.world.Cooldown(sel.Team, sel.Kind); cd > 0 {
		s.Set(x, y, CooldownChar, core.ColorRed)
		label = fmt.Sprintf("%s %ds", label, int(math.Ceil(cd)))
	} else {
		s.Set(x, y, Glyph(sel.Kind), core.ColorWhite)
	}
	s.Text(x+2, y, label, core.ColorGray)
}

func (g *Game) drawHUD(s *core.Screen, team Team) {
	w := g.world
	row := g.layout.HUDRow(team)
	active := w.Winner == NoTeam && w.ActiveTeam() == team

	s.Text(0, row, fmt.Sprintf("%-4s %2d won", team.Name(), w.Score(team)), team.Color())
	if active {
		s.Text(12, row, fmt.Sprintf("%3ds", int(math.Ceil(max(w.TurnTime, 0)))), core.ColorBrightWhite)
	}

	for i, kind := range Selectable {
		r := g.layout.SlotRect(team, i)
		text := fmt.Sprintf("%d %c", i+1, Glyph(kind))
		color := core.ColorDefault

		switch cd := w.Cooldown(team, kind); {
		case cd > 0:
			text += fmt.Sprintf(" %2d", int(math.Ceil(cd)))
			color = core.ColorGray
		case active && w.Selected != nil && w.Selected.Kind == kind:
			color = team.Color()
		case active && w.Hover == i:
			color = core.ColorBrightWhite
		}
		s.Text(r.X, r.Y, text, color)
	}
}
