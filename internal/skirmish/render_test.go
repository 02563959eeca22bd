package skirmish

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

func TestLayoutRoundTrip(t *testing.T) {
	l := NewLayout(80, 23, config.DefaultSkirmishConfig().Field)

	f := l.Field()
	if f != core.NewRect(1, 2, 78, 19) {
		t.Fatalf("Field() = %+v", f)
	}

	for _, p := range []vec.Vec{vec.New(0, 0), vec.New(-240, -340), vec.New(200, 300)} {
		x, y := l.ToScreen(p)
		back, ok := l.ToWorld(vec.New(float64(x), float64(y)))
		if !ok {
			t.Fatalf("ToWorld(%d, %d) outside the field", x, y)
		}
		cell := l.CellSize()
		if d := back.Sub(p); d.X*d.X > cell.X*cell.X || d.Y*d.Y > cell.Y*cell.Y {
			t.Errorf("%v -> (%d, %d) -> %v, more than a cell apart", p, x, y, back)
		}
	}

	if _, ok := l.ToWorld(vec.New(0, 0)); ok {
		t.Error("the HUD row must not map into the world")
	}
}

func TestLayoutSlots(t *testing.T) {
	l := NewLayout(80, 23, config.DefaultSkirmishConfig().Field)

	tests := []struct {
		cell vec.Vec
		team Team
		slot int
		ok   bool
	}{
		{vec.New(slotStart, 22), Team1, 0, true},
		{vec.New(slotStart+2*slotWidth+3, 22), Team1, 2, true},
		{vec.New(slotStart+5*slotWidth, 0), Team2, 5, true},
		{vec.New(slotStart+slotWidth-1, 0), NoTeam, -1, false},
		{vec.New(slotStart, 10), NoTeam, -1, false},
	}
	for _, tc := range tests {
		team, slot, ok := l.SlotAt(tc.cell)
		if team != tc.team || slot != tc.slot || ok != tc.ok {
			t.Errorf("SlotAt(%v) = %v, %d, %v; expected %v, %d, %v", tc.cell, team, slot, ok, tc.team, tc.slot, tc.ok)
		}
	}
}

func TestDrawShowsUnitsAndHUD(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{Team1: idle{}, Team2: idle{}})
	_ = g.Driver()
	tank := g.spawn(KindTank, Team1, vec.New(0, 200))[0]
	cannon := g.spawn(KindCannon, Team2, vec.New(100, -200))[0]

	s := core.NewScreen(80, 23)
	g.Draw(s)

	x, y := g.Layout().ToScreen(tank.Pos)
	if c := s.Cell(x, y); c.Rune != 'T' || c.Color != Team1.Color() {
		t.Errorf("tank cell = %+v", c)
	}
	x, y = g.Layout().ToScreen(cannon.Pos)
	if c := s.Cell(x, y); c.Rune != 'C' || c.Color != Team2.Color() {
		t.Errorf("cannon cell = %+v", c)
	}
	if row := s.Row(22); !strings.HasPrefix(row, "Blue  0 won") || !strings.Contains(row, "5s") {
		t.Errorf("blue HUD = %q", row)
	}
	if row := s.Row(0); !strings.HasPrefix(row, "Red   0 won") || strings.Contains(row, "5s") {
		t.Errorf("red HUD = %q", row)
	}
}

func TestDrawHealthBar(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{Team1: idle{}, Team2: idle{}})
	_ = g.Driver()
	u := g.spawn(KindCannon, Team2, vec.New(0, -100))[0]
	u.Health = u.MaxHealth / 3

	s := core.NewScreen(80, 23)
	g.Draw(s)

	x, y := g.Layout().ToScreen(u.Pos)
	if got := s.Cell(x-1, y-1); got.Rune != HealthChar || got.Color != core.ColorGreen {
		t.Errorf("left bar cell = %+v", got)
	}
	if got := s.Cell(x+1, y-1); got.Rune != HealthChar || got.Color != core.ColorGray {
		t.Errorf("right bar cell = %+v", got)
	}
}

func TestDrawWinnerBanner(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{Team1: idle{}, Team2: idle{}})
	g.World().Winner = Team2

	s := core.NewScreen(80, 23)
	g.Draw(s)

	if !strings.Contains(s.String(), "Red wins!") {
		t.Error("winner banner missing")
	}
}

func TestDrawTooSmall(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{})
	s := core.NewScreen(40, 10)
	g.Draw(s)

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("expected the too-small message")
	}
}
