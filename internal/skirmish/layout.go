package skirmish

import (
	"math"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// Screen layout constants
const (
	MinScreenW = 66
	MinScreenH = 12

	slotStart = 18 // First column of the selection slots
	slotWidth = 8
)

// Layout maps between screen cells and world coordinates. Row 0 is team 2's
// HUD, the last row is team 1's HUD and the field box fills the rest.
type Layout struct {
	width, height int
	field         core.Rect // Field interior, inside the border
	worldW        float64
	worldH        float64
}

// NewLayout computes the layout for a screen of w x h cells.
func NewLayout(w, h int, fc config.FieldConfig) Layout {
	return Layout{
		width:  w,
		height: h,
		field:  core.NewRect(1, 2, max(w-2, 1), max(h-4, 1)),
		worldW: fc.Width,
		worldH: fc.Height,
	}
}

// TooSmall reports whether the screen cannot show the game.
func (l Layout) TooSmall() bool {
	return l.width < MinScreenW || l.height < MinScreenH
}

// Field returns the cells the field is drawn into.
func (l Layout) Field() core.Rect {
	return l.field
}

// ToScreen projects a world position onto a cell.
func (l Layout) ToScreen(p vec.Vec) (int, int) {
	fx := (p.X + 0.5*l.worldW) / l.worldW
	fy := (p.Y + 0.5*l.worldH) / l.worldH
	x := l.field.X + int(math.Floor(fx*float64(l.field.W)))
	y := l.field.Y + int(math.Floor(fy*float64(l.field.H)))
	return core.Clamp(x, l.field.X, l.field.Right()-1), core.Clamp(y, l.field.Y, l.field.Bottom()-1)
}

// ToWorld maps the center of a cell to world coordinates. ok is false for
// cells outside the field.
func (l Layout) ToWorld(cell vec.Vec) (p vec.Vec, ok bool) {
	x, y := int(math.Floor(cell.X)), int(math.Floor(cell.Y))
	if !l.field.Contains(x, y) {
		return vec.Vec{}, false
	}
	wx := (float64(x-l.field.X)+0.5)/float64(l.field.W)*l.worldW - 0.5*l.worldW
	wy := (float64(y-l.field.Y)+0.5)/float64(l.field.H)*l.worldH - 0.5*l.worldH
	return vec.New(wx, wy), true
}

// CellSize returns the world size of one cell.
func (l Layout) CellSize() vec.Vec {
	return vec.New(l.worldW/float64(l.field.W), l.worldH/float64(l.field.H))
}

// HUDRow returns the screen row of team's status line.
func (l Layout) HUDRow(team Team) int {
	if team == Team2 {
		return 0
	}
	return l.height - 1
}

// SlotRect returns the cells of team's i-th selection slot.
func (l Layout) SlotRect(team Team, i int) core.Rect {
	return core.NewRect(slotStart+i*slotWidth, l.HUDRow(team), slotWidth-1, 1)
}

// SlotAt returns the selection slot under a cell.
func (l Layout) SlotAt(cell vec.Vec) (Team, int, bool) {
	x, y := int(math.Floor(cell.X)), int(math.Floor(cell.Y))
	for _, team := range []Team{Team1, Team2} {
		for i := range Selectable {
			if l.SlotRect(team, i).Contains(x, y) {
				return team, i, true
			}
		}
	}
	return NoTeam, -1, false
}
