// Package skirmish implements the turn-based unit battle on top of the
// behavior engine. Two teams take turns placing units; units walk toward
// the enemy base, pick targets and fight. A round ends when a unit reaches
// the enemy base line.
//
// All game logic runs inside behaviors fed by a single driver, so the world
// is only ever touched from one goroutine.
package skirmish

import (
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// Team identifies a side. Team 1 starts at the bottom and attacks upwards.
type Team int

const (
	NoTeam Team = 0
	Team1  Team = 1
	Team2  Team = 2
)

// Dir is the vertical direction the team marches in.
func (t Team) Dir() float64 {
	if t == Team1 {
		return -1
	}
	return 1
}

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == Team1 {
		return Team2
	}
	return Team1
}

// Name returns the display name.
func (t Team) Name() string {
	switch t {
	case Team1:
		return "Blue"
	case Team2:
		return "Red"
	default:
		return "Nobody"
	}
}

// Color returns the team's screen color.
func (t Team) Color() core.Color {
	switch t {
	case Team1:
		return core.ColorBrightBlue
	case Team2:
		return core.ColorBrightRed
	default:
		return core.ColorGray
	}
}

func (t Team) index() int {
	return int(t) - 1
}

// Unit is a live unit on the field.
type Unit struct {
	Kind      string
	Team      Team
	Pos       vec.Vec
	Dir       vec.Vec // Facing
	Health    float64
	MaxHealth float64
	Radius    float64
	Stats     config.UnitStats

	Target   *Unit
	Progress float64 // Attack animation phase in [0, 1]
}

// Alive reports whether the unit still has health.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// Flying reports whether ground-only attackers ignore the unit.
func (u *Unit) Flying() bool {
	return u.Stats.Flying
}

// unitDist is the edge-to-edge distance between two units.
func unitDist(a, b *Unit) float64 {
	return vec.Dist(a.Pos, b.Pos) - a.Radius - b.Radius
}

// Projectile is a shot in flight. It damages the first enemy it touches.
type Projectile struct {
	Pos    vec.Vec
	Dir    vec.Vec
	Radius float64
	Speed  float64
	Power  float64
	Team   Team
	Dead   bool
}

// Selection is the unit a team is about to place.
type Selection struct {
	Kind string
	Team Team
	Pos  vec.Vec
}

// World is the complete mutable game state.
type World struct {
	cfg config.SkirmishConfig

	Round    int
	Turn     int     // Global turn counter; Turn%2 selects the active team
	TurnTime float64 // Seconds left in the current turn
	Points   [2]int
	Winner   Team // Set once a unit reaches the enemy base

	Units       []*Unit
	Projectiles []*Projectile
	Selected    *Selection
	Cursor      vec.Vec // Pointer position in world coordinates
	Hover       int     // Index of the hovered selection slot, -1 if none

	cooldowns [2]map[string]float64

	Elapsed float64 // Game time since the round started
	Placed  int     // Units placed this round
}

// NewWorld creates an empty world for cfg.
func NewWorld(cfg config.SkirmishConfig) *World {
	w := &World{cfg: cfg, Hover: -1}
	w.Reset()
	return w
}

// Reset prepares the world for the next round. Points and the round
// counter survive.
func (w *World) Reset() {
	w.Turn = w.Round % 2
	w.TurnTime = w.cfg.Round.TurnTime
	w.Winner = NoTeam

	for _, u := range w.Units {
		u.Health = 0
	}
	w.Units = nil
	w.Projectiles = nil
	w.Selected = nil

	w.cooldowns = [2]map[string]float64{{}, {}}
	w.Elapsed = 0
	w.Placed = 0
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.SkirmishConfig {
	return w.cfg
}

// ActiveTeam returns the team whose turn it is.
func (w *World) ActiveTeam() Team {
	return Team(w.Turn%2 + 1)
}

// Score returns the points of team.
func (w *World) Score(team Team) int {
	return w.Points[team.index()]
}

// Cooldown returns the seconds left before team may place kind again.
func (w *World) Cooldown(team Team, kind string) float64 {
	return w.cooldowns[team.index()][kind]
}

// OnCooldown reports whether team must wait before placing kind.
func (w *World) OnCooldown(team Team, kind string) bool {
	return w.Cooldown(team, kind) > 0
}

func (w *World) startCooldown(team Team, kind string) {
	w.cooldowns[team.index()][kind] = w.cfg.Round.Cooldown
}

// BaseLine returns the y coordinate units of team must cross to score.
func (w *World) BaseLine(team Team) float64 {
	half := 0.5 * w.cfg.Field.Height
	if team == Team1 {
		return -half + w.cfg.Field.TargetHeight
	}
	return half - w.cfg.Field.TargetHeight
}

// StartArea returns the y range team may place units into.
func (w *World) StartArea(team Team) (minY, maxY float64) {
	f := w.cfg.Field
	depth := f.StartFraction * (f.Height - 2*f.TargetHeight)
	// Team 1 places next to team 2's base line and the other way round
	edge := w.BaseLine(team.Other())
	if team == Team1 {
		return edge - depth, edge
	}
	return edge, edge + depth
}

// ClampToStart moves p into team's start area.
func (w *World) ClampToStart(team Team, p vec.Vec) vec.Vec {
	minY, maxY := w.StartArea(team)
	halfW := 0.5 * w.cfg.Field.Width
	return vec.New(core.ClampF(p.X, -halfW, halfW), core.ClampF(p.Y, minY, maxY))
}

// InField reports whether p lies on the field.
func (w *World) InField(p vec.Vec) bool {
	halfW, halfH := 0.5*w.cfg.Field.Width, 0.5*w.cfg.Field.Height
	return p.X >= -halfW && p.X <= halfW && p.Y >= -halfH && p.Y <= halfH
}

// crossed reports whether a live unit of team reached the enemy base.
func (w *World) crossed(team Team) bool {
	line := w.BaseLine(team)
	for _, u := range w.Units {
		if u.Team != team || !u.Alive() {
			continue
		}
		if team == Team1 && u.Pos.Y-u.Radius < line {
			return true
		}
		if team == Team2 && u.Pos.Y+u.Radius > line {
			return true
		}
	}
	return false
}

// step advances projectiles and cooldowns by dt seconds.
func (w *World) step(dt float64) {
	w.Elapsed += dt

	for _, p := range w.Projectiles {
		if p.Dead {
			continue
		}
		p.Pos = p.Pos.Add(p.Dir.Scale(dt * p.Speed))
		if !w.InField(p.Pos) {
			p.Dead = true
			continue
		}
		for _, u := range w.Units {
			if u.Team == p.Team || !u.Alive() {
				continue
			}
			if vec.Dist(p.Pos, u.Pos)-p.Radius-u.Radius <= 0 {
				u.Health -= p.Power
				p.Dead = true
				break
			}
		}
	}

	for _, cooldowns := range w.cooldowns {
		for kind, left := range cooldowns {
			left -= dt
			if left <= 0 {
				delete(cooldowns, kind)
				continue
			}
			cooldowns[kind] = left
		}
	}
}

// sweep drops dead units and spent projectiles.
func (w *World) sweep() {
	units := w.Units[:0]
	for _, u := range w.Units {
		if u.Alive() {
			units = append(units, u)
		}
	}
	clear(w.Units[len(units):])
	w.Units = units

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.Dead {
			projectiles = append(projectiles, p)
		}
	}
	clear(w.Projectiles[len(projectiles):])
	w.Projectiles = projectiles
}
