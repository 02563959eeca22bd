package skirmish

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// Unit kinds.
const (
	KindTank         = config.KindTank
	KindCannon       = config.KindCannon
	KindShooterGroup = config.KindShooterGroup
	KindShooter      = config.KindShooter
	KindAirplane     = config.KindAirplane
	KindSpinner      = config.KindSpinner
	KindImpaler      = config.KindImpaler
)

// Selectable lists the placeable kinds in slot order; slot i is bound to
// key i+1.
var Selectable = []string{
	KindTank,
	KindCannon,
	KindShooterGroup,
	KindAirplane,
	KindSpinner,
	KindImpaler,
}

// Glyph returns the character a kind is drawn with.
func Glyph(kind string) rune {
	switch kind {
	case KindTank:
		return 'T'
	case KindCannon:
		return 'C'
	case KindShooter, KindShooterGroup:
		return 's'
	case KindAirplane:
		return 'A'
	case KindSpinner:
		return 'S'
	case KindImpaler:
		return 'I'
	default:
		return '?'
	}
}

// DisplayName returns a human-readable kind name.
func DisplayName(kind string) string {
	switch kind {
	case KindShooterGroup:
		return "Shooter Group"
	case "":
		return ""
	default:
		return strings.ToUpper(kind[:1]) + kind[1:]
	}
}

// Shooter offsets inside a group, for a team marching down (dir = 1).
var groupFormation = []vec.Vec{
	vec.New(-8, -17),
	vec.New(8, -17),
	vec.New(-15, 0),
	vec.New(15, 0),
	vec.New(0, 12),
}

// spawn creates the units for one placement and registers their behaviors
// with the pool.
func (g *Game) spawn(kind string, team Team, pos vec.Vec) []*Unit {
	if kind == KindShooterGroup {
		units := make([]*Unit, 0, len(groupFormation))
		for _, off := range groupFormation {
			member := pos.Add(vec.New(off.X, off.Y*team.Dir()))
			units = append(units, g.spawn(KindShooter, team, member)...)
		}
		return units
	}

	stats, ok := g.cfg.Units.Stats(kind)
	if !ok {
		return nil
	}
	u := &Unit{
		Kind:      kind,
		Team:      team,
		Pos:       pos,
		Dir:       vec.New(0, team.Dir()),
		Health:    stats.MaxHealth,
		MaxHealth: stats.MaxHealth,
		Radius:    stats.Radius,
		Stats:     stats,
	}
	g.world.Units = append(g.world.Units, u)
	g.pool.Add(g.unitBehavior(u))
	return []*Unit{u}
}

func (g *Game) unitBehavior(u *Unit) behavior.Behavior {
	switch u.Kind {
	case KindTank:
		return g.tank(u)
	case KindCannon:
		return g.cannon(u)
	case KindShooter, KindAirplane:
		return g.gunner(u)
	case KindSpinner:
		return g.spinner(u)
	case KindImpaler:
		return g.impaler(u)
	default:
		return lifecycle(u, false, behavior.Never)
	}
}

// tank ignores everything but cannons and rams them.
func (g *Game) tank(u *Unit) behavior.Behavior {
	hit := func() behavior.Behavior {
		return behavior.Run(behavior.Steps(
			behavior.Yield(func() behavior.Behavior {
				return behavior.Interval(u.Stats.Windup, func(p float64) { u.Progress = p })
			}),
			behavior.Do(func() {
				u.Progress = 0
				u.Target.Health -= u.Stats.Power
				if !u.Target.Alive() {
					u.Target = nil
				}
			}),
		))
	}

	return lifecycle(u, false, func() behavior.Behavior {
		return behavior.Run(behavior.Steps(
			behavior.Yield(func() behavior.Behavior { return g.acquire(u, cannonsOnly) }),
			func(any) behavior.Behavior {
				return moveToTarget(u, u.Target, u.Radius+u.Target.Radius)
			},
			behavior.Yield(func() behavior.Behavior {
				return repeatWhile(func() bool { return hasLiveTarget(u) }, hit)
			}),
			behavior.Do(func() { u.Target = nil }),
		))
	})
}

// cannon stands still and shoots ground units in range.
func (g *Game) cannon(u *Unit) behavior.Behavior {
	return lifecycle(u, true, func() behavior.Behavior {
		return behavior.Run(behavior.Steps(
			behavior.Yield(func() behavior.Behavior {
				return behavior.Then(g.waitForTargetSighting(u, groundOnly), func(v any) {
					u.Target, _ = v.(*Unit)
				})
			}),
			behavior.Yield(func() behavior.Behavior {
				return repeatWhile(func() bool { return inShotRange(u) }, func() behavior.Behavior { return g.shoot(u) })
			}),
			behavior.Do(func() { u.Target = nil }),
		))
	})
}

// gunner drives shooters and airplanes: close in to shot range, then fire
// until the target dies or escapes.
func (g *Game) gunner(u *Unit) behavior.Behavior {
	return lifecycle(u, true, func() behavior.Behavior {
		return behavior.Run(behavior.Steps(
			func(any) behavior.Behavior {
				if !hasLiveTarget(u) {
					return g.acquire(u, anyUnit)
				}
				return moveToTarget(u, u.Target, u.Stats.Range)
			},
			behavior.Yield(func() behavior.Behavior {
				return repeatWhile(func() bool { return inShotRange(u) }, func() behavior.Behavior { return g.shoot(u) })
			}),
		))
	})
}

// spinner damages every enemy around it.
func (g *Game) spinner(u *Unit) behavior.Behavior {
	hit := func() behavior.Behavior {
		return behavior.Run(behavior.Steps(
			behavior.Yield(func() behavior.Behavior {
				return behavior.Interval(u.Stats.Windup, func(p float64) { u.Progress = p })
			}),
			func(any) behavior.Behavior {
				u.Progress = 0
				for _, other := range g.world.Units {
					if other.Team != u.Team && other.Alive() && unitDist(u, other) < u.Stats.Range {
						other.Health -= u.Stats.Power
					}
				}
				if !hasLiveTarget(u) {
					return nil
				}
				return behavior.Wait(u.Stats.Recover)
			},
			behavior.Do(func() { u.Target = nil }),
		))
	}

	return g.melee(u, anyUnit, hit)
}

// impaler lands one heavy blow on ground units.
func (g *Game) impaler(u *Unit) behavior.Behavior {
	hit := func() behavior.Behavior {
		return behavior.Run(behavior.Steps(
			behavior.Yield(func() behavior.Behavior {
				return behavior.Interval(u.Stats.Windup, func(p float64) {
					u.Progress = math.Sin(0.5 * math.Pi * p)
				})
			}),
			behavior.Do(func() {
				if u.Target != nil {
					u.Target.Health -= u.Stats.Power
				}
			}),
			behavior.Yield(func() behavior.Behavior {
				return behavior.Interval(u.Stats.Recover, func(p float64) { u.Progress = 1 - p })
			}),
			behavior.Do(func() { u.Target = nil }),
		))
	}

	return g.melee(u, groundOnly, hit)
}

// melee is the shared loop of close combat units.
func (g *Game) melee(u *Unit, filter func(*Unit) bool, hit behavior.Factory) behavior.Behavior {
	return lifecycle(u, true, func() behavior.Behavior {
		return behavior.Run(behavior.Steps(
			func(any) behavior.Behavior {
				if hasLiveTarget(u) {
					return nil
				}
				return g.acquire(u, filter)
			},
			func(any) behavior.Behavior {
				if u.Target == nil {
					return nil
				}
				return moveToTarget(u, u.Target, u.Radius+u.Target.Radius)
			},
			behavior.Yield(func() behavior.Behavior {
				return repeatWhile(func() bool { return inHitRange(u) }, hit)
			}),
		))
	})
}
