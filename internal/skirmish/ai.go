package skirmish

import (
	"math"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// Shared building blocks for unit behaviors.

func anyUnit(*Unit) bool { return true }

func groundOnly(u *Unit) bool { return !u.Flying() }

func cannonsOnly(u *Unit) bool { return u.Kind == KindCannon }

// moveToGlobalTarget marches u toward the enemy base. It never completes.
func moveToGlobalTarget(u *Unit) behavior.Behavior {
	return behavior.OnTick(func(dt float64) (any, bool) {
		dir := u.Team.Dir()
		u.Dir = vec.New(0, dir)
		u.Pos.Y += dir * u.Stats.Speed * dt
		return nil, false
	})
}

// waitForTargetSighting completes with the closest live enemy that matches
// filter and is within u's sight radius.
func (g *Game) waitForTargetSighting(u *Unit, filter func(*Unit) bool) behavior.Behavior {
	return behavior.OnTick(func(float64) (any, bool) {
		var closest *Unit
		best := math.Inf(1)
		for _, other := range g.world.Units {
			if other.Team == u.Team || !other.Alive() || !filter(other) {
				continue
			}
			dist := vec.Dist(u.Pos, other.Pos)
			if dist-other.Radius < u.Stats.SightRadius && dist < best {
				closest, best = other, dist
			}
		}
		if closest == nil {
			return nil, false
		}
		return closest, true
	})
}

// moveToTarget walks u toward target until it is closer than stopAt or the
// target dies.
func moveToTarget(u, target *Unit, stopAt float64) behavior.Behavior {
	return behavior.OnTick(func(dt float64) (any, bool) {
		if !target.Alive() {
			return nil, true
		}
		if vec.Dist(u.Pos, target.Pos) < stopAt {
			return nil, true
		}
		u.Dir = vec.Dir(u.Pos, target.Pos)
		u.Pos = u.Pos.Add(u.Dir.Scale(dt * u.Stats.Speed))
		return nil, false
	})
}

// acquire hunts for a target while marching on.
func (g *Game) acquire(u *Unit, filter func(*Unit) bool) behavior.Behavior {
	return behavior.Then(
		behavior.First(g.waitForTargetSighting(u, filter), moveToGlobalTarget(u)),
		func(v any) { u.Target, _ = v.(*Unit) },
	)
}

// lifecycle finishes once u dies and keeps it facing its target meanwhile.
// main is restarted forever.
func lifecycle(u *Unit, faceTarget bool, main behavior.Factory) behavior.Behavior {
	return behavior.First(
		behavior.OnTick(func(float64) (any, bool) {
			if !u.Alive() {
				return nil, true
			}
			if faceTarget && u.Target != nil {
				u.Dir = vec.Dir(u.Pos, u.Target.Pos)
			}
			return nil, false
		}),
		behavior.Repeat(main),
	)
}

func hasLiveTarget(u *Unit) bool {
	return u.Target != nil && u.Target.Alive()
}

// inShotRange measures from u's center to the target's edge.
func inShotRange(u *Unit) bool {
	return hasLiveTarget(u) && vec.Dist(u.Pos, u.Target.Pos)-u.Target.Radius < u.Stats.Range
}

// inHitRange measures edge to edge.
func inHitRange(u *Unit) bool {
	return hasLiveTarget(u) && unitDist(u, u.Target) < u.Stats.Range
}

// repeatWhile runs fresh attacks for as long as cond holds.
func repeatWhile(cond func() bool, attack behavior.Factory) behavior.Behavior {
	return behavior.Run(behavior.While(cond, attack))
}

// shoot winds up, fires one projectile at u's target and recovers.
func (g *Game) shoot(u *Unit) behavior.Behavior {
	s := u.Stats
	return behavior.Run(behavior.Steps(
		behavior.Yield(func() behavior.Behavior {
			return behavior.Interval(s.Windup, func(p float64) { u.Progress = p })
		}),
		behavior.Do(func() {
			if u.Target != nil {
				g.fire(u, u.Target)
			}
		}),
		behavior.Yield(func() behavior.Behavior {
			return behavior.Interval(s.Recover, func(p float64) { u.Progress = 1 - p })
		}),
		behavior.Do(func() {
			if !hasLiveTarget(u) {
				u.Target = nil
			}
		}),
	))
}

func (g *Game) fire(u, target *Unit) {
	pc := g.cfg.Projectile
	g.world.Projectiles = append(g.world.Projectiles, &Projectile{
		Pos:    u.Pos,
		Dir:    vec.Dir(u.Pos, target.Pos),
		Radius: pc.Radius,
		Speed:  pc.Speed,
		Power:  u.Stats.Power,
		Team:   u.Team,
	})
}
