package skirmish

import (
	"hash/fnv"
	"math"
	"strconv"
)

// Snapshot is a comparable summary of the game state.
type Snapshot struct {
	Round       int
	Turn        int
	Points      [2]int
	Winner      int
	Units       []UnitState
	Projectiles int
}

// UnitState is the visible state of one unit.
type UnitState struct {
	Kind   string
	Team   int
	X, Y   float64
	Health float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	units := make([]UnitState, 0, len(w.Units))
	for _, u := range w.Units {
		units = append(units, UnitState{
			Kind:   u.Kind,
			Team:   int(u.Team),
			X:      u.Pos.X,
			Y:      u.Pos.Y,
			Health: u.Health,
		})
	}

	projectiles := 0
	for _, p := range w.Projectiles {
		if !p.Dead {
			projectiles++
		}
	}

	return Snapshot{
		Round:       w.Round,
		Turn:        w.Turn,
		Points:      w.Points,
		Winner:      int(w.Winner),
		Units:       units,
		Projectiles: projectiles,
	}
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(v uint64) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	write(uint64(snap.Round))
	write(uint64(snap.Turn))
	write(uint64(snap.Winner))
	write(uint64(snap.Points[0]))
	write(uint64(snap.Points[1]))
	write(uint64(snap.Projectiles))
	for _, u := range snap.Units {
		h.Write([]byte(u.Kind + ":" + strconv.Itoa(u.Team)))
		write(math.Float64bits(u.X))
		write(math.Float64bits(u.Y))
		write(math.Float64bits(u.Health))
	}
	return h.Sum64()
}
