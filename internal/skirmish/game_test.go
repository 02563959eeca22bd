package skirmish

import (
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// idle never places anything.
type idle struct{}

func (idle) Place(*Game, Team) behavior.Behavior { return behavior.Never() }

func newIdleGame(t *testing.T, opts Options) (*Game, *behavior.Driver) {
	t.Helper()
	opts.Team1, opts.Team2 = idle{}, idle{}
	g := New(config.DefaultSkirmishConfig(), opts)
	return g, g.Driver()
}

func send(t *testing.T, d *behavior.Driver, events ...behavior.Event) {
	t.Helper()
	for _, ev := range events {
		if err := d.Send(ev); err != nil {
			t.Fatalf("Send(%v) error = %v", ev, err)
		}
	}
}

func tickFor(t *testing.T, d *behavior.Driver, seconds, step float64) {
	t.Helper()
	n := int(math.Round(seconds / step))
	for i := 0; i < n; i++ {
		if err := d.Tick(step); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}
}

func TestStartAreas(t *testing.T) {
	w := NewWorld(config.DefaultSkirmishConfig())

	tests := []struct {
		team     Team
		min, max float64
	}{
		{Team1, 165, 330},
		{Team2, -330, -165},
	}
	for _, tc := range tests {
		lo, hi := w.StartArea(tc.team)
		if math.Abs(lo-tc.min) > 1e-9 || math.Abs(hi-tc.max) > 1e-9 {
			t.Errorf("StartArea(%s) = [%g, %g], expected [%g, %g]", tc.team.Name(), lo, hi, tc.min, tc.max)
		}
	}

	p := w.ClampToStart(Team1, vec.New(999, -50))
	if p != vec.New(250, 165) {
		t.Errorf("ClampToStart() = %v, expected (250, 165)", p)
	}
}

func TestHumanPlacesWithKeys(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{})
	d := g.Driver()
	w := g.World()

	send(t, d, behavior.KeyDown{Key: "2"}, behavior.KeyDown{Key: KeyConfirm})

	if len(w.Units) != 1 || w.Units[0].Kind != KindCannon || w.Units[0].Team != Team1 {
		t.Fatalf("expected one blue cannon, got %+v", w.Units)
	}
	if w.Units[0].Pos != vec.New(0, 165) {
		t.Errorf("cannon at %v, expected the start area edge", w.Units[0].Pos)
	}
	if w.Turn != 1 || w.ActiveTeam() != Team2 {
		t.Errorf("turn = %d, expected red to move", w.Turn)
	}
	if w.TurnTime != 5 {
		t.Errorf("TurnTime = %g, expected the cannon cost", w.TurnTime)
	}
	if w.Cooldown(Team1, KindCannon) != 20 {
		t.Errorf("cooldown = %g, expected 20", w.Cooldown(Team1, KindCannon))
	}
	if g.Units() != 1 {
		t.Errorf("pool has %d behaviors, expected 1", g.Units())
	}
}

func TestCooldownBlocksPlacement(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{})
	d := g.Driver()
	w := g.World()

	// Blue cannon, red tank
	send(t, d, behavior.KeyDown{Key: "2"}, behavior.KeyDown{Key: KeyConfirm})
	send(t, d, behavior.KeyDown{Key: KeyConfirm})

	send(t, d, behavior.KeyDown{Key: "2"}, behavior.KeyDown{Key: KeyConfirm})
	if w.Turn != 2 {
		t.Fatalf("cannon on cooldown should not end the turn, turn = %d", w.Turn)
	}

	send(t, d, behavior.KeyDown{Key: "6"}, behavior.KeyDown{Key: " "})
	if w.Turn != 3 || len(w.Units) != 3 {
		t.Fatalf("impaler should be placed, turn = %d units = %d", w.Turn, len(w.Units))
	}
	if w.Units[2].Kind != KindImpaler {
		t.Errorf("last unit = %s, expected impaler", w.Units[2].Kind)
	}
}

func TestShooterGroupSpawnsFive(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{})
	d := g.Driver()

	send(t, d, behavior.KeyDown{Key: "3"}, behavior.KeyDown{Key: KeyConfirm})

	units := g.World().Units
	if len(units) != 5 {
		t.Fatalf("expected 5 shooters, got %d", len(units))
	}
	for _, u := range units {
		if u.Kind != KindShooter || u.MaxHealth != 50 {
			t.Errorf("group member = %+v", u)
		}
	}
}

func TestTurnTimerPassesTurn(t *testing.T) {
	g, d := newIdleGame(t, Options{})
	w := g.World()

	tickFor(t, d, 4.9, 0.1)
	if w.Turn != 0 {
		t.Fatalf("turn ended early after 4.9s")
	}
	tickFor(t, d, 0.2, 0.1)
	if w.Turn != 1 {
		t.Fatalf("turn = %d, expected the timer to pass the turn", w.Turn)
	}
	if w.TurnTime <= 4.8 || len(w.Units) != 0 {
		t.Errorf("TurnTime = %g units = %d", w.TurnTime, len(w.Units))
	}
}

func TestPointerPlacement(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{})
	g.Resize(80, 23)
	d := g.Driver()
	w := g.World()
	l := g.Layout()

	target := vec.New(50, 250)
	cx, cy := l.ToScreen(target)
	field := vec.New(float64(cx), float64(cy))
	slot := l.SlotRect(Team1, 3)
	slotCell := vec.New(float64(slot.X), float64(slot.Y))

	// Press and release on the airplane slot selects without placing
	send(t, d,
		behavior.PointerMove{Pos: field},
		behavior.PointerDown{Pos: slotCell},
		behavior.PointerUp{Pos: slotCell},
	)
	if w.Selected == nil || w.Selected.Kind != KindAirplane {
		t.Fatalf("selection = %+v, expected airplane", w.Selected)
	}
	if len(w.Units) != 0 {
		t.Fatal("releasing over the HUD must not place")
	}

	send(t, d, behavior.PointerDown{Pos: field}, behavior.PointerUp{Pos: field})
	if len(w.Units) != 1 || w.Units[0].Kind != KindAirplane {
		t.Fatalf("expected an airplane, got %+v", w.Units)
	}
	cell := l.CellSize()
	if got := w.Units[0].Pos; math.Abs(got.X-target.X) > cell.X || math.Abs(got.Y-target.Y) > cell.Y {
		t.Errorf("airplane at %v, expected near %v", got, target)
	}
}

func TestArrowKeysMoveSelection(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{})
	d := g.Driver()
	w := g.World()

	start := w.Selected.Pos
	send(t, d, behavior.KeyDown{Key: KeyRight}, behavior.KeyDown{Key: KeyDown})

	step := g.Layout().CellSize()
	if got := w.Selected.Pos; got.X != start.X+step.X || got.Y != start.Y+step.Y {
		t.Errorf("selection at %v, expected one cell right and down of %v", got, start)
	}
}

func TestWinConditionAwardsPoint(t *testing.T) {
	var rounds []storage.RoundResult
	g, d := newIdleGame(t, Options{
		MaxRounds: 1,
		OnRound:   func(r storage.RoundResult) { rounds = append(rounds, r) },
	})
	g.spawn(KindAirplane, Team1, vec.New(0, -310))

	tickFor(t, d, 0.5, 0.1)

	w := g.World()
	if w.Winner != Team1 || w.Score(Team1) != 1 || w.Score(Team2) != 0 {
		t.Fatalf("winner = %s points = %v", w.Winner.Name(), w.Points)
	}
	if len(rounds) != 1 || rounds[0].Winner != 1 || rounds[0].Round != 0 {
		t.Fatalf("OnRound got %+v", rounds)
	}
	if _, done := d.Done(); !done {
		t.Error("match of one round should be over")
	}
	if g.Units() != 0 {
		t.Errorf("pool should be cleared, has %d", g.Units())
	}
}

func TestNextRoundWaitsForInput(t *testing.T) {
	g, d := newIdleGame(t, Options{})
	g.spawn(KindAirplane, Team2, vec.New(0, 310))
	tickFor(t, d, 0.5, 0.1)

	w := g.World()
	if w.Winner != Team2 || w.Round != 1 {
		t.Fatalf("winner = %s round = %d", w.Winner.Name(), w.Round)
	}

	tickFor(t, d, 3, 0.1)
	if w.Winner != Team2 {
		t.Fatal("next round must not start without input")
	}

	send(t, d, behavior.KeyDown{Key: "x"})
	if w.Winner != NoTeam || w.ActiveTeam() != Team2 {
		t.Errorf("round 2 should start with red, winner = %s active = %s", w.Winner.Name(), w.ActiveTeam().Name())
	}
	if w.Score(Team2) != 1 {
		t.Error("points survive the round reset")
	}
}

func TestTankDestroysCannon(t *testing.T) {
	cfg := config.DefaultSkirmishConfig()
	cfg.Units.Tank.Power = 300
	g := New(cfg, Options{Team1: idle{}, Team2: idle{}})
	d := g.Driver()

	g.spawn(KindCannon, Team2, vec.New(0, -200))
	tank := g.spawn(KindTank, Team1, vec.New(0, -100))[0]

	tickFor(t, d, 15, 0.05)

	w := g.World()
	for _, u := range w.Units {
		if u.Kind == KindCannon {
			t.Fatalf("cannon should be destroyed, has %g health", u.Health)
		}
	}
	if !tank.Alive() || tank.Health >= tank.MaxHealth {
		t.Errorf("tank health = %g, expected damaged but alive", tank.Health)
	}
}

func TestProjectileHitsOnce(t *testing.T) {
	w := NewWorld(config.DefaultSkirmishConfig())
	target := &Unit{Team: Team2, Pos: vec.New(0, 0), Health: 100, MaxHealth: 100, Radius: 10}
	w.Units = append(w.Units, target)
	w.Projectiles = append(w.Projectiles,
		&Projectile{Pos: vec.New(0, 30), Dir: vec.New(0, -1), Radius: 3, Speed: 100, Power: 20, Team: Team1},
		&Projectile{Pos: vec.New(240, 0), Dir: vec.New(1, 0), Radius: 3, Speed: 100, Power: 20, Team: Team1},
	)

	for i := 0; i < 10; i++ {
		w.step(0.1)
	}
	w.sweep()

	if target.Health != 80 {
		t.Errorf("health = %g, expected one hit", target.Health)
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("expected both projectiles gone, %d left", len(w.Projectiles))
	}
}

func TestSweepDropsDeadUnits(t *testing.T) {
	w := NewWorld(config.DefaultSkirmishConfig())
	alive := &Unit{Health: 1}
	w.Units = []*Unit{{Health: 0}, alive, {Health: -5}}

	w.sweep()
	if len(w.Units) != 1 || w.Units[0] != alive {
		t.Errorf("sweep left %d units", len(w.Units))
	}
}

func TestBotsPlaceUnits(t *testing.T) {
	g := New(config.DefaultSkirmishConfig(), Options{Team1: NewBot(1), Team2: NewBot(2)})
	d := g.Driver()

	tickFor(t, d, 12, 0.1)

	w := g.World()
	if w.Placed < 2 {
		t.Fatalf("bots placed %d units in 12s", w.Placed)
	}
	if w.Turn < 2 {
		t.Errorf("turn = %d, expected bots to take turns", w.Turn)
	}
}

func TestBotDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New(config.DefaultSkirmishConfig(), Options{Team1: NewBot(42), Team2: NewBot(43), MatchID: "m"})
		d := g.Driver()
		tickFor(t, d, 30, 1.0/60)
		snap := g.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	opts := SimOptions{Rounds: 2, Seed: 7, Step: 1.0 / 30, MatchID: "sim"}
	cfg := config.DefaultSkirmishConfig()

	res1, err1 := Simulate(cfg, opts)
	res2, err2 := Simulate(cfg, opts)

	if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
		t.Fatalf("errors differ: %v vs %v", err1, err2)
	}
	if !reflect.DeepEqual(res1, res2) {
		t.Fatalf("results differ:\n%+v\n%+v", res1, res2)
	}
	if err1 == nil && len(res1) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(res1))
	}
	for _, r := range res1 {
		if r.Winner != 1 && r.Winner != 2 {
			t.Errorf("round %d winner = %d", r.Round, r.Winner)
		}
	}
}

func TestSimulateRejectsZeroRounds(t *testing.T) {
	if _, err := Simulate(config.DefaultSkirmishConfig(), SimOptions{}); err == nil {
		t.Error("expected an error for zero rounds")
	}
}

type memRecorder struct {
	mu     sync.Mutex
	rounds []storage.RoundResult
	err    error
}

func (m *memRecorder) SaveRound(r storage.RoundResult) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.rounds = append(m.rounds, r)
	return int64(len(m.rounds)), nil
}

func (m *memRecorder) saved() []storage.RoundResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]storage.RoundResult(nil), m.rounds...)
}

// tickUntil ticks until cond holds, giving background saves time to land.
func tickUntil(t *testing.T, d *behavior.Driver, cond func(error) bool) error {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		err := d.Tick(0.1)
		if cond(err) {
			return err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
	return nil
}

func TestRoundIsRecorded(t *testing.T) {
	rec := &memRecorder{}
	g, d := newIdleGame(t, Options{Recorder: rec, MatchID: "match-1", MaxRounds: 1})
	g.spawn(KindAirplane, Team1, vec.New(0, -310))

	tickUntil(t, d, func(err error) bool {
		_, done := d.Done()
		return err != nil || done
	})

	saved := rec.saved()
	if len(saved) != 1 {
		t.Fatalf("expected one saved round, got %d", len(saved))
	}
	if saved[0].MatchID != "match-1" || saved[0].Winner != 1 || saved[0].Points1 != 1 {
		t.Errorf("saved round = %+v", saved[0])
	}
}

func TestRecorderFailureHaltsGame(t *testing.T) {
	boom := errors.New("disk full")
	g, d := newIdleGame(t, Options{Recorder: &memRecorder{err: boom}})
	g.spawn(KindAirplane, Team1, vec.New(0, -310))

	err := tickUntil(t, d, func(err error) bool { return err != nil })

	if !errors.Is(err, behavior.ErrHalted) || !errors.Is(err, boom) {
		t.Errorf("error = %v, expected a halted driver wrapping the save error", err)
	}
}
