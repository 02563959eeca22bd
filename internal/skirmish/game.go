package skirmish

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

// Recorder persists finished rounds. *storage.Store implements it.
// SaveRound is called from a background goroutine.
type Recorder interface {
	SaveRound(r storage.RoundResult) (int64, error)
}

// Options configures a Game.
type Options struct {
	Team1 Controller // Nil means a human at the keyboard
	Team2 Controller

	Recorder Recorder
	MatchID  string // Generated when empty

	// MaxRounds stops the match after that many rounds; 0 plays forever.
	MaxRounds int

	// ContinueAfter starts the next round on its own after that many
	// seconds. 0 waits for a click or key press.
	ContinueAfter float64

	Logger  *log.Logger
	OnRound func(storage.RoundResult)
}

// Game wires the world, the behavior pool and the controllers together.
type Game struct {
	cfg     config.SkirmishConfig
	opts    Options
	world   *World
	pool    *behavior.Pool
	layout  Layout
	log     *log.Logger
	matchID string
}

// New creates a game. Nothing runs until Root is driven.
func New(cfg config.SkirmishConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Team1 == nil {
		opts.Team1 = Human{}
	}
	if opts.Team2 == nil {
		opts.Team2 = Human{}
	}

	matchID := opts.MatchID
	if matchID == "" {
		matchID = storage.NewMatchID()
	}

	def := core.DefaultConfig()
	return &Game{
		cfg:     cfg,
		opts:    opts,
		world:   NewWorld(cfg),
		pool:    behavior.NewPool(),
		layout:  NewLayout(def.ScreenW, def.ScreenH-1, cfg.Field),
		log:     logger,
		matchID: matchID,
	}
}

// World exposes the game state for rendering and inspection.
func (g *Game) World() *World {
	return g.world
}

// MatchID identifies the rounds of this game in storage.
func (g *Game) MatchID() string {
	return g.matchID
}

// Units returns the number of running unit behaviors.
func (g *Game) Units() int {
	return g.pool.Len()
}

// Resize recomputes the layout for a screen of w x h cells. Pointer events
// are interpreted in the same cell coordinates.
func (g *Game) Resize(w, h int) {
	g.layout = NewLayout(w, h, g.cfg.Field)
}

// Layout returns the current screen layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Root builds the behavior that runs the whole game. The pool of unit
// behaviors goes first so units act before the world is stepped. Call it
// once per game.
func (g *Game) Root() behavior.Behavior {
	return behavior.First(
		g.pool.Behavior(),
		g.trackPointer(),
		g.trackKeys(),
		behavior.OnTick(func(dt float64) (any, bool) {
			g.world.step(dt)
			return nil, false
		}),
		g.rounds(),
		behavior.OnTick(func(float64) (any, bool) {
			g.world.sweep()
			return nil, false
		}),
	)
}

// Driver returns a driver owning a fresh Root.
func (g *Game) Driver(opts ...behavior.DriverOption) *behavior.Driver {
	return behavior.NewDriver(g.Root(), opts...)
}

func (g *Game) controller(team Team) Controller {
	if team == Team1 {
		return g.opts.Team1
	}
	return g.opts.Team2
}

func (g *Game) isHuman(team Team) bool {
	_, ok := g.controller(team).(Human)
	return ok
}
