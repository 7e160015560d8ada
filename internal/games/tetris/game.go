// Package tetris implements the falling-block puzzle.
//
// The engine (Board, Engine, Clock) is a deterministic state machine over a
// State value. Game adapts it to the platform: it owns the live State, maps
// input actions to engine operations, and converts platform frames into the
// monotonic timestamp that drives gravity.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Package-level configuration applied to games created through the registry.
var gameConfig = config.DefaultTetrisConfig()

// SetConfig sets the configuration used by games created after the call.
func SetConfig(cfg config.TetrisConfig) {
	gameConfig = cfg
}

// RulesFromConfig converts file configuration into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Width:       cfg.Board.Width,
		Height:      cfg.Board.Height,
		Spawn:       Point{X: cfg.Spawn.X, Y: cfg.Spawn.Y},
		GameOverRow: cfg.Rules.GameOverRow,
	}
}

// Game is the controller around the engine.
type Game struct {
	cfg    config.TetrisConfig
	engine *Engine
	state  *State
	clock  *Clock

	frameDuration time.Duration
	frames        uint64 // Platform frames since Reset
	ticks         uint64 // Gravity steps in the current game
	generation    int    // Games started since Reset
}

// New creates a game using the package configuration.
func New() *Game {
	return NewWithConfig(gameConfig)
}

// NewWithConfig creates a game using cfg.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameDuration = time.Second / time.Duration(tickRate)
	g.frames = 0
	g.ticks = 0
	g.generation = 1

	g.engine = NewEngine(RulesFromConfig(g.cfg), NewRandomSource(cfg.Seed))
	g.state = g.engine.InitialState()
	g.clock = NewClock(g.cfg.Rules.GravityInterval())
}

// Apply runs the engine operation bound to a on the live state.
// Actions without one, like quit, are ignored.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionRotate:
		g.state = g.engine.Rotate(g.state)
	case core.ActionLeft:
		g.state = g.engine.Move(g.state, -1)
	case core.ActionRight:
		g.state = g.engine.Move(g.state, 1)
	case core.ActionDrop:
		g.state = g.engine.HardDrop(g.state)
	}
}

// Step advances one platform frame and runs gravity if it is due.
func (g *Game) Step() core.StepResult {
	var result core.StepResult

	g.frames++
	if g.clock.Due(g.Now()) {
		var tick TickResult
		g.state, tick = g.engine.Tick(g.state)
		g.ticks++

		switch tick.Event {
		case EventLocked:
			result.Locked = true
			result.RowsCleared = tick.Cleared
		case EventGameOver:
			result.GameOver = true
			g.generation++
			g.ticks = 0
		}
	}

	result.State = g.State()
	return result
}

// Now returns the monotonic game time derived from the frame count.
func (g *Game) Now() time.Duration {
	return time.Duration(g.frames) * g.frameDuration
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Generation: g.generation,
		Ticks:      g.ticks,
	}
}

// Current returns the live engine state. It is only valid until the next Step.
func (g *Game) Current() *State {
	return g.state
}
