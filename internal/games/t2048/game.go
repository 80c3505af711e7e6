// Package t2048 runs a 2048 game session on top of the grid engine: it
// turns input into moves, keeps score, spawns tiles, decides when the game
// is over and draws the board.
package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// GameID is the registry identifier.
const GameID = "2048"

// initialTiles is the number of tiles spawned by a restart.
const initialTiles = 2

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseBeforeStart Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBeforeStart:
		return "before_start"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the 2048 puzzle game.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	rng    *rand.Rand
	grid   *engine.Grid
	tick   uint64

	phase Phase
	score int
	moves int // moves that changed the grid
	last  engine.Outcome

	gate  pointerGate
	board *boardView

	// Screen dimensions
	screenW int
	screenH int
	layout  layout

	paused   bool
	tooSmall bool
}

// Package-level defaults used by the registry factory.
var (
	defaultConfig = config.Default()
	defaultLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.Config) {
	defaultConfig = cfg
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// New creates a game using the package-level configuration.
func New() *Game {
	return NewWithConfig(defaultConfig, defaultLogger)
}

// NewWithConfig creates a game with an explicit configuration and logger.
func NewWithConfig(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
		phase:  PhaseBeforeStart,
		board:  newBoardView(cfg.Animation),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a session. The grid is allocated on the first call and
// reset in place afterwards.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		g.rng.Seed(cfg.Seed)
	}
	g.tick = 0
	g.paused = false

	if g.grid == nil {
		grid, err := engine.New(g.cfg.Grid.Rows, g.cfg.Grid.Cols,
			engine.WithRand(g.rng),
			engine.WithSpawn4Probability(g.cfg.Grid.Spawn4Probability),
			engine.WithLogger(g.logger),
		)
		if err != nil {
			// Config is validated on load; fall back to the classic board.
			g.logger.Error("invalid grid size, using 4x4", "rows", g.cfg.Grid.Rows, "cols", g.cfg.Grid.Cols, "error", err)
			grid, _ = engine.New(4, 4, engine.WithRand(g.rng), engine.WithLogger(g.logger))
		}
		g.grid = grid
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.Restart()
}

// Restart clears the board in place, zeroes the score and spawns the two
// opening tiles.
func (g *Game) Restart() {
	if g.grid == nil {
		return
	}

	g.board.finish()
	g.board.apply(g.grid.Reset()...)
	g.score = 0
	g.moves = 0
	g.last = engine.Outcome{}
	g.gate.reset()
	g.phase = PhaseRunning

	for range initialTiles {
		g.spawn()
	}
	g.board.start()

	g.logger.Info("game started", "rows", g.grid.Rows(), "cols", g.grid.Cols())
}

// spawn places one tile and forwards the event to the board view.
func (g *Game) spawn() {
	if ev, ok := g.grid.SpawnTile(); ok {
		g.board.apply(ev)
	}
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.grid != nil {
		g.layout = computeLayout(g.grid.Rows(), g.grid.Cols(), w)
		g.tooSmall = w < g.layout.minW || h < g.layout.minH
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.board.update()

	if g.grid == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && g.phase == PhaseRunning {
		g.paused = !g.paused
		g.gate.reset()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
	case PhaseRunning:
		g.handlePointer(in.Pointer)
		if dir, ok := directionForFrame(in); ok && g.phase == PhaseRunning {
			g.applyMove(dir)
		}
	}

	return core.StepResult{State: g.State()}
}

// handlePointer feeds pointer events through the gate. Each completed
// press/release pair resolves at most one move.
func (g *Game) handlePointer(events []core.PointerEvent) {
	for _, ev := range events {
		if g.phase != PhaseRunning {
			return
		}
		switch ev.Kind {
		case core.PointerDown:
			if g.layout.board.Contains(ev.X, ev.Y) {
				g.gate.press(ev.X, ev.Y)
			}
		case core.PointerUp:
			dx, dy, ok := g.gate.release(ev.X, ev.Y)
			if !ok {
				continue
			}
			if dir, ok := g.swipe(dx, dy); ok {
				g.applyMove(dir)
			}
		}
	}
}

// swipe converts a screen-cell drag into a direction, measured in board
// cells so the terminal's tall cells do not bias the axis choice.
func (g *Game) swipe(dx, dy int) (engine.Direction, bool) {
	fx := float64(dx) / float64(cellWidth)
	fy := float64(dy) / float64(cellHeight)
	return Swipe(fx, fy, g.cfg.Input.SwipeThreshold)
}

// Move resolves one move as if the player had pressed an arrow key. It
// returns the engine outcome; moves outside the running phase are ignored.
func (g *Game) Move(dir engine.Direction) engine.Outcome {
	if g.phase != PhaseRunning || g.paused {
		return engine.Outcome{Direction: dir}
	}
	return g.applyMove(dir)
}

// applyMove runs one turn: move, score, terminal check, spawn.
//
// The terminal check looks at the grid right after the move and before the
// spawn, so a board filled by the previous spawn ends the game on the next
// input unless that input merges.
func (g *Game) applyMove(dir engine.Direction) engine.Outcome {
	out := g.grid.Move(dir)
	g.last = out

	g.board.finish()
	g.board.apply(out.Events...)
	g.score += out.ScoreDelta()
	if out.Changed {
		g.moves++
	}

	g.logger.Debug("move",
		"dir", dir,
		"changed", out.Changed,
		"merges", out.Merges,
		"score", g.score,
	)

	if out.Full {
		g.phase = PhaseGameOver
		g.gate.reset()
		g.board.start()
		g.logger.Info("game over", "score", g.score, "moves", g.moves, "max_tile", g.grid.MaxTile())
		return out
	}

	if out.Changed {
		g.spawn()
	}
	g.board.start()
	return out
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of merges so far.
func (g *Game) Score() int {
	return g.score
}

// Grid exposes the engine grid for inspection.
func (g *Game) Grid() *engine.Grid {
	return g.grid
}

// LastOutcome returns the outcome of the most recent move.
func (g *Game) LastOutcome() engine.Outcome {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
