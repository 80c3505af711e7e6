package t2048

// StateName is the snapshot label for the session state.
type StateName string

const (
	StateBeforeStart StateName = "before_start"
	StatePlaying     StateName = "playing"
	StatePaused      StateName = "paused"
	StateGameOver    StateName = "game_over"
	StatePausedSmall StateName = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64    `yaml:"tick"`
	State   StateName `yaml:"state"`
	Score   int       `yaml:"score"`
	Moves   int       `yaml:"moves"`
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	Board   [][]int   `yaml:"board,flow"`
	MaxTile int       `yaml:"max_tile"` // Highest tile on board
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tick,
		State: g.stateName(),
		Score: g.score,
		Moves: g.moves,
	}
	if g.grid != nil {
		snap.Rows = g.grid.Rows()
		snap.Cols = g.grid.Cols()
		snap.Board = g.grid.Values()
		snap.MaxTile = g.grid.MaxTile()
	}
	return snap
}

func (g *Game) stateName() StateName {
	switch {
	case g.tooSmall:
		return StatePausedSmall
	case g.phase == PhaseBeforeStart:
		return StateBeforeStart
	case g.phase == PhaseGameOver:
		return StateGameOver
	case g.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}
