package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a host passes to a game when a session starts:
// the drawable area and the seed for deterministic play.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 lets the host pick a time-based seed
}

// WithDefaults fills unset fields with an 80x24 screen and DefaultTickRate.
// The seed is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the status a game reports to its host after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool // paused by the player or by a too-small screen
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
