package core

// RuntimeConfig contains configuration passed to the puzzle at initialization.
// The puzzle uses it to adapt to screen size and to seed its random draws.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible puzzles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the puzzle status reported to the platform after each tick.
type GameState struct {
	Tally    int  // Sum of the totals of confirmed selections
	Finished bool // All selections made and the last spin settled
	Halted   bool // The wheel hit an internal error and stopped
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
