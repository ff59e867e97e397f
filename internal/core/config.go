package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the status a game reports to the platform after each tick.
// The game owns its whole session (modes, score, lives, persistence);
// the platform only needs enough to drive the program around it.
type GameState struct {
	Score     int  // Current session score
	HighScore int  // Best persisted score known to the game
	Level     int  // Current difficulty level (starts at 1)
	Lives     int  // Remaining lives
	GameOver  bool // Whether the session has ended
	Quit      bool // Whether the player asked to leave the program
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
