package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second delivered by the platform (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Generation int    // Games started since Reset; grows by one on every game over
	Ticks      uint64 // Gravity steps applied in the current game
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and the events that occurred during the frame.
type StepResult struct {
	State       GameState
	Locked      bool // A piece was written into the board
	RowsCleared int  // Complete rows removed by that lock
	GameOver    bool // The game ended and a fresh one was started
}
