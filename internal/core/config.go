package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic world generation
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

// GameState represents the current state of the game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Ready  bool // World generated and player placed
	Paused bool // Whether the simulation is paused
	Tick   uint64
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Player position changed this tick
}
