package core

// RuntimeConfig is handed to the game when a session starts.
type RuntimeConfig struct {
	ScreenW   int     // Terminal width in cells
	ScreenH   int     // Terminal height in cells
	TickRate  int     // Frames per second requested from the platform
	Seed      int64   // RNG seed for bots; 0 means time-based
	TimeScale float64 // Multiplier applied to every tick delta
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		TimeScale: 1,
	}
}
