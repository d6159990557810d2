package core

// RuntimeConfig contains configuration passed from a host to the simulation.
// Hosts use this to size the viewport and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in pixels
	ScreenH  int   // Viewport height in pixels
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  48,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
