package core

// RuntimeConfig contains configuration passed to a frontend at startup.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters (terminal) or pixels (window)
	ScreenH  int    // Screen height in characters (terminal) or pixels (window)
	Seed     int64  // RNG seed; 0 means seed from the clock
	Player   string // Name recorded with finished sessions
	Frontend string // "tui", "window" or "ssh"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Seed:     0,
		Frontend: "tui",
	}
}
