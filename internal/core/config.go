package core

// RuntimeConfig contains configuration the platform passes around when
// setting up a play session: the terminal size and the RNG seed. The
// game rules themselves are fixed constants and never appear here.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // Requested RNG seed; 0 means the mode derives one itself
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
