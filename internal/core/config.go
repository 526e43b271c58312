package core

// RuntimeConfig contains the host settings a game session starts with.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Frames per second the host scheduler targets
	Seed      int64 // RNG seed for deterministic piece sequences
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
