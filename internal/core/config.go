package core

// RuntimeConfig contains configuration passed to a front-end at start-up.
type RuntimeConfig struct {
	ScreenW      int   // Screen width in characters
	ScreenH      int   // Screen height in characters
	TickRate     int   // Frames per second (default 60)
	Seed         int64 // RNG seed, 0 = use current time in platform layer
	ShowHitboxes bool  // Start with the collision box overlay enabled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
