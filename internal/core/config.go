package core

// RuntimeConfig contains configuration passed to a session at creation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display refreshes per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
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

// GameState is the status the platform shows in the HUD.
type GameState struct {
	Score    int  // Obstacles dodged
	Lives    int  // Lives left
	GameOver bool // Whether the session has ended
}
