package core

// RuntimeConfig contains host settings passed to the engine at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // Seed the game was built with, reported in logs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means the CLI picks a time-based seed
	}
}

// GameState is the top-level mode of the game. Exactly one is active at a time.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ObstacleKind distinguishes the two halves of a pipe pair.
type ObstacleKind int

const (
	ObstacleTop ObstacleKind = iota
	ObstacleBottom
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	if k == ObstacleTop {
		return "Top"
	}
	return "Bottom"
}
