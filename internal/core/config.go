package core

import "time"

// MaxTickRate is the highest simulation rate adapters accept.
const MaxTickRate = 1000

// ValidTickRate reports whether tps lies in [1, MaxTickRate].
func ValidTickRate(tps int) bool {
	return tps > 0 && tps <= MaxTickRate
}

// RuntimeConfig contains configuration passed to adapters at startup.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters (terminal) or pixels (window)
	ScreenH    int           // Screen height in characters or pixels
	TickRate   int           // Simulation ticks per second (default 60)
	FrameRate  int           // Render frames per second (default 30)
	HoldWindow time.Duration // How long a key press counts as held when the host has no key-up events
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		FrameRate:  30,
		HoldWindow: 120 * time.Millisecond,
	}
}

// PlayerID identifies one of the two players.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}
