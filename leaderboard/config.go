package leaderboard

import "time"

// Config holds client link settings
type Config struct {
	// URL of the websocket endpoint, e.g. ws://localhost:8765/scores
	URL string

	// CachePath stores the last received list for offline display ("" = no cache)
	CachePath string

	// Timing
	ConnectTimeout time.Duration
	WriteTimeout   time.Duration
	RetryInterval  time.Duration

	SendQueueSize int
}

// DefaultConfig returns client defaults; URL is left empty (offline)
func DefaultConfig() *Config {
	return &Config{
		ConnectTimeout: 5 * time.Second,
		WriteTimeout:   5 * time.Second,
		RetryInterval:  3 * time.Second,
		SendQueueSize:  16,
	}
}
