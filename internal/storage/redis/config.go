package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// BoardTTL bounds how long cached generated boards live. Daily
	// boards are only interesting for a couple of days.
	BoardTTL time.Duration

	// ResultTTL bounds per-day results; zero means keep forever.
	ResultTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		BoardTTL:     48 * time.Hour,
		ResultTTL:    0,
	}
}
