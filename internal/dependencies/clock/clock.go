package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time

	// Tick returns a channel that delivers ticks at the given interval.
	// The countdown timer consumes one-second ticks from it.
	Tick(interval time.Duration) <-chan time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Tick returns a ticker channel. The underlying ticker is never
// stopped; sessions are long-lived relative to the process.
func (c *RealClock) Tick(interval time.Duration) <-chan time.Time {
	return time.Tick(interval)
}
