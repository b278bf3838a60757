package mocks

import (
	"time"

	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time
	tickCh      chan time.Time
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{
		CurrentTime: t,
		tickCh:      make(chan time.Time, 64),
	}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Tick returns the mock tick channel; the interval is ignored
func (c *MockClock) Tick(time.Duration) <-chan time.Time {
	return c.tickCh
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}

// DeliverTick pushes one tick through the tick channel
func (c *MockClock) DeliverTick() {
	c.CurrentTime = c.CurrentTime.Add(time.Second)
	c.tickCh <- c.CurrentTime
}
