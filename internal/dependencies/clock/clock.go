package clock

import "time"

// Clock provides the current time and can be mocked in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC. Transaction timestamps and sync
// instants are always recorded in UTC so documents compare across clients.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
