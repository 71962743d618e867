package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Unix is the ledger timestamp: whole seconds, like a block timestamp.
func Unix(c Clock) uint64 {
	sec := c.Now().Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// Skip advances by whole seconds.
func (c *MockClock) Skip(seconds uint64) {
	c.currentTime = c.currentTime.Add(time.Duration(seconds) * time.Second)
}
