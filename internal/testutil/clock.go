package testutil

import (
	"sync"
	"time"
)

// Clock is a manual time source that advances by one second on every read,
// so consecutive writes get distinct, ordered timestamps.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}
