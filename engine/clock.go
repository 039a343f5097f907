// Package engine drives the render loop: time sources and the cancellable frame ticker.
package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider is the clock consumed by time-phased rotation rules
type TimeProvider interface {
	Now() time.Time
}

// SystemClock reads time.Now; readings keep their monotonic component
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when its owner calls Advance
// Headless runs step it one frame interval per tick, so time-phased rules replay identically
type ManualClock struct {
	nanos atomic.Int64 // Unix nanoseconds
}

func NewManualClock(start time.Time) *ManualClock {
	c := &ManualClock{}
	c.nanos.Store(start.UnixNano())
	return c
}

func (c *ManualClock) Now() time.Time {
	return time.Unix(0, c.nanos.Load())
}

// Advance moves the clock by d and returns the new reading
func (c *ManualClock) Advance(d time.Duration) time.Time {
	return time.Unix(0, c.nanos.Add(int64(d)))
}
