package engine

import (
	"context"
	"errors"
	"time"
)

// ErrStopLoop may be returned by a TickFunc to end the loop cleanly
var ErrStopLoop = errors.New("stop loop")

// TickFunc runs one whole frame: advance, rasterize, display
// frame counts from 0
type TickFunc func(frame uint64) error

// Loop calls a TickFunc on a fixed period until cancelled
// Cancellation is observed only between ticks; a started tick always completes
type Loop struct {
	interval time.Duration
	tick     TickFunc

	// Limit stops the loop after this many ticks; zero runs until cancelled
	Limit uint64

	// Paced false runs ticks back to back (headless rendering)
	Paced bool
}

// NewLoop creates a paced loop
func NewLoop(interval time.Duration, tick TickFunc) *Loop {
	return &Loop{
		interval: interval,
		tick:     tick,
		Paced:    true,
	}
}

// Run blocks until ctx is cancelled, Limit is reached or a tick fails
// Returns nil on cancellation, limit or ErrStopLoop; otherwise the tick error
func (l *Loop) Run(ctx context.Context) error {
	var ticker *time.Ticker
	if l.Paced {
		ticker = time.NewTicker(l.interval)
		defer ticker.Stop()
	}

	for frame := uint64(0); l.Limit == 0 || frame < l.Limit; frame++ {
		// Tick boundary: the only point where cancellation is observed
		if ctx.Err() != nil {
			return nil
		}

		if err := l.tick(frame); err != nil {
			if errors.Is(err, ErrStopLoop) {
				return nil
			}
			return err
		}

		if ticker == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
