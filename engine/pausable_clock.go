package engine

import (
	"sync"
	"time"
)

// PausableClock is a TimeProvider that freezes while paused
// Rules phased on wall-clock time resume from where they stopped instead of jumping
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	paused          bool
	pauseStartTime  time.Time     // source time when the current pause began
	totalPausedTime time.Duration // cumulative completed pause duration
}

// NewPausableClock wraps source; nil uses the monotonic system clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = SystemClock{}
	}
	return &PausableClock{source: source}
}

// Now returns source time minus all paused time, frozen during a pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// Pause stops time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an active pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
