package engine

import (
	"testing"
	"time"
)

func TestSystemClockAdvances(t *testing.T) {
	var clock SystemClock
	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	if d := clock.Now().Sub(t1); d < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms elapsed, got %v", d)
	}
}

func TestManualClock(t *testing.T) {
	tests := []struct {
		name  string
		steps []time.Duration
		want  time.Duration
	}{
		{"No steps", nil, 0},
		{"One frame", []time.Duration{33 * time.Millisecond}, 33 * time.Millisecond},
		{"Mixed", []time.Duration{time.Hour, 30 * time.Minute, 15 * time.Minute}, 105 * time.Minute},
		{"Backwards", []time.Duration{time.Second, -3 * time.Second}, -2 * time.Second},
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewManualClock(start)
			last := clock.Now()
			for _, d := range tt.steps {
				last = clock.Advance(d)
			}
			want := start.Add(tt.want)
			if !last.Equal(want) || !clock.Now().Equal(want) {
				t.Errorf("Expected %v, got Advance %v, Now %v", want, last, clock.Now())
			}
		})
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewManualClock(start)
	pc := NewPausableClock(src)

	src.Advance(2 * time.Second)
	if got := pc.Now(); !got.Equal(start.Add(2 * time.Second)) {
		t.Fatalf("Running clock should track source, got %v", got)
	}

	pc.Pause()
	frozen := pc.Now()
	src.Advance(5 * time.Second)
	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("Paused clock moved: %v -> %v", frozen, got)
	}
	if d := pc.TotalPauseDuration(); d != 5*time.Second {
		t.Errorf("Expected 5s active pause, got %v", d)
	}

	pc.Resume()
	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("Resume should continue from frozen time %v, got %v", frozen, got)
	}

	src.Advance(time.Second)
	if got := pc.Now(); !got.Equal(frozen.Add(time.Second)) {
		t.Errorf("Expected %v after resume, got %v", frozen.Add(time.Second), got)
	}
}

func TestPausableClockToggleIdempotent(t *testing.T) {
	src := NewManualClock(time.Unix(0, 0))
	pc := NewPausableClock(src)

	pc.Resume() // no-op while running
	if pc.IsPaused() {
		t.Fatal("Resume on running clock should not pause")
	}

	if !pc.Toggle() || !pc.IsPaused() {
		t.Fatal("Toggle should pause a running clock")
	}
	src.Advance(time.Second)
	pc.Pause() // no-op while paused, must not reset pause start
	src.Advance(time.Second)
	if pc.Toggle() || pc.IsPaused() {
		t.Fatal("Toggle should resume a paused clock")
	}
	if d := pc.TotalPauseDuration(); d != 2*time.Second {
		t.Errorf("Expected 2s total pause, got %v", d)
	}
}
