package orient

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/ascii-cube/engine"
	"github.com/lixenwraith/ascii-cube/scene"
)

func TestAdvanceNormalFromRest(t *testing.T) {
	var s State
	if err := Advance(&s, scene.ModeNormal, 1.0, Env{}); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	want := State{A: 0.01, B: 0.01, C: 0.02}
	if s != want {
		t.Errorf("Expected %v, got %v", want, s)
	}
}

func TestAdvanceNormalScalesWithSpeed(t *testing.T) {
	var s State
	for i := 0; i < 10; i++ {
		if err := Advance(&s, scene.ModeNormal, 0.5, Env{}); err != nil {
			t.Fatal(err)
		}
	}
	if math.Abs(s.A-0.05) > 1e-12 || math.Abs(s.B-0.05) > 1e-12 || math.Abs(s.C-0.1) > 1e-12 {
		t.Errorf("Expected {0.05 0.05 0.1}, got %v", s)
	}
}

func TestAdvanceUnknownMode(t *testing.T) {
	s := State{A: 1, B: 2, C: 3}
	err := Advance(&s, scene.Mode(99), 1, Env{})
	if !errors.Is(err, scene.ErrUnknownMode) {
		t.Fatalf("Expected ErrUnknownMode, got %v", err)
	}
	if s != (State{A: 1, B: 2, C: 3}) {
		t.Errorf("State must be untouched on error, got %v", s)
	}
}

func TestRulesCoverEveryMode(t *testing.T) {
	for _, m := range scene.Modes() {
		if _, err := RuleFor(m); err != nil {
			t.Errorf("Mode %v has no rule: %v", m, err)
		}
	}
}

func TestWobbleOverwrites(t *testing.T) {
	clock := engine.NewManualClock(time.UnixMilli(1_700_000_000_000))
	speed := 1.3

	a := State{A: 100, B: -50, C: 7}
	if err := Advance(&a, scene.ModeWobble, speed, Env{Now: clock.Now()}); err != nil {
		t.Fatal(err)
	}

	// Same instant from a different prior state gives the same result
	b := State{}
	if err := Advance(&b, scene.ModeWobble, speed, Env{Now: clock.Now()}); err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Wobble depends on prior state: %v vs %v", a, b)
	}

	// A second call at a later time depends only on that time
	later := clock.Advance(250 * time.Millisecond)
	if err := Advance(&a, scene.ModeWobble, speed, Env{Now: later}); err != nil {
		t.Fatal(err)
	}
	fresh := Wobble(State{}, speed, Env{Now: later})
	if a != fresh {
		t.Errorf("Wobble accumulated: got %v, fresh %v", a, fresh)
	}

	tm := float64(later.UnixMilli()) * 0.002 * speed
	want := State{A: math.Sin(tm*4) * 0.3, B: math.Cos(tm*2.8) * 0.3, C: math.Sin(tm*2) * 0.3}
	if a != want {
		t.Errorf("Expected %v, got %v", want, a)
	}
}

func TestWobbleBounded(t *testing.T) {
	clock := engine.NewManualClock(time.UnixMilli(0))
	for i := 0; i < 500; i++ {
		s := Wobble(State{}, 2.5, Env{Now: clock.Advance(17 * time.Millisecond)})
		for _, v := range []float64{s.A, s.B, s.C} {
			if v < -0.3 || v > 0.3 {
				t.Fatalf("Wobble out of [-0.3, 0.3]: %v", s)
			}
		}
	}
}

func TestSpiral(t *testing.T) {
	now := time.UnixMilli(123_456_789)
	tm := float64(now.UnixMilli()) * 0.0001

	s := Spiral(State{A: 1, B: 2, C: 3}, 2, Env{Now: now})
	want := State{
		A: 1 + 0.1*math.Sin(tm),
		B: 2 + 0.1*math.Cos(tm),
		C: 3 + 0.002,
	}
	if math.Abs(s.A-want.A) > 1e-12 || math.Abs(s.B-want.B) > 1e-12 || math.Abs(s.C-want.C) > 1e-12 {
		t.Errorf("Expected %v, got %v", want, s)
	}

	// Phase is independent of speed: direction of the A/B step is the same
	slow := Spiral(State{}, 0.1, Env{Now: now})
	fast := Spiral(State{}, 5, Env{Now: now})
	if math.Signbit(slow.A) != math.Signbit(fast.A) || math.Signbit(slow.B) != math.Signbit(fast.B) {
		t.Errorf("Spiral direction changed with speed: %v vs %v", slow, fast)
	}
}

func TestChaosBoundedAndSeeded(t *testing.T) {
	speed := 3.0
	limit := 0.1 * speed

	r1 := rand.New(rand.NewPCG(1, 2))
	r2 := rand.New(rand.NewPCG(1, 2))

	var s1, s2 State
	for i := 0; i < 200; i++ {
		prev := s1
		if err := Advance(&s1, scene.ModeChaos, speed, Env{Rand: r1}); err != nil {
			t.Fatal(err)
		}
		if err := Advance(&s2, scene.ModeChaos, speed, Env{Rand: r2}); err != nil {
			t.Fatal(err)
		}
		for _, d := range []float64{s1.A - prev.A, s1.B - prev.B, s1.C - prev.C} {
			if d < -limit-1e-12 || d > limit+1e-12 {
				t.Fatalf("Chaos step %f outside ±%f", d, limit)
			}
		}
	}
	if s1 != s2 {
		t.Errorf("Same seed should give same walk: %v vs %v", s1, s2)
	}
}

func TestDiagonalOnlyAdvancesA(t *testing.T) {
	s := State{A: 0.5, B: 1.5, C: -2}
	if err := Advance(&s, scene.ModeDiagonal, 2, Env{}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.A-0.52) > 1e-12 || s.B != 1.5 || s.C != -2 {
		t.Errorf("Expected {0.52 1.5 -2}, got %v", s)
	}
}

func TestStateReset(t *testing.T) {
	s := State{A: 1, B: 2, C: 3}
	s.Reset()
	if s != (State{}) {
		t.Errorf("Reset left %v", s)
	}
}
