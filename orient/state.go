// Package orient advances the cube's three-angle orientation once per tick.
//
// Each rotation mode is a pure Rule mapping (state, speed, env) to the next state.
// Rules never capture the state; Advance threads it through explicitly.
package orient

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/ascii-cube/scene"
)

// State is the persistent orientation in radians, unbounded
type State struct {
	A, B, C float64
}

// Reset returns the orientation to the rest pose
func (s *State) Reset() {
	*s = State{}
}

func (s State) String() string {
	return fmt.Sprintf("A=%.3f B=%.3f C=%.3f", s.A, s.B, s.C)
}

// Env carries the per-tick inputs a rule may depend on besides speed
type Env struct {
	// Now is the wall-clock time of the tick, used by time-phased rules
	Now time.Time
	// Rand is the random source for the chaos rule; nil falls back to the global source
	Rand *rand.Rand
}

// Millis returns the tick time as whole Unix milliseconds
func (e Env) Millis() float64 {
	return float64(e.Now.UnixMilli())
}

// float64 in [0, 1) from the configured source
func (e Env) float() float64 {
	if e.Rand == nil {
		return rand.Float64()
	}
	return e.Rand.Float64()
}

// Advance applies the rule selected by mode to state in place
// An unknown mode is a configuration error and leaves state untouched
func Advance(state *State, mode scene.Mode, speed float64, env Env) error {
	rule, err := RuleFor(mode)
	if err != nil {
		return err
	}
	*state = rule(*state, speed, env)
	return nil
}
