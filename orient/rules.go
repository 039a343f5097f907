package orient

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ascii-cube/scene"
)

// Rule computes the next orientation from the current one
type Rule func(s State, speed float64, env Env) State

// Rule coefficients
const (
	normalRateAB = 0.01
	normalRateC  = 0.02

	wobbleTimeScale = 0.002
	wobbleAmplitude = 0.3
	wobbleFreqA     = 4.0
	wobbleFreqB     = 2.8
	wobbleFreqC     = 2.0

	spiralTimeScale = 0.0001
	spiralRateAB    = 0.05
	spiralRateC     = 0.001

	chaosSpread = 0.2 // full width of the uniform per-axis jitter

	diagonalRate = 0.01
)

// Rules maps each mode to its update rule
var Rules = map[scene.Mode]Rule{
	scene.ModeNormal:   Normal,
	scene.ModeWobble:   Wobble,
	scene.ModeSpiral:   Spiral,
	scene.ModeChaos:    Chaos,
	scene.ModeDiagonal: Diagonal,
}

// RuleFor returns the rule for mode or a wrapped scene.ErrUnknownMode
func RuleFor(mode scene.Mode) (Rule, error) {
	rule, ok := Rules[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %v", scene.ErrUnknownMode, mode)
	}
	return rule, nil
}

// Normal accumulates each axis at a fixed rate, C twice as fast
func Normal(s State, speed float64, _ Env) State {
	s.A += normalRateAB * speed
	s.B += normalRateAB * speed
	s.C += normalRateC * speed
	return s
}

// Wobble overwrites all angles with bounded oscillations of wall-clock time
// The previous state is ignored
func Wobble(_ State, speed float64, env Env) State {
	t := env.Millis() * wobbleTimeScale * speed
	return State{
		A: math.Sin(t*wobbleFreqA) * wobbleAmplitude,
		B: math.Cos(t*wobbleFreqB) * wobbleAmplitude,
		C: math.Sin(t*wobbleFreqC) * wobbleAmplitude,
	}
}

// Spiral steers the A/B increment direction slowly with wall-clock time
// C creeps forward monotonically
func Spiral(s State, speed float64, env Env) State {
	t := env.Millis() * spiralTimeScale
	step := spiralRateAB * speed
	s.A += step * math.Sin(t)
	s.B += step * math.Cos(t)
	s.C += spiralRateC * speed
	return s
}

// Chaos adds independent uniform jitter in [-0.1·speed, 0.1·speed) to each axis
func Chaos(s State, speed float64, env Env) State {
	s.A += (env.float() - 0.5) * chaosSpread * speed
	s.B += (env.float() - 0.5) * chaosSpread * speed
	s.C += (env.float() - 0.5) * chaosSpread * speed
	return s
}

// Diagonal advances only A; the rasterizer turns A into a rotation about the cube diagonal
func Diagonal(s State, speed float64, _ Env) State {
	s.A += diagonalRate * speed
	return s
}
