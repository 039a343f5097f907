package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii-cube/parameter"
	"github.com/lixenwraith/ascii-cube/scene"
)

// action is what a key press asks the host to do beyond editing parameters
type action uint8

const (
	actionNone action = iota
	actionParams
	actionMode
	actionReset
	actionPause
	actionExport
	actionQuit
)

// handleKey maps a key press to the next parameters and the action to take
// Stepped values clamp to their control range; the caller validates before applying
func handleKey(ev *tcell.EventKey, p scene.Params) (scene.Params, action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return p, actionQuit
	case tcell.KeyRune:
	default:
		return p, actionNone
	}

	r := ev.Rune()
	switch {
	case r >= '1' && r <= '9':
		mode := scene.Mode(r - '1')
		if !mode.Valid() {
			return p, actionNone
		}
		p.Mode = mode
		return p, actionMode
	}

	switch r {
	case 'q':
		return p, actionQuit
	case ' ':
		return p, actionPause
	case 'r':
		return p, actionReset
	case 'e':
		return p, actionExport
	case 's':
		if p.Sampler == scene.SamplerDensity {
			p.Sampler = scene.SamplerSweep
		} else {
			p.Sampler = scene.SamplerDensity
		}
	case '+', '=':
		p.Speed = step(p.Speed, parameter.SpeedStep, parameter.SpeedMin, parameter.SpeedMax)
	case '-', '_':
		p.Speed = step(p.Speed, -parameter.SpeedStep, parameter.SpeedMin, parameter.SpeedMax)
	case ']':
		p.Size = step(p.Size, parameter.SizeStep, parameter.SizeMin, parameter.SizeMax)
	case '[':
		p.Size = step(p.Size, -parameter.SizeStep, parameter.SizeMin, parameter.SizeMax)
	case '.':
		p.Distance = step(p.Distance, parameter.DistanceStep, parameter.DistanceMin, parameter.DistanceMax)
	case ',':
		p.Distance = step(p.Distance, -parameter.DistanceStep, parameter.DistanceMin, parameter.DistanceMax)
	case 'd':
		// Smaller step samples more points
		p.Density = step(p.Density, -parameter.DensityStep, parameter.DensityMin, parameter.DensityMax)
	case 'D':
		p.Density = step(p.Density, parameter.DensityStep, parameter.DensityMin, parameter.DensityMax)
	default:
		return p, actionNone
	}
	return p, actionParams
}

// step adds delta, rounds away accumulated float error at 1e-6 and clamps to [lo, hi]
func step(v, delta, lo, hi float64) float64 {
	v = math.Round((v+delta)*1e6) / 1e6
	return max(lo, min(hi, v))
}
