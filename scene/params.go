// Package scene holds the per-frame scene parameters consumed by the render core
// and the validation that rejects bad values before they reach it.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/ascii-cube/parameter"
)

// Sentinel errors
var (
	ErrUnknownMode     = errors.New("unknown rotation mode")
	ErrUnknownSampler  = errors.New("unknown surface sampler")
	ErrInvalidDistance = errors.New("camera distance must be positive")
	ErrInvalidSpeed    = errors.New("rotation speed must be positive")
	ErrInvalidSize     = fmt.Errorf("cube size must be in (0, %v]", parameter.SizeLimit)
	ErrInvalidDensity  = fmt.Errorf("cube density must be in [%v, 1]", parameter.DensityFloor)
)

// Params is the immutable per-frame snapshot of scene settings
type Params struct {
	Distance float64 `toml:"distance"`
	Speed    float64 `toml:"speed"`
	Size     float64 `toml:"size"`
	Density  float64 `toml:"density"`
	Mode     Mode    `toml:"mode"`
	Sampler  Sampler `toml:"sampler"`
}

// Defaults returns the startup scene
func Defaults() Params {
	mode, _ := ParseMode(parameter.DefaultMode)
	sampler, _ := ParseSampler(parameter.DefaultSampler)
	return Params{
		Distance: parameter.DefaultDistance,
		Speed:    parameter.DefaultSpeed,
		Size:     parameter.DefaultSize,
		Density:  parameter.DefaultDensity,
		Mode:     mode,
		Sampler:  sampler,
	}
}

// Validate returns the first configuration error found, wrapping a sentinel
func (p Params) Validate() error {
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(p.Mode))
	}
	if !p.Sampler.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSampler, uint8(p.Sampler))
	}
	if !positive(p.Distance) {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, p.Distance)
	}
	if !positive(p.Speed) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, p.Speed)
	}
	if !positive(p.Size) || p.Size > parameter.SizeLimit {
		return fmt.Errorf("%w: %v", ErrInvalidSize, p.Size)
	}
	if !(p.Density >= parameter.DensityFloor && p.Density <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, p.Density)
	}
	return nil
}

// positive rejects zero, negatives, NaN and infinities
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
