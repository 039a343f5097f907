package scene

import (
	"fmt"
	"strings"
)

// Mode selects the orientation update rule applied each tick
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeWobble
	ModeSpiral
	ModeChaos
	ModeDiagonal
	modeCount
)

var modeNames = [modeCount]string{
	ModeNormal:   "normal",
	ModeWobble:   "wobble",
	ModeSpiral:   "spiral",
	ModeChaos:    "chaos",
	ModeDiagonal: "diagonal",
}

// Modes returns all rotation modes in selection order
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m < modeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode resolves a mode name, case-insensitive
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so modes decode from config files
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Sampler selects the surface point enumeration strategy
type Sampler uint8

const (
	// SamplerDensity samples corners plus a per-face grid stepped by density
	SamplerDensity Sampler = iota
	// SamplerSweep sweeps each face over [-size, size) at a fixed increment
	SamplerSweep
	samplerCount
)

var samplerNames = [samplerCount]string{
	SamplerDensity: "density",
	SamplerSweep:   "sweep",
}

func (s Sampler) Valid() bool {
	return s < samplerCount
}

func (s Sampler) String() string {
	if !s.Valid() {
		return fmt.Sprintf("sampler(%d)", uint8(s))
	}
	return samplerNames[s]
}

// ParseSampler resolves a sampler name, case-insensitive
func ParseSampler(s string) (Sampler, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range samplerNames {
		if n == name {
			return Sampler(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSampler, s)
}

func (s Sampler) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSampler, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Sampler) UnmarshalText(text []byte) error {
	parsed, err := ParseSampler(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
