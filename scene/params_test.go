package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/ascii-cube/parameter"
)

func TestDefaultsValid(t *testing.T) {
	p := Defaults()
	if err := p.Validate(); err != nil {
		t.Fatalf("Defaults should validate, got %v", err)
	}
	if p.Mode != ModeNormal {
		t.Errorf("Expected default mode normal, got %v", p.Mode)
	}
	if p.Sampler != SamplerDensity {
		t.Errorf("Expected default sampler density, got %v", p.Sampler)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"Unknown mode", func(p *Params) { p.Mode = Mode(42) }, ErrUnknownMode},
		{"Unknown sampler", func(p *Params) { p.Sampler = Sampler(9) }, ErrUnknownSampler},
		{"Zero distance", func(p *Params) { p.Distance = 0 }, ErrInvalidDistance},
		{"Negative distance", func(p *Params) { p.Distance = -3 }, ErrInvalidDistance},
		{"Zero speed", func(p *Params) { p.Speed = 0 }, ErrInvalidSpeed},
		{"NaN speed", func(p *Params) { p.Speed = math.NaN() }, ErrInvalidSpeed},
		{"Negative size", func(p *Params) { p.Size = -1 }, ErrInvalidSize},
		{"Infinite size", func(p *Params) { p.Size = math.Inf(1) }, ErrInvalidSize},
		{"Huge size", func(p *Params) { p.Size = 1e6 }, ErrInvalidSize},
		{"Size above limit", func(p *Params) { p.Size = parameter.SizeLimit + 1 }, ErrInvalidSize},
		{"Size at limit", func(p *Params) { p.Size = parameter.SizeLimit }, nil},
		{"Zero density", func(p *Params) { p.Density = 0 }, ErrInvalidDensity},
		{"NaN density", func(p *Params) { p.Density = math.NaN() }, ErrInvalidDensity},
		{"Tiny density", func(p *Params) { p.Density = 1e-7 }, ErrInvalidDensity},
		{"Density below floor", func(p *Params) { p.Density = parameter.DensityFloor / 2 }, ErrInvalidDensity},
		{"Density at floor", func(p *Params) { p.Density = parameter.DensityFloor }, nil},
		{"Density above one", func(p *Params) { p.Density = 1.01 }, ErrInvalidDensity},
		{"Density exactly one", func(p *Params) { p.Density = 1 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Defaults()
			tt.modify(&p)
			err := p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"normal", ModeNormal},
		{"Wobble", ModeWobble},
		{" spiral ", ModeSpiral},
		{"CHAOS", ModeChaos},
		{"diagonal", ModeDiagonal},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Errorf("ParseMode(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("tumble"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode for unknown name, got %v", err)
	}
}

func TestModeTextRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}
		var back Mode
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != m {
			t.Errorf("Round trip %v -> %s -> %v", m, text, back)
		}
	}

	if _, err := Mode(200).MarshalText(); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode marshaling invalid mode, got %v", err)
	}
}

func TestModesOrder(t *testing.T) {
	want := []string{"normal", "wobble", "spiral", "chaos", "diagonal"}
	modes := Modes()
	if len(modes) != len(want) {
		t.Fatalf("Expected %d modes, got %d", len(want), len(modes))
	}
	for i, m := range modes {
		if m.String() != want[i] {
			t.Errorf("Mode %d: expected %s, got %s", i, want[i], m)
		}
	}
}

func TestParseSampler(t *testing.T) {
	if s, err := ParseSampler("sweep"); err != nil || s != SamplerSweep {
		t.Errorf("ParseSampler(sweep) = %v, %v", s, err)
	}
	if _, err := ParseSampler("grid"); !errors.Is(err, ErrUnknownSampler) {
		t.Errorf("Expected ErrUnknownSampler, got %v", err)
	}
}
