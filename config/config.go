// Package config loads the optional TOML settings file layered between built-in defaults and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ascii-cube/parameter"
	"github.com/lixenwraith/ascii-cube/scene"
)

// Sentinel errors
var (
	ErrUnknownKey     = errors.New("unknown config key")
	ErrInvalidFPS     = errors.New("fps out of range")
	ErrInvalidWorkers = errors.New("workers must not be negative")
)

// Config is the full host configuration
type Config struct {
	Scene   scene.Params `toml:"scene"`
	Display Display      `toml:"display"`
}

// Display holds terminal host settings that never reach the render core
type Display struct {
	FPS     int    `toml:"fps"`
	Workers int    `toml:"workers"`
	Color   bool   `toml:"color"`
	Sound   bool   `toml:"sound"`
	Seed    uint64 `toml:"seed"` // zero seeds from the clock
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Scene: scene.Defaults(),
		Display: Display{
			FPS:   parameter.DefaultFPS,
			Color: true,
		},
	}
}

// Load reads path over the defaults; keys absent from the file keep their default
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, finish(cfg, md)
}

// Parse decodes TOML text over the defaults
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks the scene and display sections
func (c Config) Validate() error {
	if err := c.Scene.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if c.Display.FPS <= 0 || c.Display.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: %d (1-%d)", ErrInvalidFPS, c.Display.FPS, parameter.MaxFPS)
	}
	if c.Display.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Display.Workers)
	}
	return nil
}

// Write encodes c as TOML, suitable as a starting config file
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
