package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/ascii-cube/config"
	"github.com/lixenwraith/ascii-cube/parameter"
	"github.com/lixenwraith/ascii-cube/scene"
)

var errConflictingFlags = errors.New("conflicting flags")

// options holds the command line; scene and display values are folded into a config.Config
type options struct {
	configPath  string
	writeConfig string

	mode     string
	sampler  string
	speed    float64
	size     float64
	density  float64
	distance float64
	fps      int
	workers  int
	seed     uint64
	color    bool
	sound    bool

	debug  bool
	once   bool
	frames uint64

	record string
	play   string
	export string
}

func newFlagSet(name string, o *options) *flag.FlagSet {
	def := config.Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.StringVar(&o.writeConfig, "write-config", "", "write the effective config to this file and exit")

	fs.StringVar(&o.mode, "mode", def.Scene.Mode.String(), "rotation mode: normal, wobble, spiral, chaos, diagonal")
	fs.StringVar(&o.sampler, "sampler", def.Scene.Sampler.String(), "surface sampler: density, sweep")
	fs.Float64Var(&o.speed, "speed", def.Scene.Speed, "rotation speed multiplier")
	fs.Float64Var(&o.size, "size", def.Scene.Size, fmt.Sprintf("cube half-extent, at most %v", parameter.SizeLimit))
	fs.Float64Var(&o.density, "density", def.Scene.Density, fmt.Sprintf("surface sampling step in [%v, 1]", parameter.DensityFloor))
	fs.Float64Var(&o.distance, "distance", def.Scene.Distance, "camera distance from the cube center")
	fs.IntVar(&o.fps, "fps", def.Display.FPS, "target frames per second")
	fs.IntVar(&o.workers, "workers", def.Display.Workers, "parallel projection workers, 0 or 1 for serial")
	fs.Uint64Var(&o.seed, "seed", def.Display.Seed, "chaos mode random seed, 0 for time based")
	fs.BoolVar(&o.color, "color", def.Display.Color, "color faces in the terminal")
	fs.BoolVar(&o.sound, "sound", def.Display.Sound, "play a tone on mode change")

	fs.BoolVar(&o.debug, "debug", false, "write debug log to logs/")
	fs.BoolVar(&o.once, "once", false, "print frames to stdout instead of the interactive screen")
	fs.Uint64Var(&o.frames, "frames", 0, "stop after this many frames, 0 runs until quit (1 with -once)")

	fs.StringVar(&o.record, "record", "", "record frames to this file")
	fs.StringVar(&o.play, "play", "", "play back a recording instead of rendering")
	fs.StringVar(&o.export, "export", "", "write the posed cube as a .glb point cloud on exit and with the e key")
	return fs
}

// parseFlags layers defaults, the optional config file and explicitly set flags, then validates
func parseFlags(name string, args []string, usage io.Writer) (options, config.Config, error) {
	var o options
	fs := newFlagSet(name, &o)
	fs.SetOutput(usage)
	if err := fs.Parse(args); err != nil {
		return o, config.Config{}, err
	}
	if fs.NArg() > 0 {
		return o, config.Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return o, cfg, err
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		if ferr != nil {
			return
		}
		ferr = o.apply(f.Name, &cfg)
	})
	if ferr != nil {
		return o, cfg, ferr
	}

	if o.once && o.frames == 0 {
		o.frames = 1
	}
	if o.play != "" && (o.record != "" || o.export != "") {
		return o, cfg, fmt.Errorf("%w: -play with -record or -export", errConflictingFlags)
	}
	if err := cfg.Validate(); err != nil {
		return o, cfg, err
	}
	return o, cfg, nil
}

func (o *options) apply(name string, cfg *config.Config) error {
	switch name {
	case "mode":
		m, err := scene.ParseMode(o.mode)
		if err != nil {
			return err
		}
		cfg.Scene.Mode = m
	case "sampler":
		s, err := scene.ParseSampler(o.sampler)
		if err != nil {
			return err
		}
		cfg.Scene.Sampler = s
	case "speed":
		cfg.Scene.Speed = o.speed
	case "size":
		cfg.Scene.Size = o.size
	case "density":
		cfg.Scene.Density = o.density
	case "distance":
		cfg.Scene.Distance = o.distance
	case "fps":
		cfg.Display.FPS = o.fps
	case "workers":
		cfg.Display.Workers = o.workers
	case "seed":
		cfg.Display.Seed = o.seed
	case "color":
		cfg.Display.Color = o.color
	case "sound":
		cfg.Display.Sound = o.sound
	}
	return nil
}
