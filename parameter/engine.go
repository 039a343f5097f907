package parameter

import "time"

// Frame loop timing
const (
	// DefaultFPS is the target frame rate of the interactive loop
	DefaultFPS = 30

	// MaxFPS caps the -fps flag; the rasterizer is cheap but terminals are not
	MaxFPS = 120

	// HUDRows is the number of terminal rows reserved below the cube grid
	HUDRows = 2
)

// FrameInterval converts a frame rate to a ticker period, falling back to DefaultFPS
func FrameInterval(fps int) time.Duration {
	if fps <= 0 || fps > MaxFPS {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Debug logging
const (
	LogDir      = "logs"
	LogFileName = "ascii-cube.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Audio cue
const (
	SampleRate    = 44100
	CueFrequency  = 660.0
	CueDurationMs = 40
)
