// Package audio plays a short tone when the rotation mode changes.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ascii-cube/parameter"
	"github.com/lixenwraith/ascii-cube/scene"
)

// Player receives finished streamers; the speaker package satisfies it via SpeakerPlayer
type Player interface {
	Play(s ...beep.Streamer)
}

// SpeakerPlayer routes streams to the system speaker
type SpeakerPlayer struct{}

func (SpeakerPlayer) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

// modeSteps are pentatonic semitone offsets above the base cue, one per mode
var modeSteps = [...]float64{0, 2, 4, 7, 9}

// Cue plays mode-change tones; the zero value is silent
type Cue struct {
	mu       sync.Mutex
	player   Player
	rate     beep.SampleRate
	duration time.Duration
	owned    bool // speaker initialized by Open, closed by Close
}

// Open initializes the system speaker
// Failure is returned for logging; the returned Cue stays usable and silent
func Open() (*Cue, error) {
	rate := beep.SampleRate(parameter.SampleRate)
	c := &Cue{rate: rate, duration: parameter.CueDurationMs * time.Millisecond}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("speaker init: %w", err)
	}
	c.player = SpeakerPlayer{}
	c.owned = true
	return c, nil
}

// NewCue creates a cue that hands tones to player
func NewCue(player Player) *Cue {
	rate := beep.SampleRate(parameter.SampleRate)
	return &Cue{
		player:   player,
		rate:     rate,
		duration: parameter.CueDurationMs * time.Millisecond,
	}
}

// Enabled reports whether tones reach a player
func (c *Cue) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player != nil
}

// Frequency returns the tone pitch for mode in Hz
func Frequency(mode scene.Mode) float64 {
	step := 0.0
	if int(mode) < len(modeSteps) {
		step = modeSteps[mode]
	}
	return parameter.CueFrequency * math.Pow(2, step/12)
}

// PlayMode plays the tone for mode; no-op when silent
func (c *Cue) PlayMode(mode scene.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.player == nil {
		return nil
	}

	sine, err := generators.SineTone(c.rate, Frequency(mode))
	if err != nil {
		return fmt.Errorf("tone for %v: %w", mode, err)
	}
	c.player.Play(beep.Take(c.rate.N(c.duration), sine))
	return nil
}

// Close releases the speaker if Open initialized it
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owned {
		speaker.Close()
		c.owned = false
	}
	c.player = nil
}
