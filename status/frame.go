package status

import (
	"sync/atomic"
	"time"
)

// Metric keys written by FrameMetrics
const (
	KeyFrames    = "frame.count"
	KeySamples   = "frame.samples"
	KeyPlotted   = "frame.plotted"
	KeyOccluded  = "frame.occluded"
	KeyDiscarded = "frame.discarded"
	KeySkipped   = "frame.unchanged"
	KeyFPS       = "frame.fps"
	KeyRenderMs  = "frame.render_ms"
	KeyMode      = "scene.mode"
	KeyPaused    = "scene.paused"
)

// fpsSmoothing weights the newest interval in the moving FPS average
const fpsSmoothing = 0.1

// FrameMetrics caches registry pointers for the per-frame hot path
type FrameMetrics struct {
	frames    *atomic.Int64
	samples   *atomic.Int64
	plotted   *atomic.Int64
	occluded  *atomic.Int64
	discarded *atomic.Int64
	skipped   *atomic.Int64
	fps       *Float
	renderMs  *Float
	mode      *Text
	paused    *atomic.Bool

	last time.Time
}

// NewFrameMetrics registers the frame metrics in reg
func NewFrameMetrics(reg *Registry) *FrameMetrics {
	return &FrameMetrics{
		frames:    reg.Ints.Get(KeyFrames),
		samples:   reg.Ints.Get(KeySamples),
		plotted:   reg.Ints.Get(KeyPlotted),
		occluded:  reg.Ints.Get(KeyOccluded),
		discarded: reg.Ints.Get(KeyDiscarded),
		skipped:   reg.Ints.Get(KeySkipped),
		fps:       reg.Floats.Get(KeyFPS),
		renderMs:  reg.Floats.Get(KeyRenderMs),
		mode:      reg.Strings.Get(KeyMode),
		paused:    reg.Bools.Get(KeyPaused),
	}
}

// RecordPass stores the counters of the latest rasterization pass
// Sample counters hold the last frame's values, not running totals
func (m *FrameMetrics) RecordPass(samples, plotted, occluded, discarded int, took time.Duration) {
	m.frames.Add(1)
	m.samples.Store(int64(samples))
	m.plotted.Store(int64(plotted))
	m.occluded.Store(int64(occluded))
	m.discarded.Store(int64(discarded))
	m.renderMs.Store(float64(took.Microseconds()) / 1000)
}

// RecordUnchanged counts a frame whose output matched the previous one
func (m *FrameMetrics) RecordUnchanged() {
	m.skipped.Add(1)
}

// Tick feeds a frame timestamp into the moving FPS average
func (m *FrameMetrics) Tick(now time.Time) {
	if !m.last.IsZero() {
		if dt := now.Sub(m.last).Seconds(); dt > 0 {
			inst := 1 / dt
			m.fps.Update(func(prev float64) float64 {
				if prev == 0 {
					return inst
				}
				return prev + fpsSmoothing*(inst-prev)
			})
		}
	}
	m.last = now
}

func (m *FrameMetrics) SetMode(name string) { m.mode.Store(name) }

func (m *FrameMetrics) SetPaused(paused bool) { m.paused.Store(paused) }

func (m *FrameMetrics) Frames() int64 { return m.frames.Load() }

func (m *FrameMetrics) FPS() float64 { return m.fps.Load() }
