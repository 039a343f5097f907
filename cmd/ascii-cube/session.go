package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/ascii-cube/config"
	"github.com/lixenwraith/ascii-cube/engine"
	"github.com/lixenwraith/ascii-cube/orient"
	"github.com/lixenwraith/ascii-cube/record"
	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/scene"
	"github.com/lixenwraith/ascii-cube/status"
)

// pcgStream is the fixed second word of the chaos PCG state
const pcgStream = 0x9e3779b97f4a7c15

// session owns the orientation and parameters between ticks
// Only the loop goroutine touches it; metrics are the sole shared output
type session struct {
	renderer *render.Renderer
	params   scene.Params
	state    orient.State
	clock    engine.TimeProvider
	rng      *rand.Rand
	metrics  *status.FrameMetrics
	recorder *record.Writer

	lastDigest uint64
	rendered   bool
}

func newSession(cfg config.Config, clock engine.TimeProvider, reg *status.Registry) *session {
	seed := cfg.Display.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	r := render.NewRenderer(render.DefaultGrid())
	r.Workers = cfg.Display.Workers

	s := &session{
		renderer: r,
		params:   cfg.Scene,
		clock:    clock,
		rng:      rand.New(rand.NewPCG(seed, pcgStream)),
		metrics:  status.NewFrameMetrics(reg),
	}
	s.metrics.SetMode(s.params.Mode.String())
	return s
}

// setParams swaps in p if it validates; a rejected change keeps the current parameters
func (s *session) setParams(p scene.Params) error {
	if err := p.Validate(); err != nil {
		log.Printf("rejected parameter change: %v", err)
		return err
	}
	if p.Mode != s.params.Mode {
		s.metrics.SetMode(p.Mode.String())
	}
	s.params = p
	return nil
}

// step runs one frame: advance the orientation unless frozen, rasterize, record
// changed is false when the cells match the previous frame
func (s *session) step(advance bool) (buf *render.FrameBuffer, changed bool, err error) {
	if advance {
		env := orient.Env{Now: s.clock.Now(), Rand: s.rng}
		if err := orient.Advance(&s.state, s.params.Mode, s.params.Speed, env); err != nil {
			return nil, false, err
		}
	}

	start := time.Now()
	buf, stats, err := s.renderer.Render(s.state, s.params)
	if err != nil {
		return nil, false, fmt.Errorf("render: %w", err)
	}
	s.metrics.RecordPass(stats.Samples, stats.Plotted, stats.Occluded, stats.Discarded, time.Since(start))
	s.metrics.Tick(time.Now())

	if s.recorder != nil {
		f := record.Frame{Mode: s.params.Mode, State: s.state, Buffer: buf}
		if err := s.recorder.WriteFrame(f); err != nil {
			return nil, false, fmt.Errorf("record: %w", err)
		}
	}

	digest := buf.Digest()
	changed = !s.rendered || digest != s.lastDigest
	if !changed {
		s.metrics.RecordUnchanged()
	}
	s.lastDigest = digest
	s.rendered = true
	return buf, changed, nil
}
