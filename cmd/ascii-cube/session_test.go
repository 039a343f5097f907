package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/ascii-cube/config"
	"github.com/lixenwraith/ascii-cube/constant"
	"github.com/lixenwraith/ascii-cube/engine"
	"github.com/lixenwraith/ascii-cube/orient"
	"github.com/lixenwraith/ascii-cube/record"
	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/scene"
	"github.com/lixenwraith/ascii-cube/status"
)

func testSession(t *testing.T, mode scene.Mode) (*session, *engine.ManualClock, *status.Registry) {
	t.Helper()
	cfg := config.Default()
	cfg.Scene.Mode = mode
	cfg.Display.Seed = 7
	clock := engine.NewManualClock(time.UnixMilli(1_700_000_000_000))
	reg := status.NewRegistry()
	return newSession(cfg, clock, reg), clock, reg
}

func TestSessionStepAdvancesAndCounts(t *testing.T) {
	s, _, reg := testSession(t, scene.ModeNormal)

	if _, _, err := s.step(true); err != nil {
		t.Fatalf("step: %v", err)
	}
	want := orient.State{A: 0.01 * 0.5, B: 0.01 * 0.5, C: 0.02 * 0.5}
	if s.state != want {
		t.Errorf("Expected %v after one step, got %v", want, s.state)
	}
	if s.metrics.Frames() != 1 {
		t.Errorf("Expected 1 frame counted, got %d", s.metrics.Frames())
	}
	if got := reg.Strings.Get(status.KeyMode).Load(); got != "normal" {
		t.Errorf("Expected mode metric normal, got %q", got)
	}
}

func TestSessionFrozenStepUnchanged(t *testing.T) {
	s, _, reg := testSession(t, scene.ModeNormal)

	_, changed, _ := s.step(true)
	if !changed {
		t.Error("First frame must count as changed")
	}
	before := s.state
	_, changed, _ = s.step(false)
	if changed {
		t.Error("Frozen step with same params should match previous frame")
	}
	if s.state != before {
		t.Error("Frozen step moved the orientation")
	}
	if got := reg.Ints.Get(status.KeySkipped).Load(); got != 1 {
		t.Errorf("Expected 1 unchanged frame, got %d", got)
	}
}

func TestSessionStepSurfacesRenderError(t *testing.T) {
	s, _, _ := testSession(t, scene.ModeNormal)
	s.params.Density = 1e-7 // bypasses setParams validation

	buf, _, err := s.step(true)
	if !errors.Is(err, render.ErrSampleLimit) {
		t.Fatalf("Expected ErrSampleLimit, got %v", err)
	}
	if buf != nil {
		t.Error("Failed step returned a frame")
	}
	if s.metrics.Frames() != 0 {
		t.Errorf("Failed step counted %d frames", s.metrics.Frames())
	}
}

func TestSessionSetParamsRejectsInvalid(t *testing.T) {
	s, _, reg := testSession(t, scene.ModeNormal)
	before := s.params

	bad := before
	bad.Size = 0
	if err := s.setParams(bad); !errors.Is(err, scene.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
	if s.params != before {
		t.Error("Rejected change altered params")
	}

	good := before
	good.Mode = scene.ModeChaos
	if err := s.setParams(good); err != nil {
		t.Fatalf("setParams: %v", err)
	}
	if got := reg.Strings.Get(status.KeyMode).Load(); got != "chaos" {
		t.Errorf("Mode metric not updated, got %q", got)
	}
}

func TestSessionChaosSeeded(t *testing.T) {
	a, _, _ := testSession(t, scene.ModeChaos)
	b, _, _ := testSession(t, scene.ModeChaos)
	for i := 0; i < 5; i++ {
		a.step(true)
		b.step(true)
	}
	if a.state != b.state {
		t.Errorf("Same seed diverged: %v vs %v", a.state, b.state)
	}
}

func TestRunHeadlessPrintsFrames(t *testing.T) {
	s, clock, _ := testSession(t, scene.ModeWobble)
	start := clock.Now()

	var out bytes.Buffer
	if err := runHeadless(context.Background(), &out, s, clock, 3, 30); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	text := strings.TrimSuffix(out.String(), "\n")
	frames := strings.Split(text, frameSeparator)
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		lines := strings.Split(f, "\n")
		if len(lines) != constant.GridHeight {
			t.Fatalf("Frame %d: expected %d rows, got %d", i, constant.GridHeight, len(lines))
		}
		for _, l := range lines {
			if len(l) != constant.GridWidth {
				t.Fatalf("Frame %d: row width %d", i, len(l))
			}
		}
	}
	if got := clock.Now().Sub(start); got != 2*time.Second/30 {
		t.Errorf("Expected clock advanced by two intervals, got %v", got)
	}
}

func TestRecordThenPlayText(t *testing.T) {
	s, clock, _ := testSession(t, scene.ModeSpiral)

	var file, live bytes.Buffer
	w, err := record.NewWriter(&file, s.renderer.Grid())
	if err != nil {
		t.Fatal(err)
	}
	s.recorder = w
	if err := runHeadless(context.Background(), &live, s, clock, 4, 30); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := record.NewReader(&file)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var played bytes.Buffer
	if err := playText(context.Background(), &played, r); err != nil {
		t.Fatalf("playText: %v", err)
	}
	if played.String() != live.String() {
		t.Error("Played back text differs from live output")
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	s, clock, _ := testSession(t, scene.ModeNormal)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := runHeadless(ctx, &out, s, clock, 0, 30); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if out.Len() != 0 {
		t.Error("Cancelled run printed frames")
	}
}
