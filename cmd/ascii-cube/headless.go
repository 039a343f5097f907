package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/ascii-cube/engine"
	"github.com/lixenwraith/ascii-cube/parameter"
	"github.com/lixenwraith/ascii-cube/record"
	"github.com/lixenwraith/ascii-cube/render"
)

// frameSeparator goes between printed frames; rows are never empty so it cannot occur inside one
const frameSeparator = "\n\n"

// textSink prints frames to a writer, separated by a blank line
type textSink struct {
	w     *bufio.Writer
	count int
}

func newTextSink(w io.Writer) *textSink {
	return &textSink{w: bufio.NewWriter(w)}
}

func (t *textSink) write(buf *render.FrameBuffer) error {
	if t.count > 0 {
		if _, err := t.w.WriteString(frameSeparator); err != nil {
			return err
		}
	}
	if _, err := buf.WriteTo(t.w); err != nil {
		return err
	}
	t.count++
	return t.w.Flush()
}

func (t *textSink) close() error {
	if t.count > 0 {
		if _, err := t.w.WriteString("\n"); err != nil {
			return err
		}
	}
	return t.w.Flush()
}

// runHeadless renders frames into w back to back
// clock advances one frame interval per tick so time-phased modes animate at the nominal rate
// frames == 0 paces the loop and runs until ctx is cancelled
func runHeadless(ctx context.Context, w io.Writer, s *session, clock *engine.ManualClock, frames uint64, fps int) error {
	interval := parameter.FrameInterval(fps)
	sink := newTextSink(w)

	loop := engine.NewLoop(interval, func(frame uint64) error {
		if frame > 0 {
			clock.Advance(interval)
		}
		buf, _, err := s.step(true)
		if err != nil {
			return err
		}
		return sink.write(buf)
	})
	loop.Limit = frames
	loop.Paced = frames == 0

	start := time.Now()
	err := loop.Run(ctx)
	if cerr := sink.close(); err == nil {
		err = cerr
	}
	log.Printf("headless: %d frames in %v", sink.count, time.Since(start))
	return err
}

// playText prints every frame of a recording
func playText(ctx context.Context, w io.Writer, r *record.Reader) error {
	sink := newTextSink(w)
	err := runPlayback(ctx, r, 0, false, func(f record.Frame, _ uint64) error {
		return sink.write(f.Buffer)
	})
	if cerr := sink.close(); err == nil {
		err = cerr
	}
	return err
}

// runPlayback hands recorded frames to show until the recording ends or ctx is cancelled
func runPlayback(ctx context.Context, r *record.Reader, fps int, paced bool, show func(f record.Frame, index uint64) error) error {
	loop := engine.NewLoop(parameter.FrameInterval(fps), func(frame uint64) error {
		f, err := r.Next()
		if err == io.EOF {
			return engine.ErrStopLoop
		}
		if err != nil {
			return err
		}
		return show(f, frame)
	})
	loop.Paced = paced
	return loop.Run(ctx)
}
