package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/ascii-cube/audio"
	"github.com/lixenwraith/ascii-cube/config"
	"github.com/lixenwraith/ascii-cube/engine"
	"github.com/lixenwraith/ascii-cube/export"
	"github.com/lixenwraith/ascii-cube/record"
	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/status"
)

// activeScreen is finalized by the panic handler so a crash leaves a usable terminal
var activeScreen tcell.Screen

func main() {
	defer func() {
		if r := recover(); r != nil {
			if activeScreen != nil {
				activeScreen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASCII-CUBE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	o, cfg, err := parseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ascii-cube: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, cfg); err != nil {
		log.Printf("exit: %v", err)
		stop()
		fmt.Fprintf(os.Stderr, "ascii-cube: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, cfg config.Config) error {
	if o.writeConfig != "" {
		return writeConfig(o.writeConfig, cfg)
	}

	headless := o.once || !term.IsTerminal(int(os.Stdout.Fd()))
	log.Printf("start: scene %+v, display %+v, headless %t", cfg.Scene, cfg.Display, headless)

	if o.play != "" {
		return play(ctx, o.play, cfg, headless)
	}

	reg := status.NewRegistry()
	defer func() {
		for _, line := range reg.Lines() {
			log.Print(line)
		}
	}()

	var sess *session
	var err error
	if headless {
		clock := engine.NewManualClock(time.Now())
		sess = newSession(cfg, clock, reg)
		err = withRecorder(o.record, sess, func() error {
			return runHeadless(ctx, os.Stdout, sess, clock, o.frames, cfg.Display.FPS)
		})
	} else {
		clock := engine.NewPausableClock(engine.SystemClock{})
		sess = newSession(cfg, clock, reg)
		err = withRecorder(o.record, sess, func() error {
			return runScreen(ctx, sess, clock, cfg, o.frames, o.export)
		})
	}
	if err != nil {
		return err
	}

	if o.export != "" {
		if err := export.Save(o.export, sess.state, sess.params); err != nil {
			return err
		}
		log.Printf("exported %s", o.export)
	}
	return nil
}

// withRecorder attaches a recorder to sess for the duration of fn when path is set
func withRecorder(path string, sess *session, fn func() error) error {
	if path == "" {
		return fn()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create recording: %w", err)
	}
	defer f.Close()

	w, err := record.NewWriter(f, sess.renderer.Grid())
	if err != nil {
		return err
	}
	sess.recorder = w

	runErr := fn()
	sess.recorder = nil
	if err := w.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to finish recording: %w", err)
	}
	log.Printf("recorded %d frames to %s", w.Frames(), path)
	return runErr
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	activeScreen = screen
	return screen, nil
}

func runScreen(ctx context.Context, sess *session, clock *engine.PausableClock, cfg config.Config, frames uint64, exportPath string) error {
	cue := &audio.Cue{}
	if cfg.Display.Sound {
		var err error
		// Non-fatal, the cube runs without sound
		if cue, err = audio.Open(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer cue.Close()

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	a := newApp(screen, sess, clock, cue, cfg.Display.Color)
	if exportPath != "" {
		a.exportPath = exportPath
	}
	return a.run(ctx, cfg.Display.FPS, frames)
}

func play(ctx context.Context, path string, cfg config.Config, headless bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	r, err := record.NewReader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()
	if r.Grid() != render.DefaultGrid() {
		log.Printf("recording grid %+v differs from default", r.Grid())
	}

	if headless {
		return playText(ctx, os.Stdout, r)
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	return playScreen(ctx, screen, r, cfg.Display.FPS, cfg.Display.Color)
}

func writeConfig(path string, cfg config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cfg.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
