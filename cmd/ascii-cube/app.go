package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii-cube/audio"
	"github.com/lixenwraith/ascii-cube/engine"
	"github.com/lixenwraith/ascii-cube/export"
	"github.com/lixenwraith/ascii-cube/parameter"
	"github.com/lixenwraith/ascii-cube/record"
	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/scene"
)

const defaultExportPath = "ascii-cube.glb"

var (
	hudStyle       = tcell.StyleDefault.Foreground(render.RgbHUD)
	hudAccentStyle = tcell.StyleDefault.Foreground(render.RgbHUDAccent)
	hudErrorStyle  = tcell.StyleDefault.Foreground(render.RgbHUDError)
)

// app is the interactive terminal host
type app struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	sess  *session
	clock *engine.PausableClock
	cue   *audio.Cue
	color bool

	exportPath string
	message    string
	messageErr bool
	dirty      bool
	last       *render.FrameBuffer
}

func newApp(screen tcell.Screen, sess *session, clock *engine.PausableClock, cue *audio.Cue, color bool) *app {
	return &app{
		screen:     screen,
		events:     make(chan tcell.Event, 100),
		done:       make(chan struct{}),
		sess:       sess,
		clock:      clock,
		cue:        cue,
		color:      color,
		exportPath: defaultExportPath,
		dirty:      true,
	}
}

// pollEvents forwards screen events until the screen is finalized or the app stops
func (a *app) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// run drives the render loop; frames == 0 runs until quit
func (a *app) run(ctx context.Context, fps int, frames uint64) error {
	go a.pollEvents()
	defer close(a.done)

	loop := engine.NewLoop(parameter.FrameInterval(fps), a.tick)
	loop.Limit = frames
	return loop.Run(ctx)
}

// tick applies queued input, then renders and presents one frame
// Input is only consumed here, so parameters never change mid-frame
func (a *app) tick(_ uint64) error {
	if quit := a.drainEvents(); quit {
		return engine.ErrStopLoop
	}

	buf, changed, err := a.sess.step(!a.clock.IsPaused())
	if err != nil {
		return err
	}
	if changed || a.dirty {
		a.last = buf
		a.draw()
		a.dirty = false
	}
	return nil
}

func (a *app) drainEvents() (quit bool) {
	for {
		select {
		case ev := <-a.events:
			if !a.handleEvent(ev) {
				return true
			}
		default:
			return false
		}
	}
}

// handleEvent returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		next, act := handleKey(ev, a.sess.params)
		switch act {
		case actionQuit:
			return false
		case actionPause:
			paused := a.clock.Toggle()
			a.sess.metrics.SetPaused(paused)
			a.setMessage("", false)
		case actionReset:
			a.sess.state.Reset()
			a.setMessage("orientation reset", false)
		case actionExport:
			a.exportNow()
		case actionMode, actionParams:
			prevMode := a.sess.params.Mode
			if err := a.sess.setParams(next); err != nil {
				a.setMessage(err.Error(), true)
				break
			}
			a.setMessage("", false)
			if act == actionMode && next.Mode != prevMode {
				if err := a.cue.PlayMode(next.Mode); err != nil {
					log.Printf("cue: %v", err)
				}
			}
		}
		a.dirty = true
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	}
	return true
}

func (a *app) exportNow() {
	if err := export.Save(a.exportPath, a.sess.state, a.sess.params); err != nil {
		log.Printf("export: %v", err)
		a.setMessage(err.Error(), true)
		return
	}
	a.setMessage("exported "+a.exportPath, false)
}

func (a *app) setMessage(msg string, isErr bool) {
	a.message = msg
	a.messageErr = isErr
}

// origin centers the grid horizontally and keeps the HUD rows visible
func origin(sw, sh int, g render.Grid) (x0, y0 int) {
	x0 = max(0, (sw-g.Width)/2)
	y0 = max(0, (sh-g.Height-parameter.HUDRows)/2)
	return x0, y0
}

func (a *app) draw() {
	line2, style := helpLine, hudStyle
	if a.message != "" {
		line2 = a.message
		if a.messageErr {
			style = hudErrorStyle
		}
	}
	present(a.screen, a.last, a.color, a.statusLine(), line2, style)
}

// present draws buf and two HUD rows beneath it
func present(screen tcell.Screen, buf *render.FrameBuffer, color bool, line1, line2 string, style2 tcell.Style) {
	if buf == nil {
		return
	}
	screen.Clear()
	sw, sh := screen.Size()
	g := buf.Grid()
	x0, y0 := origin(sw, sh, g)
	buf.Draw(screen, x0, y0, color)

	hudY := min(y0+g.Height, sh-parameter.HUDRows)
	render.DrawText(screen, x0, hudY, line1, hudAccentStyle)
	render.DrawText(screen, x0, hudY+1, line2, style2)
	screen.Show()
}

const helpLine = "1-5 mode  +/- speed  [/] size  ,/. dist  d/D density  s sampler  r reset  e export  space pause  q quit"

func (a *app) statusLine() string {
	p := a.sess.params
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s speed %.1f  size %.0f  dist %.0f  dens %.2f  %s  %5.1f fps",
		p.Mode, p.Speed, p.Size, p.Distance, p.Density, p.Sampler, a.sess.metrics.FPS())
	if a.clock.IsPaused() {
		b.WriteString("  [paused]")
	}
	if a.cue.Enabled() {
		b.WriteString("  [sound]")
	}
	return b.String()
}

// playScreen shows a recording on the screen until it ends or the user quits
func playScreen(ctx context.Context, screen tcell.Screen, r *record.Reader, fps int, color bool) error {
	a := &app{screen: screen, events: make(chan tcell.Event, 100), done: make(chan struct{})}
	go a.pollEvents()
	defer close(a.done)

	return runPlayback(ctx, r, fps, true, func(f record.Frame, index uint64) error {
		if a.quitRequested() {
			return engine.ErrStopLoop
		}
		line := fmt.Sprintf("playback frame %d  %s  %s", index, f.Mode, f.State)
		present(screen, f.Buffer, color, line, "q quit", hudStyle)
		return nil
	})
}

// quitRequested drains pending events and reports a quit key among them
func (a *app) quitRequested() bool {
	for {
		select {
		case ev := <-a.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if _, act := handleKey(ev, scene.Params{}); act == actionQuit {
					return true
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		default:
			return false
		}
	}
}
