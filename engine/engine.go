// Package engine runs the terminal frontend: input, simulation step, render, flush.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/heartglow/audio"
	"github.com/lixenwraith/heartglow/camera"
	"github.com/lixenwraith/heartglow/control"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/render"
	"github.com/lixenwraith/heartglow/terminal"
	"github.com/lixenwraith/heartglow/theme"
	"github.com/lixenwraith/heartglow/ui"
)

// Engine owns every per-frame collaborator of the terminal frontend
// All state is mutated on the Run goroutine
type Engine struct {
	term     terminal.Terminal
	sim      *heart.Simulation
	ctrl     *control.Controller
	cam      *camera.Camera
	pipeline *render.Pipeline
	buf      *render.Buffer
	panel    *ui.Panel
	beat     *audio.Heartbeat
	stats    *frameStats
	log      *zap.Logger

	fps           int
	width, height int

	dragging     bool
	dragX, dragY int
}

// New wires a terminal engine, beat may be nil for no audio
// The terminal must already be initialized
func New(term terminal.Terminal, sim *heart.Simulation, registry *theme.Registry, beat *audio.Heartbeat, cfg Config, log *zap.Logger) *Engine {
	cfg = cfg.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		term:     term,
		sim:      sim,
		ctrl:     control.New(registry, sim, log.Named("control")),
		cam:      camera.New(cfg.FPS),
		pipeline: render.NewPipeline(cfg.PointBoost),
		buf:      render.NewBuffer(0, 0),
		panel:    ui.NewPanel(registry),
		beat:     beat,
		stats:    newFrameStats(cfg.Clock),
		log:      log,
		fps:      cfg.FPS,
	}
	e.ctrl.AttachBloom(e.pipeline)
	e.ctrl.AttachIndicator(e.panel)
	if beat != nil {
		e.panel.SetMuted(beat.Muted())
	}

	w, h := term.Size()
	e.Resize(w, h)
	return e
}

// Controller returns the theme controller
func (e *Engine) Controller() *control.Controller { return e.ctrl }

// Camera returns the orbit camera
func (e *Engine) Camera() *camera.Camera { return e.cam }

// Resize reallocates buffers for a w x h cell screen
// The bottom rows hold the panel, the rest is the scene at two pixels per cell row
func (e *Engine) Resize(w, h int) {
	e.width, e.height = max(w, 0), max(h, 0)
	sceneRows := max(e.height-parameter.PanelRows, 0)
	e.buf.Resize(e.width, e.height)
	e.pipeline.Resize(e.width, sceneRows*2)
	e.cam.SetViewport(e.width, sceneRows*2, parameter.TerminalPixelAspect)
	e.log.Debug("resize", zap.Int("width", e.width), zap.Int("height", e.height))
}

// startInputReader forwards terminal events to a channel until the terminal closes
func startInputReader(term terminal.Terminal) <-chan terminal.Event {
	ch := make(chan terminal.Event, 64)
	go func() {
		defer close(ch)
		for {
			ev := term.PollEvent()
			if ev.Type == terminal.EventClosed {
				return
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}()
	return ch
}

// Run drives frames at the configured rate until a quit key, ctx cancellation, or terminal close
func (e *Engine) Run(ctx context.Context) error {
	e.term.SetMouseEnabled(true)
	defer e.term.SetMouseEnabled(false)

	inputCh := startInputReader(e.term)

	ticker := time.NewTicker(time.Second / time.Duration(e.fps))
	defer ticker.Stop()

	e.log.Info("engine started",
		zap.Int("particles", e.sim.Store().Len()),
		zap.String("theme", e.ctrl.Active()),
		zap.Int("fps", e.fps),
		zap.Int64("seed", e.sim.Seed()),
	)

	for {
		select {
		case <-ctx.Done():
			e.log.Info("engine stopped", zap.Error(ctx.Err()))
			return nil

		case <-ticker.C:
		drainInput:
			for {
				select {
				case ev, ok := <-inputCh:
					if !ok {
						e.log.Info("input closed")
						return nil
					}
					if !e.HandleEvent(ev) {
						e.log.Info("quit requested")
						return nil
					}
				default:
					break drainInput
				}
			}
			e.Frame()
		}
	}
}

// Frame advances the simulation one step and presents it
func (e *Engine) Frame() {
	e.sim.Advance()
	if e.beat != nil && e.sim.AnimationEnabled() {
		e.beat.Observe(e.sim.Time())
	}
	e.cam.Update()

	frame := e.pipeline.Render(e.sim.Store(), e.cam)
	e.buf.Clear()
	render.Present(frame, e.buf)
	e.panel.Draw(e.buf)
	e.buf.FlushToTerminal(e.term)

	if fps, ok := e.stats.tick(parameter.StatsLogInterval); ok {
		e.log.Debug("frame stats",
			zap.Float64("fps", fps),
			zap.Uint64("frames", e.stats.total),
			zap.Int("drawn", e.pipeline.Drawn()),
			zap.Float64("time", e.sim.Time()),
		)
	}
}
