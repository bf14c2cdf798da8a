// Package window is the desktop frontend: an ebiten game drawing the heart with GPU sprites and bloom.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/heartglow/audio"
	"github.com/lixenwraith/heartglow/camera"
	"github.com/lixenwraith/heartglow/control"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/render"
	"github.com/lixenwraith/heartglow/theme"
)

// Game implements ebiten.Game over a simulation
type Game struct {
	sim   *heart.Simulation
	ctrl  *control.Controller
	cam   *camera.Camera
	panel *panel
	bloom *bloom
	beat  *audio.Heartbeat
	log   *zap.Logger

	sprite    *render.Sprite
	spriteImg *ebiten.Image
	scene     *ebiten.Image

	width, height int
	frames        uint64

	dragging     bool
	dragX, dragY int
}

// New wires a window game, beat may be nil for no audio
// No GPU resources are allocated until the first Draw
func New(sim *heart.Simulation, registry *theme.Registry, beat *audio.Heartbeat, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		sim:    sim,
		ctrl:   control.New(registry, sim, log.Named("control")),
		cam:    camera.New(ebiten.TPS()),
		panel:  newPanel(registry),
		bloom:  newBloom(),
		beat:   beat,
		log:    log,
		sprite: render.NewSprite(parameter.SpriteLUTSize),
	}
	g.ctrl.AttachBloom(g)
	g.ctrl.AttachIndicator(g)
	if beat != nil {
		g.panel.muted = beat.Muted()
	}
	g.resize(parameter.WindowWidthDefault, parameter.WindowHeightDefault)
	return g
}

// Controller returns the theme controller
func (g *Game) Controller() *control.Controller { return g.ctrl }

// Camera returns the orbit camera
func (g *Game) Camera() *camera.Camera { return g.cam }

// SetBloom replaces the bloom parameters for the next Draw
func (g *Game) SetBloom(b theme.Bloom) { g.bloom.params = b }

// SetActive highlights the button of the active theme
func (g *Game) SetActive(key string) { g.panel.SetActive(key) }

// SetAnimation updates the checkbox
func (g *Game) SetAnimation(enabled bool) { g.panel.SetAnimation(enabled) }

// Update applies one frame of input and advances the simulation one step
func (g *Game) Update() error {
	if !g.apply(pollInput()) {
		return ebiten.Termination
	}
	g.step()
	return nil
}

// step advances simulation, heartbeat, and camera by one frame
func (g *Game) step() {
	g.sim.Advance()
	if g.beat != nil && g.sim.AnimationEnabled() {
		g.beat.Observe(g.sim.Time())
	}
	g.cam.Update()

	g.frames++
	if g.frames%parameter.StatsLogInterval == 0 {
		g.log.Debug("frame stats",
			zap.Float64("tps", ebiten.ActualTPS()),
			zap.Float64("fps", ebiten.ActualFPS()),
			zap.Uint64("frames", g.frames),
			zap.Float64("time", g.sim.Time()),
		)
	}
}

// Draw renders particles, bloom, then the panel
func (g *Game) Draw(screen *ebiten.Image) {
	if g.spriteImg == nil {
		g.spriteImg = ebiten.NewImageFromImage(spritePixels(parameter.WindowSpriteSize, g.sprite))
	}
	if g.scene == nil {
		g.scene = ebiten.NewImage(g.width, g.height)
	}

	g.scene.Clear()
	g.drawParticles(g.scene)
	g.sim.Store().ClearDirty()

	screen.DrawImage(g.scene, nil)
	g.bloom.apply(screen, g.scene)
	g.panel.draw(screen)
}

func (g *Game) drawParticles(dst *ebiten.Image) {
	store := g.sim.Store()
	positions := store.Positions()
	colors := store.Colors()
	sizes := store.Sizes()

	inv := 1 / float64(parameter.WindowSpriteSize)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: ebiten.BlendLighter}
	for i, p := range positions {
		x, y, depth, ok := g.cam.Project(p)
		if !ok {
			continue
		}
		d := float64(sizes[i] * parameter.PointSize * g.cam.PointScale(depth))
		if d <= 0 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(d*inv, d*inv)
		op.GeoM.Translate(float64(x)-d*0.5, float64(y)-d*0.5)
		op.ColorScale.Reset()
		c := colors[i]
		op.ColorScale.Scale(c[0], c[1], c[2], 1)
		dst.DrawImage(g.spriteImg, op)
	}
}

// Layout reports the window size as the logical screen and resizes on change
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.resize(w, h)
	}
	return w, h
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.cam.SetViewport(w, h, 1)
	g.panel.layout(w, h)
	g.bloom.resize(w, h)
	if g.scene != nil {
		g.scene.Deallocate()
		g.scene = nil
	}
	g.log.Debug("resize", zap.Int("width", w), zap.Int("height", h))
}
