package window

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/heartglow/audio"
	"github.com/lixenwraith/heartglow/control"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/render"
	"github.com/lixenwraith/heartglow/theme"
	"github.com/lixenwraith/heartglow/ui"
)

var (
	_ ebiten.Game       = (*Game)(nil)
	_ control.BloomSink = (*Game)(nil)
	_ control.Indicator = (*Game)(nil)
)

type countingSink struct{ plays int }

func (c *countingSink) Play([]float64, float64) { c.plays++ }

func newTestGame(t *testing.T) (*Game, *countingSink) {
	t.Helper()
	cfg := heart.DefaultConfig()
	cfg.ParticleCount = 200
	cfg.Seed = 3
	sim, err := heart.New(cfg)
	if err != nil {
		t.Fatalf("heart.New: %v", err)
	}
	sink := &countingSink{}
	return New(sim, theme.Builtin(), audio.NewHeartbeat(sink, 8000), nil), sink
}

func center(r rect) (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

func click(x, y int) input {
	return input{cursorX: x, cursorY: y, pressed: true, held: true}
}

func TestPanelLayout(t *testing.T) {
	g, _ := newTestGame(t)
	p := g.panel

	wantY := parameter.WindowHeightDefault - parameter.WindowPanelMargin - parameter.WindowButtonHeight
	for i, r := range p.buttons {
		wantX := parameter.WindowPanelMargin + i*(parameter.WindowButtonWidth+parameter.WindowButtonGap)
		if r.x != wantX || r.y != wantY || r.w != parameter.WindowButtonWidth {
			t.Errorf("button %d = %+v, want x=%d y=%d", i, r, wantX, wantY)
		}
	}
	last := p.buttons[len(p.buttons)-1]
	if p.checkbox.w == 0 || p.checkbox.x <= last.x+last.w {
		t.Errorf("checkbox %+v not placed after last button %+v", p.checkbox, last)
	}
}

func TestPanelHitTest(t *testing.T) {
	g, _ := newTestGame(t)
	p := g.panel
	reg := theme.Builtin()

	for i, r := range p.buttons {
		x, y := center(r)
		th, _ := reg.At(i)
		if a := p.hitTest(x, y); a.Kind != ui.ActionTheme || a.Key != th.Key {
			t.Errorf("button %d hit = %+v, want theme %q", i, a, th.Key)
		}
	}
	if a := p.hitTest(center(p.checkbox)); a.Kind != ui.ActionToggleAnimation {
		t.Errorf("checkbox hit = %+v", a)
	}
	if a := p.hitTest(5, 5); a.Kind != ui.ActionNone {
		t.Errorf("scene hit = %+v, want none", a)
	}
}

func TestPanelNarrowWindow(t *testing.T) {
	g, _ := newTestGame(t)
	g.Layout(150, 300)
	p := g.panel

	if p.buttons[0].w == 0 {
		t.Fatal("first button should fit")
	}
	for i := 1; i < len(p.buttons); i++ {
		if p.buttons[i].w != 0 {
			t.Errorf("button %d should be hidden, got %+v", i, p.buttons[i])
		}
	}
	if p.checkbox.w != 0 {
		t.Errorf("checkbox should be hidden, got %+v", p.checkbox)
	}
	if a := p.hitTest(149, 299); a.Kind != ui.ActionNone {
		t.Errorf("hidden controls must not hit, got %+v", a)
	}
}

func TestClickSelectsThemeExclusively(t *testing.T) {
	g, _ := newTestGame(t)
	reg := theme.Builtin()

	for i := reg.Len() - 1; i >= 0; i-- {
		th, _ := reg.At(i)
		g.apply(click(center(g.panel.buttons[i])))
		if got := g.Controller().Active(); got != th.Key {
			t.Fatalf("active = %q, want %q", got, th.Key)
		}
		if g.panel.active != th.Key {
			t.Errorf("panel active = %q, want %q", g.panel.active, th.Key)
		}
		if g.sim.Theme() != th {
			t.Errorf("simulation theme not switched to %q", th.Key)
		}
		if g.bloom.params != th.Bloom {
			t.Errorf("bloom = %+v, want %+v", g.bloom.params, th.Bloom)
		}
		if g.dragging {
			t.Error("button click must not start a drag")
		}
	}
}

func TestClickCheckboxTogglesAnimation(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.sim.AnimationEnabled()

	g.apply(click(center(g.panel.checkbox)))
	if g.sim.AnimationEnabled() == before || g.panel.animate == before {
		t.Fatal("checkbox click did not toggle animation")
	}
	g.apply(input{})
	g.apply(click(center(g.panel.checkbox)))
	if g.sim.AnimationEnabled() != before {
		t.Error("second click did not restore animation")
	}
}

func TestKeyBindings(t *testing.T) {
	g, _ := newTestGame(t)
	reg := theme.Builtin()

	g.apply(input{keys: []ebiten.Key{ebiten.KeyDigit2}})
	th, _ := reg.At(1)
	if g.Controller().Active() != th.Key {
		t.Errorf("digit 2 active = %q, want %q", g.Controller().Active(), th.Key)
	}

	g.apply(input{keys: []ebiten.Key{ebiten.KeyT}})
	if want := reg.Next(th.Key); g.Controller().Active() != want {
		t.Errorf("T active = %q, want %q", g.Controller().Active(), want)
	}

	anim := g.sim.AnimationEnabled()
	g.apply(input{keys: []ebiten.Key{ebiten.KeySpace}})
	if g.sim.AnimationEnabled() == anim {
		t.Error("space did not toggle animation")
	}

	g.apply(input{keys: []ebiten.Key{ebiten.KeyM}})
	if !g.beat.Muted() || !g.panel.muted {
		t.Error("M did not mute")
	}

	g.apply(input{keys: []ebiten.Key{ebiten.KeyEqual}})
	if g.Camera().TargetDistance() >= parameter.CameraDistance {
		t.Errorf("= did not zoom in, target %v", g.Camera().TargetDistance())
	}

	if g.apply(input{keys: []ebiten.Key{ebiten.KeyEscape}}) {
		t.Error("escape should quit")
	}
	if g.apply(input{keys: []ebiten.Key{ebiten.KeyQ}}) {
		t.Error("Q should quit")
	}
}

func TestWheelZoom(t *testing.T) {
	g, _ := newTestGame(t)
	g.apply(input{wheel: 1})
	in := g.Camera().TargetDistance()
	if in >= parameter.CameraDistance {
		t.Fatalf("wheel up target = %v, want < %v", in, parameter.CameraDistance)
	}
	g.apply(input{wheel: -1})
	g.apply(input{wheel: -1})
	if out := g.Camera().TargetDistance(); out <= parameter.CameraDistance {
		t.Errorf("wheel down target = %v, want > %v", out, parameter.CameraDistance)
	}
}

func TestDragOrbits(t *testing.T) {
	g, _ := newTestGame(t)
	start := g.Camera().Eye()

	g.apply(click(600, 300))
	if !g.dragging {
		t.Fatal("click on the scene should start a drag")
	}
	g.apply(input{cursorX: 700, cursorY: 300, held: true})
	g.apply(input{cursorX: 700, cursorY: 300})
	if g.dragging {
		t.Error("release should end the drag")
	}

	for i := 0; i < 900; i++ {
		g.Camera().Update()
	}
	end := g.Camera().Eye()
	if math.Abs(float64(end.X()-start.X())) < 1 {
		t.Errorf("eye did not orbit: %v -> %v", start, end)
	}
	if math.Abs(float64(end.Y()-start.Y())) > 1e-3 {
		t.Errorf("horizontal drag changed elevation: %v -> %v", start, end)
	}
}

func TestLayoutResizes(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	if cw, ch := g.Camera().Viewport(); cw != 640 || ch != 480 {
		t.Errorf("camera viewport = %dx%d", cw, ch)
	}
	if want := 480 - parameter.WindowPanelMargin - parameter.WindowButtonHeight; g.panel.buttons[0].y != want {
		t.Errorf("button y = %d, want %d", g.panel.buttons[0].y, want)
	}
	if w, h := g.Layout(0, 0); w != 1 || h != 1 {
		t.Errorf("degenerate Layout = %dx%d, want 1x1", w, h)
	}
}

func TestStepHeartbeatFollowsAnimation(t *testing.T) {
	g, sink := newTestGame(t)
	for i := 0; i < 400; i++ {
		g.step()
	}
	if sink.plays == 0 {
		t.Fatal("no heartbeat while animating")
	}

	g.Controller().SetAnimationEnabled(false)
	plays := sink.plays
	for i := 0; i < 400; i++ {
		g.step()
	}
	if sink.plays != plays {
		t.Errorf("heartbeat played %d times while paused", sink.plays-plays)
	}
}

func TestBloomLevels(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{-1, 1},
		{0, 1},
		{0.4, 2},
		{0.5, 3},
		{1, parameter.WindowBloomLevelsMax},
		{3, parameter.WindowBloomLevelsMax},
	}
	for _, tt := range tests {
		if got := bloomLevels(tt.radius); got != tt.want {
			t.Errorf("bloomLevels(%v) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestBrightPass(t *testing.T) {
	cm := brightPass(0.5)
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0},
		{64, 0},
		{128, 0},
		{191, 127},
		{255, 255},
	}
	for _, tt := range tests {
		got := color.RGBAModel.Convert(cm.Apply(color.RGBA{R: tt.in, G: tt.in, B: tt.in, A: 255})).(color.RGBA)
		if d := int(got.R) - int(tt.want); d < -2 || d > 2 {
			t.Errorf("bright(%d) = %d, want %d", tt.in, got.R, tt.want)
		}
		if got.A != 255 {
			t.Errorf("bright(%d) alpha = %d", tt.in, got.A)
		}
	}
}

func TestCompositeScale(t *testing.T) {
	if got := compositeScale(0, 3); got != 0 {
		t.Errorf("zero strength = %v", got)
	}
	if got := compositeScale(1.5, 3); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("compositeScale(1.5, 3) = %v, want 0.5", got)
	}
}

func TestSpritePixels(t *testing.T) {
	const size = 32
	img := spritePixels(size, render.NewSprite(parameter.SpriteLUTSize))

	c := img.RGBAAt(size/2, size/2)
	if c.A < 200 {
		t.Errorf("center alpha = %d, want bright core", c.A)
	}
	if c.R != c.A || c.G != c.A || c.B != c.A {
		t.Errorf("sprite must be premultiplied white, got %+v", c)
	}
	if corner := img.RGBAAt(0, 0); corner.A != 0 {
		t.Errorf("corner alpha = %d, want 0", corner.A)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if img.RGBAAt(x, y) != img.RGBAAt(size-1-x, size-1-y) {
				t.Fatalf("sprite not symmetric at (%d,%d)", x, y)
			}
		}
	}
}
