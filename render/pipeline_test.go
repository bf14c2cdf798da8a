package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/heartglow/camera"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/theme"
)

func newTestScene(t *testing.T, count, w, h int) (*heart.Simulation, *camera.Camera) {
	t.Helper()
	cfg := heart.DefaultConfig()
	cfg.ParticleCount = count
	cfg.Seed = 7
	sim, err := heart.New(cfg)
	if err != nil {
		t.Fatalf("heart.New: %v", err)
	}
	cam := camera.New(60)
	cam.SetViewport(w, h, 1)
	return sim, cam
}

func TestPointsDrawAllVisible(t *testing.T) {
	sim, cam := newTestScene(t, 300, 160, 120)
	fb := NewFrameBuffer(160, 120)

	r := NewPointsRenderer(1)
	if n := r.Draw(fb, sim.Store(), cam); n != 300 {
		t.Errorf("drawn = %d, want 300", n)
	}
	if frameSum(fb) <= 0 {
		t.Error("frame is black after drawing")
	}

	// Heart is centered, corners stay dark
	if fb.At(0, 0) != (mgl32.Vec3{}) || fb.At(159, 119) != (mgl32.Vec3{}) {
		t.Error("light reached frame corners")
	}
}

func TestPointsBoostAddsLight(t *testing.T) {
	sim, cam := newTestScene(t, 100, 320, 240)
	small := NewFrameBuffer(320, 240)
	large := NewFrameBuffer(320, 240)
	NewPointsRenderer(1).Draw(small, sim.Store(), cam)
	NewPointsRenderer(3).Draw(large, sim.Store(), cam)
	if frameSum(large) <= frameSum(small) {
		t.Error("boosted sprites did not add light")
	}
}

func TestPipelineRender(t *testing.T) {
	sim, cam := newTestScene(t, 200, 100, 80)
	p := NewPipeline(1)
	p.Resize(100, 80)

	if got := p.Bloom(); got.Strength != 1.5 {
		t.Errorf("initial strength = %v", got.Strength)
	}
	p.SetBloom(theme.Cosmic.Bloom)
	if got := p.Bloom(); got != theme.Cosmic.Bloom {
		t.Errorf("bloom = %+v", got)
	}

	sim.Advance()
	if sim.Store().Dirty() == 0 {
		t.Fatal("store not dirty after Advance")
	}
	fb := p.Render(sim.Store(), cam)
	if fb != p.Frame() || fb.Width() != 100 || fb.Height() != 80 {
		t.Errorf("frame = %p %dx%d", fb, fb.Width(), fb.Height())
	}
	if p.Drawn() != 200 {
		t.Errorf("Drawn() = %d", p.Drawn())
	}
	if sim.Store().Dirty() != 0 {
		t.Error("dirty flags not cleared by Render")
	}
}
