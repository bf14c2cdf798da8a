package render

import (
	"github.com/lixenwraith/heartglow/camera"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/theme"
)

// Pipeline owns the frame and runs points then bloom each frame
// It implements the theme controller's bloom sink
type Pipeline struct {
	frame  *FrameBuffer
	points *PointsRenderer
	bloom  *BloomPass
	drawn  int
}

// NewPipeline creates an empty pipeline, Resize before the first Render
func NewPipeline(pointBoost float32) *Pipeline {
	return &Pipeline{
		frame:  NewFrameBuffer(0, 0),
		points: NewPointsRenderer(pointBoost),
		bloom:  NewBloomPass(),
	}
}

// Resize sets the frame size in pixels
func (p *Pipeline) Resize(width, height int) {
	p.frame.Resize(width, height)
}

// Frame returns the last rendered frame
func (p *Pipeline) Frame() *FrameBuffer { return p.frame }

// SetBloom forwards to the bloom pass
func (p *Pipeline) SetBloom(b theme.Bloom) { p.bloom.SetBloom(b) }

// Bloom returns the active bloom parameters
func (p *Pipeline) Bloom() theme.Bloom { return p.bloom.Params() }

// Drawn returns the number of particles drawn in the last frame
func (p *Pipeline) Drawn() int { return p.drawn }

// Render draws the store through cam and applies bloom, then clears the store's dirty flags
func (p *Pipeline) Render(store *heart.Store, cam *camera.Camera) *FrameBuffer {
	p.frame.Clear()
	p.drawn = p.points.Draw(p.frame, store, cam)
	p.bloom.Apply(p.frame)
	store.ClearDirty()
	return p.frame
}
