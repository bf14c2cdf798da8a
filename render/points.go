package render

import (
	"math"

	"github.com/lixenwraith/heartglow/camera"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/parameter"
)

// PointsRenderer splats every particle as an additive sprite
type PointsRenderer struct {
	sprite *Sprite
	size   float32 // base point size times display boost
}

// NewPointsRenderer creates a renderer, boost enlarges sprites on coarse displays
func NewPointsRenderer(boost float32) *PointsRenderer {
	if boost <= 0 {
		boost = 1
	}
	return &PointsRenderer{
		sprite: NewSprite(parameter.SpriteLUTSize),
		size:   parameter.PointSize * boost,
	}
}

// Draw accumulates all visible particles into fb and returns how many were drawn
// The camera viewport must match fb dimensions
func (r *PointsRenderer) Draw(fb *FrameBuffer, store *heart.Store, cam *camera.Camera) int {
	positions := store.Positions()
	colors := store.Colors()
	sizes := store.Sizes()

	drawn := 0
	for i, p := range positions {
		x, y, depth, ok := cam.Project(p)
		if !ok {
			continue
		}
		diameter := sizes[i] * r.size * cam.PointScale(depth)
		if diameter <= 0 {
			continue
		}
		half := diameter * 0.5

		// Sub-pixel point: deposit its total light in one pixel
		if half < 0.5 {
			if x < 0 || y < 0 {
				continue
			}
			fb.Add(int(x), int(y), colors[i], r.sprite.Energy()*diameter*diameter)
			drawn++
			continue
		}

		half = min(half, parameter.SpriteMaxPixels)
		inv := 1 / half
		minX := int(math.Floor(float64(x - half)))
		maxX := int(math.Ceil(float64(x + half)))
		minY := int(math.Floor(float64(y - half)))
		maxY := int(math.Ceil(float64(y + half)))
		if maxX < 0 || maxY < 0 || minX >= fb.Width() || minY >= fb.Height() {
			continue
		}

		for py := max(minY, 0); py <= min(maxY, fb.Height()-1); py++ {
			dy := (float32(py) + 0.5 - y) * inv
			for px := max(minX, 0); px <= min(maxX, fb.Width()-1); px++ {
				dx := (float32(px) + 0.5 - x) * inv
				a := r.sprite.At(float32(math.Sqrt(float64(dx*dx + dy*dy))))
				if a < parameter.SpriteMinAlpha {
					continue
				}
				fb.Add(px, py, colors[i], a)
			}
		}
		drawn++
	}
	return drawn
}
