package render

import (
	"math"

	"github.com/lixenwraith/heartglow/parameter"
)

// gradientStop is one radial falloff control point, offset in [0,1] of the gradient radius
type gradientStop struct {
	offset, alpha float32
}

// glowStops is the soft-glow profile: hot core, quick shoulder, long faint tail
var glowStops = []gradientStop{
	{0.0, 1.0},
	{0.2, 0.8},
	{0.5, 0.3},
	{1.0, 0.0},
}

// Sprite is a radial alpha lookup table for one point sprite
// Distances are normalized to the sprite half-extent, the gradient covers SpriteRadius of it
type Sprite struct {
	lut    []float32
	radius float32
	energy float32
}

// NewSprite samples the glow profile into a table of size entries
func NewSprite(size int) *Sprite {
	if size < 2 {
		size = 2
	}
	s := &Sprite{lut: make([]float32, size), radius: parameter.SpriteRadius}
	for i := range s.lut {
		s.lut[i] = gradientAt(float32(i) / float32(size-1))
	}

	// Mean alpha over the unit square, used for sub-pixel points
	const n = 32
	var sum float32
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx := (float32(x)+0.5)/n*2 - 1
			dy := (float32(y)+0.5)/n*2 - 1
			sum += s.At(float32(math.Sqrt(float64(dx*dx + dy*dy))))
		}
	}
	s.energy = sum / (n * n)
	return s
}

// gradientAt interpolates the stops at offset t in [0,1]
func gradientAt(t float32) float32 {
	if t <= 0 {
		return glowStops[0].alpha
	}
	for i := 1; i < len(glowStops); i++ {
		a, b := glowStops[i-1], glowStops[i]
		if t <= b.offset {
			k := (t - a.offset) / (b.offset - a.offset)
			return a.alpha + (b.alpha-a.alpha)*k
		}
	}
	return 0
}

// At returns the alpha at normalized distance d from the sprite center
func (s *Sprite) At(d float32) float32 {
	if d < 0 {
		d = -d
	}
	t := d / s.radius
	if t >= 1 {
		return 0
	}
	return s.lut[int(t*float32(len(s.lut)-1)+0.5)]
}

// Energy returns the mean alpha over the sprite square
func (s *Sprite) Energy() float32 {
	return s.energy
}
