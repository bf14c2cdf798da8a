package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/theme"
	"github.com/lixenwraith/heartglow/vmath"
)

// BloomPass adds a blurred copy of the frame's bright regions back onto it
type BloomPass struct {
	params theme.Bloom
	bright []mgl32.Vec3
	tmp    []mgl32.Vec3
}

// NewBloomPass creates a pass with the pipeline's initial parameters
func NewBloomPass() *BloomPass {
	return &BloomPass{params: theme.Bloom{
		Strength:  parameter.BloomStrengthInitial,
		Radius:    parameter.BloomRadiusInitial,
		Threshold: parameter.BloomThresholdInitial,
	}}
}

// SetBloom replaces strength, radius, and threshold
func (b *BloomPass) SetBloom(p theme.Bloom) {
	b.params = p
}

// Params returns the active parameters
func (b *BloomPass) Params() theme.Bloom {
	return b.params
}

// Spread returns the box blur half-width in pixels for the current radius
func (b *BloomPass) Spread() int {
	return max(1, int(math.Round(vmath.Clamp01(b.params.Radius)*parameter.BloomSpreadMax)))
}

// Apply runs bright pass, blur, and additive composite in place
func (b *BloomPass) Apply(fb *FrameBuffer) {
	if b.params.Strength <= 0 || len(fb.pix) == 0 {
		return
	}
	n := len(fb.pix)
	if cap(b.bright) < n {
		b.bright = make([]mgl32.Vec3, n)
		b.tmp = make([]mgl32.Vec3, n)
	}
	b.bright, b.tmp = b.bright[:n], b.tmp[:n]

	th := b.params.Threshold
	for i, c := range fb.pix {
		lum := float64(Luminance(c))
		k := float32(vmath.Smoothstep(vmath.Clamp01((lum - th) / parameter.BloomKnee)))
		b.bright[i] = c.Mul(k)
	}

	r := b.Spread()
	for pass := 0; pass < parameter.BloomPasses; pass++ {
		boxBlur(b.tmp, b.bright, fb.width, fb.height, r, 1, fb.width)
		boxBlur(b.bright, b.tmp, fb.height, fb.width, r, fb.width, 1)
	}

	s := float32(b.params.Strength)
	for i := range fb.pix {
		fb.pix[i] = fb.pix[i].Add(b.bright[i].Mul(s))
	}
}

// boxBlur averages a 2r+1 window along lines of length n
// step is the stride between samples on a line, lineStride between line starts
// Samples outside the frame count as black
func boxBlur(dst, src []mgl32.Vec3, n, lines, r, step, lineStride int) {
	norm := 1 / float32(2*r+1)
	for line := 0; line < lines; line++ {
		base := line * lineStride
		var sum mgl32.Vec3
		for i := 0; i <= min(r, n-1); i++ {
			sum = sum.Add(src[base+i*step])
		}
		for i := 0; i < n; i++ {
			dst[base+i*step] = sum.Mul(norm)
			if in := i + r + 1; in < n {
				sum = sum.Add(src[base+in*step])
			}
			if out := i - r; out >= 0 {
				sum = sum.Sub(src[base+out*step])
			}
		}
	}
}
