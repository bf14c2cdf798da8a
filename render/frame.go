package render

import "github.com/go-gl/mathgl/mgl32"

// FrameBuffer is a linear float RGB pixel grid accumulating additive light
type FrameBuffer struct {
	pix    []mgl32.Vec3
	width  int
	height int
}

// NewFrameBuffer creates a black frame of width x height pixels
func NewFrameBuffer(width, height int) *FrameBuffer {
	f := &FrameBuffer{}
	f.Resize(width, height)
	return f
}

// Resize adjusts dimensions and clears, reallocates only if capacity insufficient
func (f *FrameBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(f.pix) < size {
		f.pix = make([]mgl32.Vec3, size)
	} else {
		f.pix = f.pix[:size]
	}
	f.width, f.height = width, height
	f.Clear()
}

// Clear resets every pixel to black
func (f *FrameBuffer) Clear() {
	clear(f.pix)
}

// Width returns the frame width in pixels
func (f *FrameBuffer) Width() int { return f.width }

// Height returns the frame height in pixels
func (f *FrameBuffer) Height() int { return f.height }

// Pixels exposes the row-major backing slice
func (f *FrameBuffer) Pixels() []mgl32.Vec3 { return f.pix }

// At returns the pixel at (x, y), black when out of bounds
func (f *FrameBuffer) At(x, y int) mgl32.Vec3 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return mgl32.Vec3{}
	}
	return f.pix[y*f.width+x]
}

// Add accumulates c scaled by weight into (x, y), out of bounds is ignored
func (f *FrameBuffer) Add(x, y int, c mgl32.Vec3, weight float32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	p := &f.pix[y*f.width+x]
	p[0] += c[0] * weight
	p[1] += c[1] * weight
	p[2] += c[2] * weight
}
