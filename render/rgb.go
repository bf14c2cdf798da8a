package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/heartglow/terminal"
)

// RGB is the 8-bit cell color shared with the terminal
type RGB = terminal.RGB

var (
	RGBBlack = RGB{}
	RGBWhite = RGB{R: 255, G: 255, B: 255}
)

// to8 rounds a [0,1] channel to 8 bits, saturating outside the range
func to8(v float64) uint8 {
	v = v*255 + 0.5
	switch {
	case v >= 255:
		return 255
	case v <= 0:
		return 0
	}
	return uint8(v)
}

// perChannel applies f to each channel pair, channels normalized to [0,1]
func perChannel(a, b RGB, f func(x, y float64) float64) RGB {
	return RGB{
		R: to8(f(float64(a.R)/255, float64(b.R)/255)),
		G: to8(f(float64(a.G)/255, float64(b.G)/255)),
		B: to8(f(float64(a.B)/255, float64(b.B)/255)),
	}
}

// FromVec converts a linear float color, out of range channels saturate
func FromVec(v mgl32.Vec3) RGB {
	return RGB{R: to8(float64(v[0])), G: to8(float64(v[1])), B: to8(float64(v[2]))}
}

// FromColor converts a palette color
func FromColor(c colorful.Color) RGB {
	return RGB{R: to8(c.R), G: to8(c.G), B: to8(c.B)}
}

// Blend mixes src over dst with opacity alpha
func Blend(dst, src RGB, alpha float64) RGB {
	switch {
	case alpha >= 1:
		return src
	case alpha <= 0:
		return dst
	}
	return perChannel(dst, src, func(d, s float64) float64 { return d + (s-d)*alpha })
}

// Lerp interpolates from a to b, t clamped to [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return Blend(a, b, t)
}

// Luminance is the Rec. 709 relative luminance of a linear color
func Luminance(v mgl32.Vec3) float32 {
	return 0.2126*v[0] + 0.7152*v[1] + 0.0722*v[2]
}
