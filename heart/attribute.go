package heart

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/theme"
	"github.com/lixenwraith/heartglow/vmath"
)

var pulseTint = mustHex(parameter.PulseTintHex)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// PaletteProgress returns the sweep position along a palette of n colors, in [0, n)
// The position varies along the curve and drifts slowly with time
func PaletteProgress(index, total int, time float64, n int) float64 {
	t := float64(index) / float64(total)
	ln := float64(n)
	return vmath.Mod(t*ln*parameter.PaletteSweepDensity+time*parameter.PaletteDriftSpeed, ln)
}

// SamplePalette linearly interpolates between the two palette entries bracketing progress
// Integral progress returns the entry unblended
func SamplePalette(colors []colorful.Color, progress float64) colorful.Color {
	n := len(colors)
	fi := math.Floor(progress)
	i1 := ((int(fi) % n) + n) % n
	blend := progress - fi
	if blend == 0 {
		return colors[i1]
	}
	i2 := (i1 + 1) % n
	return colors[i1].BlendRgb(colors[i2], blend)
}

// Attributes returns a particle's base color and size for time under th
// Brightness and size are drawn fresh from rng on every call
// With tint set, the base color is pulled toward the pulse hue before brightness applies
func Attributes(rng *rand.Rand, index, total int, time float64, th *theme.Theme, tint bool) (colorful.Color, float32) {
	base := SamplePalette(th.Colors, PaletteProgress(index, total, time, th.Len()))
	if tint {
		base = base.BlendRgb(pulseTint, PulseMix(time)*parameter.PulseTintWeight)
	}

	brightness := parameter.BrightnessMin + rng.Float64()*parameter.BrightnessRange
	color := scaleColor(base, brightness)
	size := parameter.SizeMin + rng.Float64()*parameter.SizeRange

	return color, float32(size)
}

func scaleColor(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}
