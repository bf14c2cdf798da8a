package window

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/heartglow/render"
)

// spritePixels rasterizes the glow profile into a size x size premultiplied white image
// Tinting happens per draw through the color scale
func spritePixels(size int, sprite *render.Sprite) *image.RGBA {
	size = max(size, 2)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) * 0.5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			a := sprite.At(float32(math.Sqrt(dx*dx + dy*dy)))
			v := uint8(math.Round(float64(a) * 255))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return img
}
