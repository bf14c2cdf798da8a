package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/theme"
)

// bloom is the GPU post-processing chain: bright pass, downsample pyramid, additive upsample
type bloom struct {
	params theme.Bloom
	bright *ebiten.Image
	levels []*ebiten.Image
	w, h   int
}

func newBloom() *bloom {
	return &bloom{params: theme.Bloom{
		Strength:  parameter.BloomStrengthInitial,
		Radius:    parameter.BloomRadiusInitial,
		Threshold: parameter.BloomThresholdInitial,
	}}
}

// bloomLevels maps radius in [0,1] to a pyramid depth of at least one level
func bloomLevels(radius float64) int {
	radius = math.Max(0, math.Min(1, radius))
	return max(1, int(math.Round(radius*parameter.WindowBloomLevelsMax)))
}

// brightPass keeps the part of each channel above threshold, rescaled to [0,1]
func brightPass(threshold float64) colorm.ColorM {
	threshold = math.Max(0, math.Min(threshold, 0.999))
	var cm colorm.ColorM
	cm.Translate(-threshold, -threshold, -threshold, 0)
	k := 1 / (1 - threshold)
	cm.Scale(k, k, k, 1)
	return cm
}

// compositeScale is the per-level gain so total added light follows strength
func compositeScale(strength float64, levels int) float32 {
	if strength <= 0 || levels <= 0 {
		return 0
	}
	return float32(strength / float64(levels))
}

// resize drops the pyramid, it is rebuilt lazily at the next apply
func (b *bloom) resize(w, h int) {
	if w == b.w && h == b.h {
		return
	}
	b.dispose()
	b.w, b.h = w, h
}

func (b *bloom) dispose() {
	if b.bright != nil {
		b.bright.Deallocate()
		b.bright = nil
	}
	for _, l := range b.levels {
		l.Deallocate()
	}
	b.levels = nil
}

func (b *bloom) ensure() {
	if b.bright != nil || b.w <= 0 || b.h <= 0 {
		return
	}
	b.bright = ebiten.NewImage(b.w, b.h)
	w, h := b.w, b.h
	for i := 0; i < parameter.WindowBloomLevelsMax; i++ {
		w, h = max(w/2, 1), max(h/2, 1)
		b.levels = append(b.levels, ebiten.NewImage(w, h))
	}
}

// apply adds the glow of scene onto dst
func (b *bloom) apply(dst, scene *ebiten.Image) {
	if b.params.Strength <= 0 {
		return
	}
	b.ensure()
	if b.bright == nil {
		return
	}

	b.bright.Clear()
	cm := brightPass(b.params.Threshold)
	colorm.DrawImage(b.bright, scene, cm, &colorm.DrawImageOptions{})

	n := bloomLevels(b.params.Radius)
	src := b.bright
	for i := 0; i < n; i++ {
		lvl := b.levels[i]
		lvl.Clear()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(float64(lvl.Bounds().Dx())/float64(src.Bounds().Dx()),
			float64(lvl.Bounds().Dy())/float64(src.Bounds().Dy()))
		lvl.DrawImage(src, op)
		src = lvl
	}

	// Fold each level into the next larger one
	for i := n - 1; i > 0; i-- {
		small, large := b.levels[i], b.levels[i-1]
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: ebiten.BlendLighter}
		op.GeoM.Scale(float64(large.Bounds().Dx())/float64(small.Bounds().Dx()),
			float64(large.Bounds().Dy())/float64(small.Bounds().Dy()))
		large.DrawImage(small, op)
	}

	top := b.levels[0]
	k := compositeScale(b.params.Strength, n)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: ebiten.BlendLighter}
	op.GeoM.Scale(float64(dst.Bounds().Dx())/float64(top.Bounds().Dx()),
		float64(dst.Bounds().Dy())/float64(top.Bounds().Dy()))
	op.ColorScale.Scale(k, k, k, 1)
	dst.DrawImage(top, op)
}
