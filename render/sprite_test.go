package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/heartglow/parameter"
)

func TestSpriteProfile(t *testing.T) {
	s := NewSprite(parameter.SpriteLUTSize)

	if got := s.At(0); got != 1 {
		t.Errorf("center alpha = %v, want 1", got)
	}
	if got := s.At(parameter.SpriteRadius); got != 0 {
		t.Errorf("alpha at gradient edge = %v, want 0", got)
	}
	if got := s.At(1); got != 0 {
		t.Errorf("alpha at corner = %v", got)
	}
	if got := s.At(0.2 * parameter.SpriteRadius); math.Abs(float64(got)-0.8) > 0.01 {
		t.Errorf("alpha at first stop = %v, want 0.8", got)
	}
	if got := s.At(0.5 * parameter.SpriteRadius); math.Abs(float64(got)-0.3) > 0.01 {
		t.Errorf("alpha at second stop = %v, want 0.3", got)
	}

	prev := float32(2)
	for d := float32(0); d < 1; d += 0.01 {
		a := s.At(d)
		if a > prev {
			t.Fatalf("alpha rises at %v: %v > %v", d, a, prev)
		}
		prev = a
	}

	if e := s.Energy(); e <= 0 || e >= 0.5 {
		t.Errorf("Energy() = %v, want small positive", e)
	}
}

func TestGradientAt(t *testing.T) {
	tests := []struct{ t, want float32 }{
		{-1, 1},
		{0.1, 0.9},
		{0.35, 0.55},
		{0.75, 0.15},
		{1.5, 0},
	}
	for _, tt := range tests {
		if got := gradientAt(tt.t); math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("gradientAt(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
