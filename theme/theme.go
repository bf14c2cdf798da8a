// Package theme holds the named color palettes and bloom settings of the visualization.
package theme

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrEmptyKey     = errors.New("theme key is empty")
	ErrEmptyPalette = errors.New("theme palette is empty")
	ErrDuplicateKey = errors.New("duplicate theme key")
	ErrUnknownTheme = errors.New("unknown theme")
)

// Bloom holds post-processing glow parameters
// Strength is in [0,∞), Radius and Threshold in [0,1]
type Bloom struct {
	Strength  float64
	Radius    float64
	Threshold float64
}

// Theme is an immutable palette with its bloom parameters
type Theme struct {
	Key    string
	Name   string
	Colors []colorful.Color
	Bloom  Bloom
}

// Len returns the palette length
func (t *Theme) Len() int {
	return len(t.Colors)
}

// Color returns palette entry i wrapped to the palette length
func (t *Theme) Color(i int) colorful.Color {
	n := len(t.Colors)
	return t.Colors[((i%n)+n)%n]
}

// New builds a theme from hex color strings
func New(key, name string, bloom Bloom, hexes ...string) (*Theme, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if len(hexes) == 0 {
		return nil, fmt.Errorf("theme %q: %w", key, ErrEmptyPalette)
	}
	colors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("theme %q color %d: %w", key, i, err)
		}
		colors[i] = c
	}
	return &Theme{Key: key, Name: name, Colors: colors, Bloom: bloom}, nil
}

// MustNew is New for static tables, panics on invalid input
func MustNew(key, name string, bloom Bloom, hexes ...string) *Theme {
	t, err := New(key, name, bloom, hexes...)
	if err != nil {
		panic(err)
	}
	return t
}
