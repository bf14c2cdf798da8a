package vmath

import "math"

// Lerp linearly interpolates from a to b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Smoothstep eases t in [0,1] with zero slope at both ends: t²(3-2t)
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Mod returns the remainder of x/y with the sign of y, result in [0, y) for y > 0
// math.Mod keeps the sign of x which breaks phase wrapping for negative inputs
func Mod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// Fract returns the fractional part of x in [0, 1)
func Fract(x float64) float64 {
	return x - math.Floor(x)
}
