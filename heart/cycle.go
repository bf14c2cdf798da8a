package heart

import (
	"math"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/vmath"
)

// Pulse returns the global breathing scale at time
func Pulse(time float64) float64 {
	return 1 + math.Sin(time*parameter.PulseSpeed)*parameter.PulseStrength
}

// PulseMix maps the pulse wave to [0, 1]
func PulseMix(time float64) float64 {
	return (math.Sin(time*parameter.PulseSpeed) + 1) * 0.5
}

// CycleOffset is the per-particle phase shift, spreading particles over half a cycle
func CycleOffset(index, total int) float64 {
	return float64(index) / float64(total) * parameter.CycleLength * parameter.CycleSpread
}

// CycleProgress returns the particle's position in its disintegration cycle, in [0, 1)
func CycleProgress(time float64, index, total int) float64 {
	p := vmath.Mod(time*parameter.CycleSpeed+CycleOffset(index, total), parameter.CycleLength) / parameter.CycleLength
	// Mod can land on the period itself after float rounding of a tiny negative remainder
	if p >= 1 {
		p = 0
	}
	return p
}

// DisintegrationAmount maps cycle progress to a raw displacement weight in [0, 1]
//
//	[0, 0.5)   rest       0
//	[0.5, 0.7) break      0 -> 1
//	[0.7, 0.8) hold       1
//	[0.8, 1)   return     1 -> 0
func DisintegrationAmount(progress float64) float64 {
	switch {
	case progress < parameter.CycleBreakStart:
		return 0
	case progress < parameter.CycleHoldStart:
		return (progress - parameter.CycleBreakStart) / parameter.CycleRampWidth
	case progress < parameter.CycleReturnStart:
		return 1
	case progress < 1:
		return 1 - (progress-parameter.CycleReturnStart)/parameter.CycleRampWidth
	default:
		return 0
	}
}

// EasedDisintegration applies smoothstep to the raw amount
func EasedDisintegration(progress float64) float64 {
	return vmath.Smoothstep(vmath.Clamp01(DisintegrationAmount(progress)))
}
