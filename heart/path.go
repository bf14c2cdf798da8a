package heart

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/heartglow/parameter"
)

// CurveParam maps a particle index to the curve parameter t in [0, 2π)
func CurveParam(index, total int) float64 {
	return float64(index) / float64(total) * 2 * math.Pi
}

// CurvePoint returns the unjittered heart curve point for index out of total
// total must be positive
func CurvePoint(index, total int) mgl64.Vec3 {
	t := CurveParam(index, total)
	s := math.Sin(t)
	x := 16 * s * s * s
	y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
	z := math.Sin(4*t) * parameter.HeartDepth
	return mgl64.Vec3{x * parameter.HeartScale, y * parameter.HeartScale, z}
}

// HeartPoint returns the curve point with independent uniform jitter per axis
// Not idempotent: each call draws three values from rng
func HeartPoint(rng *rand.Rand, index, total int) mgl32.Vec3 {
	p := CurvePoint(index, total)
	return mgl32.Vec3{
		float32(p[0] + (rng.Float64()-0.5)*parameter.HeartJitter),
		float32(p[1] + (rng.Float64()-0.5)*parameter.HeartJitter),
		float32(p[2] + (rng.Float64()-0.5)*parameter.HeartJitterZ),
	}
}

// DisintegrationOffset returns a random flight vector for one particle
// Direction is uniform on the sphere, magnitude in [25, 60], depth flattened
func DisintegrationOffset(rng *rand.Rand) mgl32.Vec3 {
	strength := parameter.OffsetStrengthMin + rng.Float64()*parameter.OffsetStrengthRange
	phi := rng.Float64() * 2 * math.Pi
	theta := math.Acos(2*rng.Float64() - 1)

	sinTheta := math.Sin(theta)
	return mgl32.Vec3{
		float32(sinTheta * math.Cos(phi) * strength),
		float32(sinTheta * math.Sin(phi) * strength),
		float32(math.Cos(theta) * strength * parameter.OffsetDepthFactor),
	}
}
