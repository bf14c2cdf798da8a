package parameter

// Heart curve geometry
const (
	// HeartScale multiplies the planar heart curve (x in [-16,16], y in [-17,12])
	HeartScale = 2.2

	// HeartDepth is the amplitude of the sin(4t) depth wave giving the curve volume
	HeartDepth = 2.0

	// HeartJitter is the full width of the uniform x/y jitter, centered (±HeartJitter/2)
	HeartJitter = 0.2

	// HeartJitterZ is the full width of the z jitter, half of the planar strength
	HeartJitterZ = HeartJitter * 0.5
)

// Particle system sizing
const (
	// ParticleCountDefault is the particle count used when none is configured
	ParticleCountDefault = 1000

	// ParticleCountMax caps configured counts, the update loop is O(n) per frame
	ParticleCountMax = 200000
)

// Disintegration offsets, fixed per particle at startup
const (
	// OffsetStrengthMin is the minimum flight distance of a disintegrating particle
	OffsetStrengthMin = 25.0

	// OffsetStrengthRange is added to OffsetStrengthMin scaled by a uniform random value
	OffsetStrengthRange = 35.0

	// OffsetDepthFactor flattens the z component so particles stay near the heart plane
	OffsetDepthFactor = 0.5
)
