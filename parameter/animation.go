package parameter

// Frame clock
const (
	// TimeStep is the logical time advanced per rendered frame (not wall clock)
	TimeStep = 0.02

	// FPSDefault is the frame rate of the terminal frontend ticker
	FPSDefault = 60
)

// Heart pulse (global breathing scale)
const (
	PulseSpeed    = 1.8
	PulseStrength = 0.08
)

// Disintegration cycle
const (
	// CycleLength is the cycle period in time units
	CycleLength = 12.0

	// CycleSpeed scales logical time before it enters the cycle
	CycleSpeed = 0.8

	// CycleSpread is the fraction of a cycle the phase offset spans across all particles
	CycleSpread = 0.5

	// Phase boundaries as fractions of a cycle
	CycleBreakStart  = 0.5 // rest ends, particles start flying out
	CycleHoldStart   = 0.7 // fully dispersed
	CycleReturnStart = 0.8 // flying back
	CycleRampWidth   = 0.2 // width of break and return ramps
)

// Position smoothing
const (
	// FollowFactor is the fraction of the remaining distance covered per frame
	FollowFactor = 0.06
)

// Color and size animation
const (
	// PaletteSweepDensity is how many full palette passes fit along the curve, per palette entry
	PaletteSweepDensity = 1.5

	// PaletteDriftSpeed is palette entries per time unit
	PaletteDriftSpeed = 0.05

	// Per-call shimmer ranges
	BrightnessMin   = 0.7
	BrightnessRange = 0.4
	SizeMin         = 0.5
	SizeRange       = 0.7

	// Flicker: (FlickerBase + sin(time*FlickerSpeed + i*FlickerPhase) * FlickerAmp)
	FlickerBase  = 0.7
	FlickerAmp   = 0.3
	FlickerSpeed = 2.0
	FlickerPhase = 0.1

	// DisintegrationDim is the brightness lost at full disintegration
	DisintegrationDim = 0.5

	// Size pulsation: size * (1 + sin(time*SizePulseSpeed + i) * SizePulseAmp)
	SizePulseSpeed = 3.0
	SizePulseAmp   = 0.2

	// Pulse tint toward a red-pink hue, latent unless enabled
	PulseTintHex    = "#ff3344"
	PulseTintWeight = 0.3
)

// StatsLogInterval is the number of frames between debug frame statistics
const StatsLogInterval = 600
