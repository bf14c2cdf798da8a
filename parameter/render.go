package parameter

// Point sprite
const (
	// PointSize is the material base size multiplied by each particle's size attribute
	PointSize = 2.5

	// SpriteLUTSize is the resolution of the radial falloff table
	SpriteLUTSize = 256

	// SpriteRadius is the fraction of the sprite half-extent covered by the gradient
	SpriteRadius = 0.8

	// SpriteMaxPixels caps splat radius to bound per-particle cost when the camera is close
	SpriteMaxPixels = 24

	// SpriteMinAlpha drops splat pixels below this weight
	SpriteMinAlpha = 0.001
)

// TerminalPointBoost enlarges sprites on the coarse half-block grid so single particles stay visible
const TerminalPointBoost = 2.0

// Initial bloom parameters of the post-processing pipeline, replaced by the first theme
const (
	BloomStrengthInitial  = 1.5
	BloomRadiusInitial    = 0.4
	BloomThresholdInitial = 0.85

	// BloomKnee softens the bright-pass cutoff around the threshold
	BloomKnee = 0.1

	// BloomSpreadMax is the blur half-width in pixels at radius 1.0
	BloomSpreadMax = 8

	// BloomPasses is the number of box blur iterations approximating a gaussian
	BloomPasses = 3
)

// Window frontend
const (
	WindowWidthDefault  = 1280
	WindowHeightDefault = 800

	// WindowSpriteSize is the pixel size of the pre-rendered sprite image
	WindowSpriteSize = 64

	// WindowBloomLevelsMax is the deepest downsample level used at radius 1.0
	WindowBloomLevelsMax = 5
)
