package parameter

// Perspective camera
const (
	CameraFOVDegrees = 60.0
	CameraNear       = 0.1
	CameraFar        = 1500.0
	CameraDistance   = 100.0
)

// Orbit controls
const (
	// OrbitDistanceMin/Max clamp zoom
	OrbitDistanceMin = 30.0
	OrbitDistanceMax = 300.0

	// OrbitRotateSpeed scales input deltas in radians per step
	OrbitRotateSpeed = 0.3

	// OrbitKeyStep is the rotation delta of one arrow key press before speed scaling
	OrbitKeyStep = 0.35

	// OrbitDragStep is the rotation delta per dragged terminal cell before speed scaling
	OrbitDragStep = 0.1

	// OrbitWindowDragStep is the rotation delta per dragged window pixel before speed scaling
	OrbitWindowDragStep = 0.01

	// OrbitZoomFactor is the distance multiplier per zoom step
	OrbitZoomFactor = 1.1

	// OrbitPolarMargin keeps the polar angle away from the poles to avoid a degenerate up vector
	OrbitPolarMargin = 0.05

	// Spring tuning: low damping ratio would oscillate, 1.0 is critically damped
	OrbitSpringFrequency = 4.0
	OrbitSpringDamping   = 1.0
)

// TerminalPixelAspect is the height/width ratio of one half-block pixel in a typical terminal cell
const TerminalPixelAspect = 1.0
