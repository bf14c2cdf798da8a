// Package camera provides a perspective camera with damped orbit controls.
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/vmath"
)

// axis is one spring-driven orbit coordinate
type axis struct {
	pos, vel, target float64
}

func (a *axis) step(s *harmonica.Spring) {
	a.pos, a.vel = s.Update(a.pos, a.vel, a.target)
}

// Camera orbits the origin, looking at it from a distance
// Orbit inputs set targets, Update glides toward them
type Camera struct {
	fovY, near, far float32

	width, height int
	pixelAspect   float64

	azimuth  axis // around +Y, 0 looks down -Z
	polar    axis // from +Y, π/2 is the equator
	distance axis

	spring harmonica.Spring

	viewProj mgl32.Mat4
	dirty    bool
}

// New creates a camera stepping its springs fps times per second
func New(fps int) *Camera {
	if fps <= 0 {
		fps = parameter.FPSDefault
	}
	c := &Camera{
		fovY:        mgl32.DegToRad(parameter.CameraFOVDegrees),
		near:        parameter.CameraNear,
		far:         parameter.CameraFar,
		width:       1,
		height:      1,
		pixelAspect: 1,
		polar:       axis{pos: math.Pi / 2, target: math.Pi / 2},
		distance:    axis{pos: parameter.CameraDistance, target: parameter.CameraDistance},
		spring:      harmonica.NewSpring(harmonica.FPS(fps), parameter.OrbitSpringFrequency, parameter.OrbitSpringDamping),
		dirty:       true,
	}
	return c
}

// SetViewport updates the render target size in pixels
// pixelAspect is pixel height over pixel width, 1 for square pixels
func (c *Camera) SetViewport(width, height int, pixelAspect float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if pixelAspect <= 0 {
		pixelAspect = 1
	}
	c.width, c.height, c.pixelAspect = width, height, pixelAspect
	c.dirty = true
}

// Viewport returns the render target size in pixels
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// Aspect is the physical width/height ratio of the viewport
func (c *Camera) Aspect() float64 {
	return float64(c.width) / (float64(c.height) * c.pixelAspect)
}

// Rotate moves the orbit target by input deltas, scaled by the rotate speed
func (c *Camera) Rotate(dAzimuth, dPolar float64) {
	c.azimuth.target += dAzimuth * parameter.OrbitRotateSpeed
	c.polar.target = vmath.Clamp(c.polar.target+dPolar*parameter.OrbitRotateSpeed,
		parameter.OrbitPolarMargin, math.Pi-parameter.OrbitPolarMargin)
}

// Zoom multiplies the target distance, factor < 1 moves closer
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.distance.target = vmath.Clamp(c.distance.target*factor, parameter.OrbitDistanceMin, parameter.OrbitDistanceMax)
}

// Distance returns the current eye distance from the origin
func (c *Camera) Distance() float64 {
	return c.distance.pos
}

// TargetDistance returns the distance the camera is gliding toward
func (c *Camera) TargetDistance() float64 {
	return c.distance.target
}

// Update advances orbit damping by one frame
func (c *Camera) Update() {
	for _, a := range []*axis{&c.azimuth, &c.polar, &c.distance} {
		if a.pos == a.target && a.vel == 0 {
			continue
		}
		a.step(&c.spring)
		c.dirty = true
	}
}

// Eye returns the camera position
func (c *Camera) Eye() mgl32.Vec3 {
	sp, cp := math.Sincos(c.polar.pos)
	sa, ca := math.Sincos(c.azimuth.pos)
	d := c.distance.pos
	return mgl32.Vec3{float32(d * sp * sa), float32(d * cp), float32(d * sp * ca)}
}

func (c *Camera) matrix() mgl32.Mat4 {
	if c.dirty {
		proj := mgl32.Perspective(c.fovY, float32(c.Aspect()), c.near, c.far)
		view := mgl32.LookAtV(c.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		c.viewProj = proj.Mul4(view)
		c.dirty = false
	}
	return c.viewProj
}

// Project maps a world point to viewport pixels
// depth is the view-space distance, ok is false for points outside the frustum depth range
func (c *Camera) Project(p mgl32.Vec3) (x, y, depth float32, ok bool) {
	clip := c.matrix().Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= c.near {
		return 0, 0, 0, false
	}
	nz := clip.Z() / w
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	x = (clip.X()/w + 1) * 0.5 * float32(c.width)
	y = (1 - clip.Y()/w) * 0.5 * float32(c.height)
	return x, y, w, true
}

// PointScale converts a point size to pixels at depth, matching size attenuation
// of GPU point sprites: half the viewport height over the view distance
func (c *Camera) PointScale(depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return float32(c.height) * 0.5 / depth
}
