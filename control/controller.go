// Package control applies user choices (theme, animation toggle) to the simulation
// and its collaborators.
package control

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/theme"
)

// BloomSink receives bloom parameters, applied on the next rendered frame
type BloomSink interface {
	SetBloom(theme.Bloom)
}

// Indicator reflects control state in a UI, exactly one theme is shown active
type Indicator interface {
	SetActive(key string)
	SetAnimation(enabled bool)
}

// Controller is the single writer of active theme and animation flag
type Controller struct {
	registry   *theme.Registry
	sim        *heart.Simulation
	sinks      []BloomSink
	indicators []Indicator
	active     string
	log        *zap.Logger
}

// New creates a controller for sim, the active theme is taken from sim
func New(registry *theme.Registry, sim *heart.Simulation, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		registry: registry,
		sim:      sim,
		log:      log,
	}
	if t := sim.Theme(); t != nil {
		c.active = t.Key
	}
	return c
}

// AttachBloom registers a bloom sink and pushes the active theme's parameters to it
func (c *Controller) AttachBloom(s BloomSink) {
	c.sinks = append(c.sinks, s)
	if t, ok := c.registry.Get(c.active); ok {
		s.SetBloom(t.Bloom)
	}
}

// AttachIndicator registers a UI indicator and syncs it to current state
func (c *Controller) AttachIndicator(i Indicator) {
	c.indicators = append(c.indicators, i)
	i.SetActive(c.active)
	i.SetAnimation(c.sim.AnimationEnabled())
}

// Active returns the active theme key
func (c *Controller) Active() string {
	return c.active
}

// SetTheme activates the theme registered under key
// Unknown keys are ignored and leave every collaborator untouched
func (c *Controller) SetTheme(key string) bool {
	t, ok := c.registry.Get(key)
	if !ok {
		c.log.Debug("ignoring unknown theme", zap.String("theme", key))
		return false
	}

	c.active = key
	c.sim.SetTheme(t)
	for _, s := range c.sinks {
		s.SetBloom(t.Bloom)
	}
	for _, i := range c.indicators {
		i.SetActive(key)
	}

	c.log.Debug("theme applied",
		zap.String("theme", key),
		zap.Float64("bloom_strength", t.Bloom.Strength),
		zap.Float64("bloom_radius", t.Bloom.Radius),
		zap.Float64("bloom_threshold", t.Bloom.Threshold),
	)
	return true
}

// SelectIndex activates the theme at position i in registry order
func (c *Controller) SelectIndex(i int) bool {
	t, ok := c.registry.At(i)
	if !ok {
		return false
	}
	return c.SetTheme(t.Key)
}

// NextTheme activates the theme after the active one and returns its key
func (c *Controller) NextTheme() string {
	next := c.registry.Next(c.active)
	c.SetTheme(next)
	return next
}

// SetAnimationEnabled sets the animation flag read by the next frame
func (c *Controller) SetAnimationEnabled(enabled bool) {
	c.sim.SetAnimationEnabled(enabled)
	for _, i := range c.indicators {
		i.SetAnimation(enabled)
	}
	c.log.Debug("animation toggled", zap.Bool("enabled", enabled))
}

// ToggleAnimation flips the animation flag and returns the new value
func (c *Controller) ToggleAnimation() bool {
	enabled := !c.sim.AnimationEnabled()
	c.SetAnimationEnabled(enabled)
	return enabled
}
