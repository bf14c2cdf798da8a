package heart

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/theme"
	"github.com/lixenwraith/heartglow/vmath"
)

// ErrNoTheme is returned when a simulation is configured without a theme
var ErrNoTheme = errors.New("no theme configured")

// Config configures a Simulation
type Config struct {
	// ParticleCount is fixed for the simulation lifetime
	ParticleCount int

	// TimeStep is the logical time added per Advance
	TimeStep float64

	// Seed initializes the random source, 0 picks a time-based seed
	Seed int64

	// PulseTint enables the pulse hue blend on particle base colors
	PulseTint bool

	// Theme is the initially active theme
	Theme *theme.Theme
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		ParticleCount: parameter.ParticleCountDefault,
		TimeStep:      parameter.TimeStep,
		Theme:         theme.Molten,
	}
}

// Simulation is the complete mutable state of the visualization
// Not safe for concurrent use, all calls come from the frame loop
type Simulation struct {
	time      float64
	step      float64
	animate   bool
	pulseTint bool
	seed      int64

	theme *theme.Theme
	store *Store
	rng   *rand.Rand
}

// New validates cfg and builds the particle store
func New(cfg Config) (*Simulation, error) {
	if cfg.Theme == nil {
		return nil, ErrNoTheme
	}
	if cfg.TimeStep <= 0 || math.IsNaN(cfg.TimeStep) || math.IsInf(cfg.TimeStep, 0) {
		cfg.TimeStep = parameter.TimeStep
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store, err := NewStore(cfg.ParticleCount, rng)
	if err != nil {
		return nil, fmt.Errorf("heart: %w", err)
	}

	s := &Simulation{
		step:      cfg.TimeStep,
		animate:   true,
		pulseTint: cfg.PulseTint,
		seed:      seed,
		theme:     cfg.Theme,
		store:     store,
		rng:       rng,
	}
	s.seedAttributes()
	return s, nil
}

// seedAttributes fills initial colors and sizes at time zero, no flicker or dimming
func (s *Simulation) seedAttributes() {
	st := s.store
	n := st.Len()
	for i := 0; i < n; i++ {
		c, size := Attributes(s.rng, i, n, s.time, s.theme, s.pulseTint)
		st.color[i] = clampColor(c, 1)
		st.size[i] = size
	}
	st.markDirty(DirtyColor | DirtySize)
}

// Time returns current logical time
func (s *Simulation) Time() float64 { return s.time }

// Seed returns the seed of the random source
func (s *Simulation) Seed() int64 { return s.seed }

// Store returns the particle store
func (s *Simulation) Store() *Store { return s.store }

// Theme returns the active theme
func (s *Simulation) Theme() *theme.Theme { return s.theme }

// SetTheme swaps the active theme, takes effect on the next Update
func (s *Simulation) SetTheme(t *theme.Theme) {
	if t == nil {
		return
	}
	s.theme = t
}

// AnimationEnabled reports whether Update mutates the store
func (s *Simulation) AnimationEnabled() bool { return s.animate }

// SetAnimationEnabled toggles the update step, time keeps advancing
func (s *Simulation) SetAnimationEnabled(enabled bool) { s.animate = enabled }

// PulseTint reports whether the pulse tint is applied
func (s *Simulation) PulseTint() bool { return s.pulseTint }

// SetPulseTint enables or disables the pulse tint
func (s *Simulation) SetPulseTint(enabled bool) { s.pulseTint = enabled }

// Pulse returns the current global breathing scale
func (s *Simulation) Pulse() float64 { return Pulse(s.time) }

// Advance moves time forward one fixed step and runs Update
func (s *Simulation) Advance() {
	s.time += s.step
	s.Update()
}

// Update recomputes position, color and size for every particle at the current time
// No-op when animation is disabled
func (s *Simulation) Update() {
	if s == nil || s.store == nil || !s.animate {
		return
	}

	st := s.store
	n := st.Len()
	t := s.time
	pulse := Pulse(t)

	for i := 0; i < n; i++ {
		amount := EasedDisintegration(CycleProgress(t, i, n))

		target := Target(st.home[i], st.offset[i], pulse, amount)
		st.position[i] = Follow(st.position[i], target)

		base, size := Attributes(s.rng, i, n, t, s.theme, s.pulseTint)
		st.color[i] = clampColor(base, Brightness(t, i, amount))
		st.size[i] = size * float32(1+math.Sin(t*parameter.SizePulseSpeed+float64(i))*parameter.SizePulseAmp)
	}

	st.markDirty(DirtyAll)
}

// Target is the point a particle glides toward: pulsed home plus scaled flight offset
func Target(home, offset mgl32.Vec3, pulse, amount float64) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(float64(home[0])*pulse + float64(offset[0])*amount),
		float32(float64(home[1])*pulse + float64(offset[1])*amount),
		float32(float64(home[2])*pulse + float64(offset[2])*amount),
	}
}

// Follow moves pos a fixed fraction of the way to target
func Follow(pos, target mgl32.Vec3) mgl32.Vec3 {
	k := float32(parameter.FollowFactor)
	return mgl32.Vec3{
		pos[0] + (target[0]-pos[0])*k,
		pos[1] + (target[1]-pos[1])*k,
		pos[2] + (target[2]-pos[2])*k,
	}
}

// Brightness is the flicker factor, dimmed as the particle disintegrates
func Brightness(time float64, index int, amount float64) float64 {
	flicker := parameter.FlickerBase + math.Sin(time*parameter.FlickerSpeed+float64(index)*parameter.FlickerPhase)*parameter.FlickerAmp
	return flicker * (1 - amount*parameter.DisintegrationDim)
}

func clampColor(c colorful.Color, k float64) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(vmath.Clamp01(c.R * k)),
		float32(vmath.Clamp01(c.G * k)),
		float32(vmath.Clamp01(c.B * k)),
	}
}
