package heart

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/heartglow/parameter"
)

// ErrInvalidCount is returned for a non-positive or oversized particle count
var ErrInvalidCount = errors.New("invalid particle count")

// Dirty flags mark buffers changed since the renderer last consumed them
type Dirty uint8

const (
	DirtyPosition Dirty = 1 << iota
	DirtyColor
	DirtySize

	DirtyAll = DirtyPosition | DirtyColor | DirtySize
)

// Store holds per-particle state as parallel slices indexed by particle
// home and offset are written once in NewStore, the rest every frame
type Store struct {
	home     []mgl32.Vec3
	offset   []mgl32.Vec3
	position []mgl32.Vec3
	color    []mgl32.Vec3 // linear RGB, each channel in [0,1]
	size     []float32

	dirty Dirty
}

// NewStore allocates count particles on the heart curve with fixed flight offsets
func NewStore(count int, rng *rand.Rand) (*Store, error) {
	if count <= 0 || count > parameter.ParticleCountMax {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCount, count, parameter.ParticleCountMax)
	}

	s := &Store{
		home:     make([]mgl32.Vec3, count),
		offset:   make([]mgl32.Vec3, count),
		position: make([]mgl32.Vec3, count),
		color:    make([]mgl32.Vec3, count),
		size:     make([]float32, count),
		dirty:    DirtyAll,
	}

	for i := 0; i < count; i++ {
		h := HeartPoint(rng, i, count)
		s.home[i] = h
		s.position[i] = h
		s.offset[i] = DisintegrationOffset(rng)
	}

	return s, nil
}

// Len returns the fixed particle count
func (s *Store) Len() int {
	return len(s.home)
}

func (s *Store) Home(i int) mgl32.Vec3     { return s.home[i] }
func (s *Store) Offset(i int) mgl32.Vec3   { return s.offset[i] }
func (s *Store) Position(i int) mgl32.Vec3 { return s.position[i] }
func (s *Store) Color(i int) mgl32.Vec3    { return s.color[i] }
func (s *Store) Size(i int) float32        { return s.size[i] }

// Positions exposes the position buffer for renderers, callers must not modify it
func (s *Store) Positions() []mgl32.Vec3 { return s.position }

// Colors exposes the color buffer for renderers, callers must not modify it
func (s *Store) Colors() []mgl32.Vec3 { return s.color }

// Sizes exposes the size buffer for renderers, callers must not modify it
func (s *Store) Sizes() []float32 { return s.size }

// Dirty returns buffers changed since the last ClearDirty
func (s *Store) Dirty() Dirty {
	return s.dirty
}

// ClearDirty is called by the renderer after uploading buffers
func (s *Store) ClearDirty() {
	s.dirty = 0
}

func (s *Store) markDirty(d Dirty) {
	s.dirty |= d
}
