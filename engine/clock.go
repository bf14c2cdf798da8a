package engine

import (
	"sync"
	"time"
)

// Clock provides wall time for frame statistics
// Simulation time is logical and never read from a Clock
type Clock interface {
	Now() time.Time
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock provides a controllable time source for testing
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockClock creates a mock clock at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{currentTime: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// frameStats measures achieved frame rate over fixed frame windows
type frameStats struct {
	clock       Clock
	windowStart time.Time
	frames      int
	total       uint64
}

func newFrameStats(c Clock) *frameStats {
	return &frameStats{clock: c, windowStart: c.Now()}
}

// tick counts a frame and returns the window's fps once every interval frames
func (s *frameStats) tick(interval int) (fps float64, done bool) {
	s.frames++
	s.total++
	if s.frames < interval {
		return 0, false
	}
	now := s.clock.Now()
	if elapsed := now.Sub(s.windowStart).Seconds(); elapsed > 0 {
		fps = float64(s.frames) / elapsed
	}
	s.frames = 0
	s.windowStart = now
	return fps, true
}
