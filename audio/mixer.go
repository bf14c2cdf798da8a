package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// ErrPipeClosed is sent on Errors when the player stops accepting data
var ErrPipeClosed = errors.New("audio pipe closed")

// bytesPerFrame is one interleaved stereo int16 frame
const bytesPerFrame = 4

// activeSound tracks a playing sound instance
type activeSound struct {
	buffer []float64
	pos    int
	volume float64
}

type playRequest struct {
	samples []float64
	volume  float64
}

// Mixer sums queued sounds and writes s16le stereo to output on a fixed period
type Mixer struct {
	output         io.Writer
	period         time.Duration
	samplesPerTick int

	playQueue chan playRequest
	stopChan  chan struct{}
	doneChan  chan struct{}
	started   atomic.Bool
	stopped   atomic.Bool

	// Accessed only by mix goroutine
	active []activeSound

	played  atomic.Uint64
	dropped atomic.Uint64

	errChan chan error
}

// NewMixer creates a mixer writing sampleRate*period frames per tick to out
func NewMixer(out io.Writer, sampleRate int, period time.Duration) *Mixer {
	return &Mixer{
		output:         out,
		period:         period,
		samplesPerTick: max(1, int(int64(sampleRate)*int64(period)/int64(time.Second))),
		playQueue:      make(chan playRequest, 8),
		stopChan:       make(chan struct{}),
		doneChan:       make(chan struct{}),
		active:         make([]activeSound, 0, 4),
		errChan:        make(chan error, 1),
	}
}

// Start begins the mixing loop
func (m *Mixer) Start() {
	if m.started.CompareAndSwap(false, true) {
		go m.loop()
	}
}

// Stop signals the mixer to halt and waits for the loop to exit
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
	if m.started.Load() {
		<-m.doneChan
	}
}

// Play queues samples, dropped when the queue is full
func (m *Mixer) Play(samples []float64, volume float64) {
	if m.stopped.Load() || len(samples) == 0 {
		return
	}
	select {
	case m.playQueue <- playRequest{samples: samples, volume: volume}:
	default:
		m.dropped.Add(1)
	}
}

// Errors returns channel for pipe errors
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

// Stats returns played and dropped counts
func (m *Mixer) Stats() (played, dropped uint64) {
	return m.played.Load(), m.dropped.Load()
}

func (m *Mixer) enqueue(req playRequest) {
	m.active = append(m.active, activeSound{buffer: req.samples, volume: req.volume})
	m.played.Add(1)
}

// loop is the main mixing goroutine
func (m *Mixer) loop() {
	defer close(m.doneChan)

	ticker := time.NewTicker(m.period)
	defer ticker.Stop()

	mixBuf := make([]float64, m.samplesPerTick)
	outBytes := make([]byte, m.samplesPerTick*bytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.enqueue(req)

		case <-ticker.C:
			clear(mixBuf)
			m.active = mixActive(m.active, mixBuf)
			floatToBytes(mixBuf, outBytes)

			// Silence is written too, keeping the player pipe alive
			if _, err := m.output.Write(outBytes); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

// mixActive adds each active sound into buf and returns the unfinished ones
func mixActive(active []activeSound, buf []float64) []activeSound {
	remaining := active[:0]
	for i := range active {
		s := &active[i]
		for j := 0; j < len(buf) && s.pos < len(s.buffer); j++ {
			buf[j] += s.buffer[s.pos] * s.volume
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}
	return remaining
}

// floatToBytes converts float64 mono to interleaved stereo int16 LE bytes
// Applies soft limiting above 0.8 before hard clip
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}
		v = max(-1, min(1, v))

		i16 := int16(v * 32767)
		idx := i * bytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16))
	}
}
