package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/heartglow/parameter"
)

// Speaker plays through the platform audio device via beep's speaker
// Used by the window frontend, where no player process is expected on PATH
type Speaker struct {
	rate beep.SampleRate
	once sync.Once
	err  error
}

// NewSpeaker creates an uninitialized speaker sink
func NewSpeaker(sampleRate int) *Speaker {
	if sampleRate <= 0 {
		sampleRate = parameter.AudioSampleRate
	}
	return &Speaker{rate: beep.SampleRate(sampleRate)}
}

// Init opens the device once, later calls return the first result
func (s *Speaker) Init() error {
	s.once.Do(func() {
		s.err = speaker.Init(s.rate, s.rate.N(parameter.AudioBufferPeriod))
	})
	return s.err
}

// Play queues mono samples, a failed Init makes it a no-op
func (s *Speaker) Play(samples []float64, volume float64) {
	if s.Init() != nil || len(samples) == 0 {
		return
	}
	speaker.Play(newVolume(monoStreamer(samples), volume))
}

// monoStreamer duplicates mono samples into both channels
func monoStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copyMono(out, samples[pos:])
		pos += n
		return n, true
	})
}

func copyMono(out [][2]float64, in []float64) int {
	n := min(len(out), len(in))
	for i := 0; i < n; i++ {
		out[i][0] = in[i]
		out[i][1] = in[i]
	}
	return n
}
