package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/heartglow/parameter"
)

// Sink plays mono unity-gain samples at a volume
type Sink interface {
	Play(samples []float64, volume float64)
}

// sine returns a finite sine tone, frequencies at or above Nyquist yield silence
func sine(freq float64, length time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(length)
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return beep.Take(n, tone)
}

// thump is one heart sound: a low sine with a quieter overtone, enveloped
func thump(freq, vol float64, rate beep.SampleRate) beep.Streamer {
	length := parameter.HeartbeatThumpLength
	fund := newEnvelope(sine(freq, length, rate), length,
		parameter.HeartbeatAttack, parameter.HeartbeatRelease, rate)
	over := newEnvelope(sine(freq*parameter.HeartbeatOvertone, length, rate), length,
		parameter.HeartbeatAttack, parameter.HeartbeatRelease/2, rate)
	return newVolume(beep.Mix(fund, newVolume(over, parameter.HeartbeatOvertoneVolume)), vol)
}

// renderStream reads exactly n mono samples from s, zero padded if s drains early
func renderStream(s beep.Streamer, n int) []float64 {
	out := make([]float64, 0, n)
	var buf [512][2]float64
	for len(out) < n {
		k, ok := s.Stream(buf[:min(len(buf), n-len(out))])
		for i := 0; i < k; i++ {
			out = append(out, buf[i][0])
		}
		if !ok || k == 0 {
			break
		}
	}
	return out[:n]
}

// HeartbeatSound renders one lub-dub at sampleRate as mono samples
func HeartbeatSound(sampleRate int) []float64 {
	rate := beep.SampleRate(sampleRate)
	thumpN := rate.N(parameter.HeartbeatThumpLength)
	gapN := rate.N(parameter.HeartbeatGap)

	seq := beep.Seq(
		beep.Take(thumpN, thump(parameter.HeartbeatLubFreq, parameter.HeartbeatLubVolume, rate)),
		beep.Silence(gapN),
		beep.Take(thumpN, thump(parameter.HeartbeatDubFreq, parameter.HeartbeatDubVolume, rate)),
	)
	return renderStream(newVolume(seq, parameter.HeartbeatMasterVolume), 2*thumpN+gapN)
}

// Heartbeat plays the lub-dub once per pulse peak
type Heartbeat struct {
	sink     Sink
	sound    []float64
	muted    bool
	lastPeak int64
	beats    int
}

// NewHeartbeat creates a heartbeat playing into sink, nil sink makes it silent
func NewHeartbeat(sink Sink, sampleRate int) *Heartbeat {
	return &Heartbeat{
		sink:     sink,
		sound:    HeartbeatSound(sampleRate),
		lastPeak: peakIndex(0),
	}
}

// peakIndex counts pulse maxima (pulse phase π/2 + 2πk) reached by time t
func peakIndex(t float64) int64 {
	return int64(math.Floor((t*parameter.PulseSpeed - math.Pi/2) / (2 * math.Pi)))
}

// Observe is called each frame with logical time and returns true when a new peak was crossed
// Several peaks crossed in one call play a single beat
func (h *Heartbeat) Observe(t float64) bool {
	k := peakIndex(t)
	if k <= h.lastPeak {
		return false
	}
	h.lastPeak = k
	h.beats++
	if !h.muted && h.sink != nil {
		h.sink.Play(h.sound, 1)
	}
	return true
}

// Beats returns the number of peaks observed
func (h *Heartbeat) Beats() int { return h.beats }

// Muted reports whether beats are silenced
func (h *Heartbeat) Muted() bool { return h.muted }

// SetMuted silences or restores beats
func (h *Heartbeat) SetMuted(muted bool) { h.muted = muted }

// Toggle flips mute and returns the new state
func (h *Heartbeat) Toggle() bool {
	h.muted = !h.muted
	return h.muted
}
