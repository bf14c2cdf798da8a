package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/heartglow/parameter"
)

type recordingSink struct {
	plays int
	last  []float64
}

func (r *recordingSink) Play(samples []float64, volume float64) {
	r.plays++
	r.last = samples
}

func TestHeartbeatSoundShape(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	thumpN := rate.N(parameter.HeartbeatThumpLength)
	gapN := rate.N(parameter.HeartbeatGap)

	s := HeartbeatSound(parameter.AudioSampleRate)
	if len(s) != 2*thumpN+gapN {
		t.Fatalf("len = %d, want %d", len(s), 2*thumpN+gapN)
	}

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range s[from:to] {
			m = math.Max(m, math.Abs(v))
		}
		return m
	}

	lub := peak(0, thumpN)
	gap := peak(thumpN, thumpN+gapN)
	dub := peak(thumpN+gapN, len(s))

	if lub == 0 || dub == 0 {
		t.Fatalf("silent thump: lub=%v dub=%v", lub, dub)
	}
	if gap != 0 {
		t.Errorf("gap not silent: %v", gap)
	}
	if lub <= dub {
		t.Errorf("lub %v should be louder than dub %v", lub, dub)
	}
	if lub > 1 {
		t.Errorf("peak %v exceeds unity", lub)
	}
	if s[0] != 0 {
		t.Errorf("attack does not start from silence: %v", s[0])
	}
}

func TestHeartbeatObservePeaks(t *testing.T) {
	sink := &recordingSink{}
	h := NewHeartbeat(sink, 8000)

	// First peak at t = (π/2)/PulseSpeed
	first := (math.Pi / 2) / parameter.PulseSpeed
	period := 2 * math.Pi / parameter.PulseSpeed

	if h.Observe(0) || h.Observe(first-0.01) {
		t.Error("beat before first peak")
	}
	if !h.Observe(first + 0.01) {
		t.Error("first peak not observed")
	}
	if h.Observe(first + 0.02) {
		t.Error("same peak observed twice")
	}
	if sink.plays != 1 {
		t.Errorf("plays = %d, want 1", sink.plays)
	}

	// Jump over three peaks: one beat
	if !h.Observe(first + 3*period + 0.01) {
		t.Error("jump did not beat")
	}
	if sink.plays != 2 || h.Beats() != 2 {
		t.Errorf("plays=%d beats=%d, want 2/2", sink.plays, h.Beats())
	}
	if len(sink.last) == 0 {
		t.Error("empty sound played")
	}
}

func TestHeartbeatMute(t *testing.T) {
	sink := &recordingSink{}
	h := NewHeartbeat(sink, 8000)
	period := 2 * math.Pi / parameter.PulseSpeed

	if !h.Toggle() || !h.Muted() {
		t.Fatal("Toggle did not mute")
	}
	if !h.Observe(period) {
		t.Error("muted heartbeat should still track peaks")
	}
	if sink.plays != 0 {
		t.Errorf("muted plays = %d", sink.plays)
	}

	h.SetMuted(false)
	h.Observe(2 * period)
	if sink.plays != 1 {
		t.Errorf("unmuted plays = %d", sink.plays)
	}
}

func TestHeartbeatNilSink(t *testing.T) {
	h := NewHeartbeat(nil, 8000)
	if !h.Observe(10) {
		t.Error("nil sink heartbeat did not track")
	}
}

func TestMonoStreamer(t *testing.T) {
	s := monoStreamer([]float64{0.25, -0.5, 1})
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok || out[1] != [2]float64{-0.5, -0.5} {
		t.Fatalf("first read = %d %v %v", n, ok, out)
	}
	n, ok = s.Stream(out)
	if n != 1 || !ok || out[0] != [2]float64{1, 1} {
		t.Fatalf("second read = %d %v %v", n, ok, out)
	}
	if n, ok = s.Stream(out); n != 0 || ok {
		t.Errorf("drained read = %d %v", n, ok)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	// 10 samples of DC through a 2-sample attack and 4-sample release
	dc := beep.StreamerFunc(func(s [][2]float64) (int, bool) {
		for i := range s {
			s[i] = [2]float64{1, 1}
		}
		return len(s), true
	})
	env := newEnvelope(dc, 10*time.Millisecond, 2*time.Millisecond, 4*time.Millisecond, rate)
	got := renderStream(env, 12)

	want := []float64{0, 0.5, 1, 1, 1, 1, 1, 0.75, 0.5, 0.25, 0, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	got := renderStream(newVolume(monoStreamer([]float64{1, 1}), 0), 2)
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("zero volume = %v", got)
	}
	got = renderStream(newVolume(monoStreamer([]float64{1}), 0.5), 1)
	if math.Abs(got[0]-0.5) > 1e-12 {
		t.Errorf("half volume = %v", got)
	}
}
