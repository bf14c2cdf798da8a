package audio

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

// BackendType identifies how PCM reaches the sound card
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig is a player command reading raw s16le stereo on stdin, or an OSS device path
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// ErrNoAudioBackend means no player was found on PATH
var ErrNoAudioBackend = errors.New("no compatible audio backend found")

// candidate is a backend probed by executable name
type candidate struct {
	typ  BackendType
	name string
	args func(rate string) []string
}

// candidates in priority order: pacat > pw-cat > aplay > play (sox) > ffplay
var candidates = []candidate{
	{BackendPulse, "pacat", func(rate string) []string {
		return []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback"}
	}},
	{BackendPipeWire, "pw-cat", func(rate string) []string {
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-"}
	}},
	{BackendALSA, "aplay", func(rate string) []string {
		return []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"}
	}},
	{BackendSoX, "play", func(rate string) []string {
		return []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"}
	}},
	{BackendFFplay, "ffplay", func(rate string) []string {
		return []string{"-nodisp", "-autoexit", "-f", "s16le", "-ac", "2", "-ar", rate,
			"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet"}
	}},
}

// DetectBackend searches PATH for a player accepting raw PCM at sampleRate
// FreeBSD falls back to writing /dev/dsp directly
func DetectBackend(sampleRate int) (*BackendConfig, error) {
	rate := strconv.Itoa(sampleRate)
	for _, c := range candidates {
		if path, err := exec.LookPath(c.name); err == nil {
			return &BackendConfig{Type: c.typ, Name: c.name, Path: path, Args: c.args(rate)}, nil
		}
	}

	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
