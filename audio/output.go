package audio

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/heartglow/parameter"
)

// ErrRunning is returned by a second Start
var ErrRunning = errors.New("audio output already running")

// Output pipes mixed PCM into a system player process
// Without a usable backend it runs silent and Play is a no-op
type Output struct {
	sampleRate int
	log        *zap.Logger

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File
	mixer   *Mixer

	running atomic.Bool
	silent  atomic.Bool

	wg sync.WaitGroup
}

// NewOutput creates a stopped output
func NewOutput(sampleRate int, log *zap.Logger) *Output {
	if sampleRate <= 0 {
		sampleRate = parameter.AudioSampleRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Output{sampleRate: sampleRate, log: log}
}

// Start launches the backend and mixer, a missing backend is not an error
func (o *Output) Start() error {
	if o.running.Load() {
		return ErrRunning
	}
	defer o.running.Store(true)

	backend, err := DetectBackend(o.sampleRate)
	if err != nil {
		o.log.Info("audio disabled", zap.Error(err))
		o.silent.Store(true)
		return nil
	}
	o.backend = backend

	var w io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			o.log.Warn("audio device open failed", zap.String("path", backend.Path), zap.Error(err))
			o.silent.Store(true)
			return nil
		}
		o.ossFile = f
		w = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			o.silent.Store(true)
			return nil
		}
		if err := cmd.Start(); err != nil {
			stdin.Close()
			o.log.Warn("audio backend start failed", zap.String("backend", backend.Name), zap.Error(err))
			o.silent.Store(true)
			return nil
		}
		o.cmd = cmd
		o.stdin = stdin
		w = stdin

		o.wg.Add(1)
		go o.monitorProcess()
	}

	o.mixer = NewMixer(w, o.sampleRate, parameter.AudioBufferPeriod)
	o.mixer.Start()

	o.wg.Add(1)
	go o.monitorMixer()

	o.log.Info("audio started", zap.String("backend", backend.Name))
	return nil
}

// monitorProcess watches for player exit
func (o *Output) monitorProcess() {
	defer o.wg.Done()
	if err := o.cmd.Wait(); err != nil && o.running.Load() && !o.silent.Load() {
		o.log.Warn("audio backend exited", zap.Error(err))
		o.silent.Store(true)
	}
}

// monitorMixer switches to silent mode on pipe errors
func (o *Output) monitorMixer() {
	defer o.wg.Done()
	select {
	case err := <-o.mixer.Errors():
		o.log.Warn("audio pipe error", zap.Error(err))
		o.silent.Store(true)
	case <-o.mixer.doneChan:
	}
}

// Play queues samples for mixing
func (o *Output) Play(samples []float64, volume float64) {
	if !o.running.Load() || o.silent.Load() || o.mixer == nil {
		return
	}
	o.mixer.Play(samples, volume)
}

// Silent reports whether output is discarded
func (o *Output) Silent() bool {
	return o.silent.Load()
}

// Backend returns the detected backend, nil when silent from start
func (o *Output) Backend() *BackendConfig {
	return o.backend
}

// Stop halts the mixer and player. Safe to call multiple times
func (o *Output) Stop() {
	if !o.running.CompareAndSwap(true, false) {
		return
	}
	if o.mixer != nil {
		o.mixer.Stop()
		played, dropped := o.mixer.Stats()
		o.log.Info("audio stopped", zap.Uint64("played", played), zap.Uint64("dropped", dropped))
	}
	if o.stdin != nil {
		o.stdin.Close()
	}
	if o.ossFile != nil {
		o.ossFile.Close()
	}
	if o.cmd != nil && o.cmd.Process != nil {
		_ = o.cmd.Process.Kill()
	}
	o.wg.Wait()
}
