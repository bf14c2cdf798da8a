// Command heartglow-window draws the glowing particle heart in a desktop window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/heartglow/audio"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/theme"
	"github.com/lixenwraith/heartglow/window"
)

var (
	particlesFlag = flag.Int("particles", parameter.ParticleCountDefault, "Number of particles")
	themeFlag     = flag.String("theme", theme.DefaultKey, "Initial theme key")
	fpsFlag       = flag.Int("fps", parameter.FPSDefault, "Simulation steps per second")
	seedFlag      = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	audioFlag     = flag.Bool("audio", false, "Play a heartbeat on each pulse")
	tintFlag      = flag.Bool("tint", false, "Blend particle colors toward red on each pulse")
	debugFlag     = flag.Bool("debug", false, "Log debug output to stderr")
	widthFlag     = flag.Int("width", parameter.WindowWidthDefault, "Window width in pixels")
	heightFlag    = flag.Int("height", parameter.WindowHeightDefault, "Window height in pixels")
)

func main() {
	flag.Parse()

	log := zap.NewNop()
	if *debugFlag {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()

	if err := run(log); err != nil {
		fmt.Fprintf(os.Stderr, "heartglow-window: %v\n", err)
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	registry := theme.Builtin()
	th, err := registry.Lookup(*themeFlag)
	if err != nil {
		return err
	}

	sim, err := heart.New(heart.Config{
		ParticleCount: *particlesFlag,
		TimeStep:      parameter.TimeStep,
		Seed:          *seedFlag,
		PulseTint:     *tintFlag,
		Theme:         th,
	})
	if err != nil {
		return err
	}

	var beat *audio.Heartbeat
	if *audioFlag {
		spk := audio.NewSpeaker(parameter.AudioSampleRate)
		if err := spk.Init(); err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			beat = audio.NewHeartbeat(spk, parameter.AudioSampleRate)
		}
	}

	if *fpsFlag > 0 {
		ebiten.SetTPS(*fpsFlag)
	}
	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("heartglow")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := window.New(sim, registry, beat, log.Named("window"))
	log.Info("window started",
		zap.Int("particles", sim.Store().Len()),
		zap.String("theme", th.Key),
		zap.Int64("seed", sim.Seed()),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
