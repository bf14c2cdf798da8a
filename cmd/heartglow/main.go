// Command heartglow draws the glowing particle heart in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/heartglow/audio"
	"github.com/lixenwraith/heartglow/engine"
	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/terminal"
	"github.com/lixenwraith/heartglow/theme"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	particlesFlag = flag.Int("particles", parameter.ParticleCountDefault, "Number of particles")
	themeFlag     = flag.String("theme", theme.DefaultKey, "Initial theme key")
	fpsFlag       = flag.Int("fps", parameter.FPSDefault, "Frames per second")
	seedFlag      = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	audioFlag     = flag.Bool("audio", false, "Play a heartbeat on each pulse")
	tintFlag      = flag.Bool("tint", false, "Blend particle colors toward red on each pulse")
	debugFlag     = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	listFlag      = flag.Bool("list-themes", false, "Print the available themes and exit")
)

func main() {
	flag.Parse()

	registry := theme.Builtin()
	if *listFlag {
		listThemes(os.Stdout, registry, *themeFlag)
		return
	}

	log, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	if err := run(registry, log); err != nil {
		log.Error("fatal", zap.Error(err))
		fmt.Fprintf(os.Stderr, "heartglow: %v\n", err)
		os.Exit(1)
	}
}

func run(registry *theme.Registry, log *zap.Logger) error {
	th, err := registry.Lookup(*themeFlag)
	if err != nil {
		return err
	}

	colorMode, ok := terminal.ParseColorMode(*colorModeFlag)
	if !ok {
		return fmt.Errorf("invalid color mode %q", *colorModeFlag)
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
		out := audio.NewOutput(parameter.AudioSampleRate, log.Named("audio"))
		if err := out.Start(); err != nil {
			return fmt.Errorf("audio: %w", err)
		}
		defer out.Stop()
		beat = audio.NewHeartbeat(out, parameter.AudioSampleRate)
	}

	term, err := terminal.New(colorMode)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer term.Fini()

	// Restore the terminal before printing a crash so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			log.Error("panic", zap.Any("value", r), zap.ByteString("stack", debug.Stack()))
			fmt.Fprintf(os.Stderr, "\nHEARTGLOW CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := engine.DefaultConfig()
	cfg.FPS = *fpsFlag
	e := engine.New(term, sim, registry, beat, cfg, log.Named("engine"))
	return e.Run(ctx)
}
