package engine

import (
	"github.com/lixenwraith/heartglow/parameter"
)

// Config holds frontend settings for the terminal engine
type Config struct {
	// FPS is the frame ticker rate, simulation time advances one fixed step per frame
	FPS int

	// PointBoost scales sprite size on the half-block grid
	PointBoost float32

	// Clock measures frame statistics, nil uses SystemClock
	Clock Clock
}

// DefaultConfig returns the standard terminal settings
func DefaultConfig() Config {
	return Config{
		FPS:        parameter.FPSDefault,
		PointBoost: parameter.TerminalPointBoost,
	}
}

func (c Config) withDefaults() Config {
	if c.FPS <= 0 {
		c.FPS = parameter.FPSDefault
	}
	if c.PointBoost <= 0 {
		c.PointBoost = parameter.TerminalPointBoost
	}
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	return c
}
