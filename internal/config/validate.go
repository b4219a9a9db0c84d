package config

import (
	"fmt"

	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Validate checks configuration correctness. It does not mutate cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Tick rates the movement can produce: powers of two. At least two
	// ticks a second are needed for the cursor blink.
	hz := cfg.Face.TickHz
	if hz < 2 || hz > 128 || hz&(hz-1) != 0 {
		return fmt.Errorf("face.tick_hz must be a power of two between 2 and 128, got %d", hz)
	}

	if cfg.Host.TimeoutS < 0 {
		return fmt.Errorf("host.timeout_s must not be negative, got %d", cfg.Host.TimeoutS)
	}

	switch cfg.Host.LCD {
	case "classic", "custom":
	default:
		return fmt.Errorf("host.lcd must be classic or custom, got %q", cfg.Host.LCD)
	}

	switch cfg.Buzzer.Backend {
	case "oto", "beep", "none":
	default:
		return fmt.Errorf("buzzer.backend must be oto, beep or none, got %q", cfg.Buzzer.Backend)
	}

	if cfg.Buzzer.Volume < 0 || cfg.Buzzer.Volume > 1 {
		return fmt.Errorf("buzzer.volume must be between 0 and 1, got %g", cfg.Buzzer.Volume)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
