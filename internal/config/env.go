package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvBuzzer   = "SAILCONV_BUZZER"
	EnvLogLevel = "SAILCONV_LOG_LEVEL"
	EnvLCD      = "SAILCONV_LCD"
	EnvTimeout  = "SAILCONV_TIMEOUT"
)

// LoadDotEnv loads variables from .env files into the process environment.
// Variables already set win. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from environment variables read through getenv.
// Pass os.Getenv in production.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := strings.TrimSpace(getenv(EnvBuzzer)); v != "" {
		cfg.Buzzer.Backend = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvLCD)); v != "" {
		cfg.Host.LCD = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number of seconds", EnvTimeout, v)
		}
		cfg.Host.TimeoutS = n
	}
	return nil
}
