// Package config loads watch settings from YAML, .env files and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Face   FaceConfig   `yaml:"face"`
	Host   HostConfig   `yaml:"host"`
	Buzzer BuzzerConfig `yaml:"buzzer"`
	Log    LogConfig    `yaml:"log"`
}

// ---- FACE ----

type FaceConfig struct {
	Slot   uint8 `yaml:"slot"`
	TickHz int   `yaml:"tick_hz"`
	Sound  bool  `yaml:"sound"`  // button tones
	Jingle bool  `yaml:"jingle"` // melody on activation
}

// ---- HOST ----

type HostConfig struct {
	TimeoutS int    `yaml:"timeout_s"` // 0 disables the inactivity timeout
	LCD      string `yaml:"lcd"`       // classic | custom
}

// Timeout returns the inactivity timeout.
func (h HostConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutS) * time.Second
}

// ---- BUZZER ----

type BuzzerConfig struct {
	Backend string  `yaml:"backend"` // oto | beep | none
	Volume  float64 `yaml:"volume"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // "stderr" logs to the console
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Face: FaceConfig{
			Slot:   1,
			TickHz: 4,
			Sound:  true,
			Jingle: true,
		},
		Host: HostConfig{
			TimeoutS: 60,
			LCD:      "custom",
		},
		Buzzer: BuzzerConfig{
			Backend: "oto",
			Volume:  0.25,
		},
		Log: LogConfig{
			Level: "normal",
			File:  ".sailconv/sailconv.log",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	if len(data) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
