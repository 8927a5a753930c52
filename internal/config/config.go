// Package config loads the YAML configuration of the sonar command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of tunables.
type Config struct {
	InputDir    string      `yaml:"input_dir"`
	LogLevel    string      `yaml:"log_level"`
	Lanternfish Lanternfish `yaml:"lanternfish"`
	Polymer     Polymer     `yaml:"polymer"`
	Octopus     Octopus     `yaml:"octopus"`
}

// Lanternfish holds the simulated day counts for both parts.
type Lanternfish struct {
	Part1 int `yaml:"part1"`
	Part2 int `yaml:"part2"`
}

// Polymer holds the insertion step counts for both parts.
type Polymer struct {
	Part1 int `yaml:"part1"`
	Part2 int `yaml:"part2"`
}

// Octopus configures the flash simulation.
type Octopus struct {
	Steps     int  `yaml:"steps"`
	SyncLimit int  `yaml:"sync_limit"`
	Worklist  bool `yaml:"worklist"`
}

// Default returns the values used when no file is given.
func Default() Config {
	return Config{
		InputDir:    "inputs",
		LogLevel:    "info",
		Lanternfish: Lanternfish{Part1: 80, Part2: 256},
		Polymer:     Polymer{Part1: 10, Part2: 40},
		Octopus:     Octopus{Steps: 100, SyncLimit: 10000},
	}
}

// Load reads path over the defaults. An empty path yields Default().
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Encode writes cfg as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"lanternfish.part1", c.Lanternfish.Part1},
		{"lanternfish.part2", c.Lanternfish.Part2},
		{"polymer.part1", c.Polymer.Part1},
		{"polymer.part2", c.Polymer.Part2},
		{"octopus.steps", c.Octopus.Steps},
	}
	for _, ch := range checks {
		if ch.v < 0 {
			return fmt.Errorf("%w: %s = %d, must not be negative", ErrInvalid, ch.name, ch.v)
		}
	}
	if c.Octopus.SyncLimit <= 0 {
		return fmt.Errorf("%w: octopus.sync_limit = %d, must be positive", ErrInvalid, c.Octopus.SyncLimit)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
