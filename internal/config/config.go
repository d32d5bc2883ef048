package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/ballpit/internal/core/observability/log"
	"github.com/zeusync/ballpit/internal/core/world"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes one invocation of the simulator.
type Config struct {
	Canvas     CanvasConfig     `json:"canvas" yaml:"canvas"`
	Population world.Population `json:"population" yaml:"population"`

	// Seed feeds the random source. SeedPhrase, when set, wins and is hashed
	// into a seed. Both empty means the caller picks one.
	Seed       int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	SeedPhrase string `json:"seed_phrase,omitempty" yaml:"seed_phrase,omitempty"`

	// MaxTicks stops a run that has not finished. Zero means no limit.
	MaxTicks    uint64 `json:"max_ticks" yaml:"max_ticks"`
	ReportEvery uint64 `json:"report_every" yaml:"report_every"`

	// Runs > 1 runs that many simulations with consecutive seeds.
	Runs     int `json:"runs" yaml:"runs"`
	Parallel int `json:"parallel" yaml:"parallel"`

	Log LogConfig `json:"log" yaml:"log"`
}

type CanvasConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns the classic 800×600 canvas with 10 regular, 2 monster and
// 3 repellent balls.
func Default() Config {
	return Config{
		Canvas:      CanvasConfig{Width: 800, Height: 600},
		Population:  world.DefaultPopulation(),
		MaxTicks:    1_000_000,
		ReportEvery: 1000,
		Runs:        1,
		Parallel:    1,
		Log:         LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML decodes YAML over the defaults. Unknown keys are rejected.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Validate validates the configuration
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	p := c.Population
	if p.Regular < 0 || p.Monster < 0 || p.Repellent < 0 {
		return fmt.Errorf("%w: population counts must not be negative", ErrInvalidConfig)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1", ErrInvalidConfig)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be at least 1", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// ResolveSeed returns the seed to use. A seed phrase is hashed; otherwise the
// explicit seed is used, and if that is zero fallback supplies one.
func (c Config) ResolveSeed(fallback func() int64) int64 {
	if c.SeedPhrase != "" {
		return int64(xxhash.Sum64String(c.SeedPhrase))
	}
	if c.Seed != 0 || fallback == nil {
		return c.Seed
	}
	return fallback()
}
