package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/trid/internal/logging"
	"github.com/gravitas-games/trid/pkg/tri"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all tool configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
	Lattice LatticeConfig `yaml:"lattice"`
	View    ViewConfig    `yaml:"view"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	Format    string `yaml:"format"`    // text or json
	Precision int    `yaml:"precision"` // decimals for float coordinates
}

// LatticeConfig holds lattice settings
type LatticeConfig struct {
	UnitLength int `yaml:"unit_length"` // positive multiple of 6
}

// ViewConfig holds viewer window settings
type ViewConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`  // pixels per vertex step
	Radius int     `yaml:"radius"` // drawn disc radius in vertex steps
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Set defaults if not provided
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Precision == 0 {
		c.Output.Precision = 3
	}
	if c.Lattice.UnitLength == 0 {
		c.Lattice.UnitLength = tri.UnitLength
	}
	if c.View.Width == 0 {
		c.View.Width = 960
	}
	if c.View.Height == 0 {
		c.View.Height = 720
	}
	if c.View.Scale == 0 {
		c.View.Scale = 48
	}
	if c.View.Radius == 0 {
		c.View.Radius = 6
	}
}

// Validate reports the first setting out of range.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output.format %q is not text or json", ErrInvalid, c.Output.Format)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("%w: output.precision %d is negative", ErrInvalid, c.Output.Precision)
	}
	if c.Lattice.UnitLength <= 0 || c.Lattice.UnitLength%6 != 0 {
		return fmt.Errorf("%w: lattice.unit_length %d is not a positive multiple of 6", ErrInvalid, c.Lattice.UnitLength)
	}
	if c.View.Width < 0 || c.View.Height < 0 || c.View.Scale < 0 || c.View.Radius < 0 {
		return fmt.Errorf("%w: view dimensions must not be negative", ErrInvalid)
	}
	return nil
}
