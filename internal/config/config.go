package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/posesync/internal/core/observability/log"
)

var ErrUnknownDimension = errors.New("unknown dimension")

// Dimension selects the 2D or 3D pose bridge.
type Dimension string

const (
	Dim2 Dimension = "2d"
	Dim3 Dimension = "3d"
)

// Config describes how physics poses are mirrored into the scene.
type Config struct {
	// PhysicsScale converts physics units to render units. It is used as is:
	// zero or negative values are accepted and produce Inf/NaN translations.
	PhysicsScale float32   `json:"physics_scale" yaml:"physics_scale"`
	Dimension    Dimension `json:"dimension" yaml:"dimension"`
	LogLevel     string    `json:"log_level" yaml:"log_level"`
}

// Default returns a 3D config with a physics scale of 1.
func Default() Config {
	return Config{
		PhysicsScale: 1,
		Dimension:    Dim3,
		LogLevel:     "info",
	}
}

// Load reads a YAML document from r. Keys missing from the document keep
// their Default values; an empty document yields Default.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile opens path and passes it to Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the enumerated fields. PhysicsScale is never checked.
func (c *Config) Validate() error {
	switch c.Dimension {
	case Dim2, Dim3:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDimension, c.Dimension)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
