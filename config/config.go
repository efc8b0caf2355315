// Package config loads the game's tunables from YAML, layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ramp-basket/constants"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration document
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Curve    CurveConfig    `yaml:"curve"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`

	// Seed drives basket placement; zero means seed from the clock
	Seed int64 `yaml:"seed"`
}

// PhysicsConfig is the fixed-timestep policy and world gravity
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	TimeStep           float64 `yaml:"time_step"`
	SubSteps           int     `yaml:"substeps"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
}

type CurveConfig struct {
	Points int `yaml:"points"`
}

// TerminalConfig maps terminal cells onto surface pixels
type TerminalConfig struct {
	CellWidth     float64       `yaml:"cell_width"`
	CellHeight    float64       `yaml:"cell_height"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LogConfig struct {
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
	MaxSize int64  `yaml:"max_size"`
}

// Default returns the configuration the game ships with
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:            constants.Gravity,
			TimeStep:           constants.PhysicsTimeStep,
			SubSteps:           constants.PhysicsSubSteps,
			VelocityIterations: constants.VelocityIterations,
			PositionIterations: constants.PositionIterations,
		},
		Curve: CurveConfig{
			Points: constants.NumCurvePoints,
		},
		Terminal: TerminalConfig{
			CellWidth:     constants.CellWidth,
			CellHeight:    constants.CellHeight,
			FrameInterval: constants.FrameUpdateInterval,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
		},
		Log: LogConfig{
			Dir:     "logs",
			Level:   "debug",
			MaxSize: 10 * 1024 * 1024,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults and validates the result
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.Physics.TimeStep <= 0:
		return fmt.Errorf("%w: physics.time_step must be positive, got %g", ErrInvalid, c.Physics.TimeStep)
	case c.Physics.SubSteps < 1:
		return fmt.Errorf("%w: physics.substeps must be at least 1, got %d", ErrInvalid, c.Physics.SubSteps)
	case c.Physics.VelocityIterations < 1 || c.Physics.PositionIterations < 1:
		return fmt.Errorf("%w: physics iteration counts must be at least 1", ErrInvalid)
	case c.Curve.Points < constants.MinCurvePoints || c.Curve.Points > constants.MaxCurvePoints:
		return fmt.Errorf("%w: curve.points must be in [%d, %d], got %d",
			ErrInvalid, constants.MinCurvePoints, constants.MaxCurvePoints, c.Curve.Points)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalid)
	case c.Terminal.FrameInterval <= 0:
		return fmt.Errorf("%w: terminal.frame_interval must be positive", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	case c.Log.MaxSize <= 0:
		return fmt.Errorf("%w: log.max_size must be positive", ErrInvalid)
	}
	return nil
}
