package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ramp-basket/constants"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, constants.NumCurvePoints, cfg.Curve.Points)
	assert.Equal(t, 4, cfg.Physics.SubSteps)
	assert.Equal(t, 10, cfg.Physics.VelocityIterations)
	assert.Equal(t, 10, cfg.Physics.PositionIterations)
	assert.InDelta(t, 1.0/60.0, cfg.Physics.TimeStep, 1e-12)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	doc := `
physics:
  substeps: 1
  velocity_iterations: 3
  position_iterations: 2
curve:
  points: 50
terminal:
  frame_interval: 20ms
seed: 42
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Physics.SubSteps)
	assert.Equal(t, 3, cfg.Physics.VelocityIterations)
	assert.Equal(t, 2, cfg.Physics.PositionIterations)
	assert.Equal(t, 50, cfg.Curve.Points)
	assert.Equal(t, 20*time.Millisecond, cfg.Terminal.FrameInterval)
	assert.Equal(t, int64(42), cfg.Seed)

	// untouched fields keep their defaults
	assert.Equal(t, Default().Physics.Gravity, cfg.Physics.Gravity)
	assert.Equal(t, Default().Log, cfg.Log)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejectsUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("physics:\n  warp: 9\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero time step", func(c *Config) { c.Physics.TimeStep = 0 }},
		{"no substeps", func(c *Config) { c.Physics.SubSteps = 0 }},
		{"no velocity iterations", func(c *Config) { c.Physics.VelocityIterations = 0 }},
		{"too few curve points", func(c *Config) { c.Curve.Points = 29 }},
		{"too many curve points", func(c *Config) { c.Curve.Points = 51 }},
		{"zero cell", func(c *Config) { c.Terminal.CellHeight = 0 }},
		{"zero frame interval", func(c *Config) { c.Terminal.FrameInterval = 0 }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero log size", func(c *Config) { c.Log.MaxSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("curve:\n  points: 40\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Curve.Points)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
