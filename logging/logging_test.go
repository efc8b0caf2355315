package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ramp-basket/config"
)

func testLogConfig(t *testing.T) config.LogConfig {
	cfg := config.Default().Log
	cfg.Dir = filepath.Join(t.TempDir(), "logs")
	return cfg
}

func TestSetup_DisabledByDefault(t *testing.T) {
	cfg := testLogConfig(t)

	logger, closer, err := Setup(cfg, false)
	require.NoError(t, err)
	require.NoError(t, closer())

	logger.Info("dropped")

	_, err = os.Stat(cfg.Dir)
	assert.True(t, os.IsNotExist(err), "log dir should not be created without debug")
}

func TestSetup_EnabledWithDebug(t *testing.T) {
	cfg := testLogConfig(t)

	logger, closer, err := Setup(cfg, true)
	require.NoError(t, err)

	logger.Info("test log message")
	require.NoError(t, closer())

	info, err := os.Stat(filepath.Join(cfg.Dir, FileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSetup_Rotation(t *testing.T) {
	cfg := testLogConfig(t)
	cfg.MaxSize = 1024
	require.NoError(t, os.MkdirAll(cfg.Dir, 0o755))

	path := filepath.Join(cfg.Dir, FileName)
	require.NoError(t, os.WriteFile(path, make([]byte, cfg.MaxSize+1), 0o644))

	_, closer, err := Setup(cfg, true)
	require.NoError(t, err)
	defer closer()

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != FileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected a rotated log file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), cfg.MaxSize)
}

func TestSetup_BadLevel(t *testing.T) {
	cfg := testLogConfig(t)
	cfg.Level = "loud"

	_, _, err := Setup(cfg, true)
	assert.Error(t, err)
}
