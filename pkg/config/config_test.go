package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()

	assert.Equal(t, 9090, cfg.SimulatorPort)
	assert.Equal(t, 8080, cfg.AdminPort)
	assert.Equal(t, 130*time.Second, cfg.PostCaseTimeout.Std())
	assert.Equal(t, 5*time.Second, cfg.TimeoutBuffer.Std())
	assert.Equal(t, 135*time.Second, cfg.DefaultDelay())
	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "arkivsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"simulatorPort: 7070\npostCaseTimeout: 10s\nlogFormat: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.SimulatorPort)
	assert.Equal(t, 10*time.Second, cfg.PostCaseTimeout.Std())
	assert.Equal(t, "json", cfg.LogFormat)
	// Untouched keys keep their defaults.
	assert.Equal(t, 8080, cfg.AdminPort)
	assert.Equal(t, 5*time.Second, cfg.TimeoutBuffer.Std())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulatorPort: [oops\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ARKIVSIM_ADMIN_PORT", "9999")
	t.Setenv("ARKIVSIM_TIMEOUT_BUFFER", "2s")

	cfg, err := FromEnv(Default())
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.AdminPort)
	assert.Equal(t, 2*time.Second, cfg.TimeoutBuffer.Std())
	assert.Equal(t, 9090, cfg.SimulatorPort)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("rejects equal ports", func(t *testing.T) {
		cfg := Default()
		cfg.AdminPort = cfg.SimulatorPort
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects zero port", func(t *testing.T) {
		cfg := Default()
		cfg.SimulatorPort = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive case timeout", func(t *testing.T) {
		cfg := Default()
		cfg.PostCaseTimeout = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestDurationText(t *testing.T) {
	t.Parallel()

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Std())

	out, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(out))

	assert.Error(t, d.UnmarshalText([]byte("soon")))
}
