package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config, err := LoadConfig("../../fixtures/tests/config/valid_config.yaml")
		require.NoError(t, err)
		require.NotNil(t, config)

		assert.Equal(t, "debug", config.Logger.Verbosity)
		assert.Equal(t, 0, config.Platform.Index)
		assert.Equal(t, "gpu", config.Device.Type)
		assert.Equal(t, []int{128, 512}, config.Bench.Sizes)
		assert.Equal(t, 3, config.Bench.Repetitions)
		assert.Equal(t, 30*time.Second, config.Bench.Timeout)
		assert.Equal(t, "127.0.0.1:9185", config.Metrics.ListenAddress)
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "info", config.Logger.Verbosity)
		assert.Equal(t, -1, config.Platform.Index)
		assert.Equal(t, "all", config.Device.Type)
		assert.Equal(t, []int{256, 1024, 4096}, config.Bench.Sizes)
		assert.Equal(t, 5, config.Bench.Repetitions)
		assert.NotEmpty(t, config.Metrics.ListenAddress, "metrics serving needs a usable default address")
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := LoadConfig("non-existent-file.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir, err := os.Getwd()
		require.NoError(t, err)

		configPath := filepath.Join(dir, "..", "..", "fixtures", "tests", "invalid_config", "config.yaml")
		_, err = LoadConfig(configPath)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive bench size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bench:\n  sizes: [0]\n"), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "bench size")
	})

	t.Run("rejects non-positive repetitions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bench:\n  repetitions: -1\n"), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "repetitions")
	})
}
