package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Create temporary config file
	content := `{
		"environment": "test",
		"logging": {
			"log_level": "debug",
			"log_file": "test.log"
		},
		"input": {
			"max_token_size": 4096
		}
	}`

	tmpfile, err := os.CreateTemp("", "config.*.json")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	tmpfile.Close()

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "debug", cfg.Logging.LogLevel)
	assert.Equal(t, "test.log", cfg.Logging.LogFile)
	assert.Equal(t, 4096, cfg.Input.MaxTokenSize)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "logging:\n  log_level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.LogLevel)
	assert.Equal(t, DefaultEnvironment, cfg.Environment)
	assert.Equal(t, DefaultMaxTokenSize, cfg.Input.MaxTokenSize)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultEnvironment, cfg.Environment)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.LogLevel)
	assert.Empty(t, cfg.Logging.LogFile)
	assert.Equal(t, DefaultMaxTokenSize, cfg.Input.MaxTokenSize)
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := Load("../../config/config.example.yaml")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.Logging.LogLevel)
	assert.Equal(t, DefaultMaxTokenSize, cfg.Input.MaxTokenSize)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PUZZLEKIT_LOGGING_LOG_LEVEL", "error")
	t.Setenv("PUZZLEKIT_INPUT_MAX_TOKEN_SIZE", "128")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.LogLevel)
	assert.Equal(t, 128, cfg.Input.MaxTokenSize)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("non-positive token size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"input": {"max_token_size": 0}}`), 0o600))

		_, err := Load(path)
		assert.ErrorContains(t, err, "max_token_size")
	})
}
