package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, LevelInfo, cfg.LogLevel)
	assert.Equal(t, "doctools", cfg.AppName)
	assert.Equal(t, "0.1.0", cfg.Version)
}

func TestLoadFromExplicitValues(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"DEBUG":     "true",
		"LOG_LEVEL": "DEBUG",
		"APP_NAME":  "Custom App",
		"VERSION":   "2.0.0",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, LevelDebug, cfg.LogLevel)
	assert.Equal(t, "Custom App", cfg.AppName)
	assert.Equal(t, "2.0.0", cfg.Version)
}

func TestLoadFromLevelCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"warning", "Warning", "WARNING", " warning "} {
		cfg, err := LoadFrom(map[string]string{"LOG_LEVEL": raw})
		require.NoError(t, err, "value %q", raw)
		assert.Equal(t, LevelWarning, cfg.LogLevel)
	}
}

func TestLoadFromRejectsUnknownLevel(t *testing.T) {
	_, err := LoadFrom(map[string]string{"LOG_LEVEL": "TRACE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
	assert.Contains(t, err.Error(), "TRACE")
}

func TestLoadFromRejectsMalformedDebug(t *testing.T) {
	_, err := LoadFrom(map[string]string{"DEBUG": "not_a_boolean"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Debug")
}

func TestLoadReadsProcessEnvironment(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("APP_NAME", "env app")
	t.Setenv("VERSION", "3.1.4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, LevelError, cfg.LogLevel)
	assert.Equal(t, "env app", cfg.AppName)
	assert.Equal(t, "3.1.4", cfg.Version)
}

func TestParseLevelCoversEnum(t *testing.T) {
	for _, level := range Levels() {
		parsed, err := ParseLevel(string(level))
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}
