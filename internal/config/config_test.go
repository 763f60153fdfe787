package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "config.yaml", cfg.ConfigPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DOCS_MCP_CONFIG", "/etc/doctools/server.yaml")
	t.Setenv("DOCS_MCP_LOG_LEVEL", "debug")
	t.Setenv("DOCS_MCP_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/etc/doctools/server.yaml", cfg.ConfigPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("DOCS_MCP_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
