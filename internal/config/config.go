package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the docs server.
type Config struct {
	// ConfigPath is the path to the YAML manifest file.
	ConfigPath string `env:"DOCS_MCP_CONFIG" envDefault:"config.yaml"`
	// LogLevel sets the server logger level.
	LogLevel string `env:"DOCS_MCP_LOG_LEVEL" envDefault:"info"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"DOCS_MCP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
