package manifest

import (
	"fmt"
	"strings"
	"time"
)

const defaultMaxFileBytes = 32 << 20

var knownTools = map[string]struct{}{
	ToolAdd:                 {},
	ToolConvertDocument:     {},
	ToolConvertDocumentPath: {},
}

// Validate applies defaults and verifies required fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("manifest is nil")
	}
	if cfg.Server.Name == "" {
		return fmt.Errorf("server.name is required")
	}
	if cfg.Server.Version == "" {
		return fmt.Errorf("server.version is required")
	}
	if cfg.Server.Transport == "" {
		cfg.Server.Transport = "stdio"
	}
	cfg.Server.Transport = strings.ToLower(strings.TrimSpace(cfg.Server.Transport))
	switch cfg.Server.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("server.transport must be stdio or http")
	}
	if cfg.Server.ShutdownTimeout != "" {
		if _, err := time.ParseDuration(cfg.Server.ShutdownTimeout); err != nil {
			return fmt.Errorf("server.shutdown_timeout is invalid: %w", err)
		}
	}
	if cfg.Server.HTTP.Listen == "" {
		cfg.Server.HTTP.Listen = "127.0.0.1:8080"
	}
	if cfg.Server.HTTP.Path == "" {
		cfg.Server.HTTP.Path = "/mcp"
	}

	toolNames := map[string]struct{}{}
	for i, tool := range cfg.Tools {
		if tool.Name == "" {
			return fmt.Errorf("tools[%d].name is required", i)
		}
		if _, ok := knownTools[tool.Name]; !ok {
			return fmt.Errorf("tools[%d].name is unknown: %s", i, tool.Name)
		}
		if _, exists := toolNames[tool.Name]; exists {
			return fmt.Errorf("duplicate tool name: %s", tool.Name)
		}
		toolNames[tool.Name] = struct{}{}
		if tool.Timeout != "" {
			if _, err := time.ParseDuration(tool.Timeout); err != nil {
				return fmt.Errorf("tools[%d].timeout is invalid: %w", i, err)
			}
		}
	}

	if cfg.Limits.RatePerMinute < 0 {
		return fmt.Errorf("limits.rate_per_minute must be >= 0")
	}
	if cfg.Limits.MaxTotal < 0 {
		return fmt.Errorf("limits.max_total must be >= 0")
	}

	if cfg.Conversion.MaxFileBytes < 0 {
		return fmt.Errorf("conversion.max_file_bytes must be >= 0")
	}
	if cfg.Conversion.MaxFileBytes == 0 {
		cfg.Conversion.MaxFileBytes = defaultMaxFileBytes
	}

	return nil
}
