package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pocketlab/doctools/internal/settings"
)

// logdemo config.toml key mapping to demo settings.
type fileConfig struct {
	Debug    bool   `toml:"debug"`
	LogLevel string `toml:"log_level"`
	AppName  string `toml:"app_name"`
	Version  string `toml:"version"`
}

// applyFileConfig overlays TOML values onto environment-derived settings.
// Only keys actually present in the file override; a malformed value fails
// the load rather than falling back to a default.
func applyFileConfig(path string, cfg settings.Settings) (settings.Settings, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	if meta.IsDefined("log_level") {
		level, err := settings.ParseLevel(raw.LogLevel)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("load config: log_level: %w", err)
		}
		cfg.LogLevel = level
	}
	if meta.IsDefined("app_name") {
		cfg.AppName = strings.TrimSpace(raw.AppName)
	}
	if meta.IsDefined("version") {
		cfg.Version = strings.TrimSpace(raw.Version)
	}

	return cfg, nil
}
