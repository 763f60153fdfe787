package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pocketlab/doctools/internal/settings"
)

func baseSettings() settings.Settings {
	return settings.Settings{
		Debug:    false,
		LogLevel: settings.LevelInfo,
		AppName:  "doctools",
		Version:  "0.1.0",
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestApplyFileConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
debug = true
log_level = "error"
app_name = "demo from file"
version = "9.9.9"
`)

	cfg, err := applyFileConfig(path, baseSettings())
	if err != nil {
		t.Fatalf("apply config: %v", err)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug enabled")
	}
	if cfg.LogLevel != settings.LevelError {
		t.Fatalf("unexpected level: %q", cfg.LogLevel)
	}
	if cfg.AppName != "demo from file" {
		t.Fatalf("unexpected app name: %q", cfg.AppName)
	}
	if cfg.Version != "9.9.9" {
		t.Fatalf("unexpected version: %q", cfg.Version)
	}
}

func TestApplyFileConfigKeepsUnsetKeys(t *testing.T) {
	path := writeConfig(t, `app_name = "partial"`)

	cfg, err := applyFileConfig(path, baseSettings())
	if err != nil {
		t.Fatalf("apply config: %v", err)
	}
	if cfg.Debug {
		t.Fatalf("debug should stay disabled")
	}
	if cfg.LogLevel != settings.LevelInfo {
		t.Fatalf("level should stay INFO, got %q", cfg.LogLevel)
	}
	if cfg.AppName != "partial" {
		t.Fatalf("unexpected app name: %q", cfg.AppName)
	}
}

func TestApplyFileConfigRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, `log_level = "TRACE"`)

	if _, err := applyFileConfig(path, baseSettings()); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestApplyFileConfigMissingFile(t *testing.T) {
	if _, err := applyFileConfig(filepath.Join(t.TempDir(), "absent.toml"), baseSettings()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
