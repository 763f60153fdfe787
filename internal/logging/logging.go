// Package logging builds the colorized console sink for the demo CLI.
package logging

import (
	"io"

	colorable "github.com/mattn/go-colorable"
	"github.com/rs/zerolog"

	"github.com/pocketlab/doctools/internal/settings"
)

const timeFormat = "2006-01-02 15:04:05"

// Configure returns a logger writing colorized lines to stdout with the
// minimum severity taken from the settings. Each call produces a fresh,
// fully configured handle; the previous one simply stops being used, so
// reconfiguration is a plain replacement.
func Configure(cfg settings.Settings) zerolog.Logger {
	return ConfigureWriter(cfg, colorable.NewColorableStdout())
}

// ConfigureWriter is Configure with an explicit destination, for tests and
// custom sinks.
func ConfigureWriter(cfg settings.Settings, out io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
	}

	ctx := zerolog.New(console).Level(ZerologLevel(cfg.LogLevel)).With().Timestamp()
	if cfg.Debug {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ZerologLevel maps the settings level enum onto zerolog severities.
// CRITICAL maps to the fatal level; callers emitting demo lines use
// WithLevel so the process keeps running.
func ZerologLevel(level settings.Level) zerolog.Level {
	switch level {
	case settings.LevelDebug:
		return zerolog.DebugLevel
	case settings.LevelWarning:
		return zerolog.WarnLevel
	case settings.LevelError:
		return zerolog.ErrorLevel
	case settings.LevelCritical:
		return zerolog.FatalLevel
	case settings.LevelInfo:
		return zerolog.InfoLevel
	}
	return zerolog.InfoLevel
}
