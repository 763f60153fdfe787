package settings

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Level is the closed set of log severities accepted by the demo.
type Level string

const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// Levels lists every valid Level in severity order.
func Levels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
}

// ParseLevel matches value against the level set, ignoring case.
func ParseLevel(value string) (Level, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	switch Level(normalized) {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return Level(normalized), nil
	default:
		return "", fmt.Errorf("invalid log level %q (expected one of DEBUG, INFO, WARNING, ERROR, CRITICAL)", value)
	}
}

// UnmarshalText lets env parsing reject unknown levels instead of defaulting.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Level) String() string {
	return string(l)
}

// Settings stores the validated demo configuration. Constructed once at
// startup and never mutated afterwards.
type Settings struct {
	// Debug enables verbose output and source locations in log lines.
	Debug bool `env:"DEBUG" envDefault:"false"`
	// LogLevel is the minimum severity emitted by the configured sink.
	LogLevel Level `env:"LOG_LEVEL" envDefault:"INFO"`
	// AppName is a free-form application label.
	AppName string `env:"APP_NAME" envDefault:"doctools"`
	// Version is a free-form version label.
	Version string `env:"VERSION" envDefault:"0.1.0"`
}

// Load parses the process environment into Settings. Absent variables fall
// back to defaults; present but malformed values fail the load.
func Load() (Settings, error) {
	return env.ParseAs[Settings]()
}

// LoadFrom parses an explicit environment mapping instead of the process
// environment.
func LoadFrom(environment map[string]string) (Settings, error) {
	return env.ParseAsWithOptions[Settings](env.Options{Environment: environment})
}
