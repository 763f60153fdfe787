package timeutil

import (
	"strings"
	"time"
)

// ParseDurationOrDefault parses a duration string, returning def when the
// value is empty or invalid.
func ParseDurationOrDefault(value string, def time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
