package security

import (
	"fmt"
	"strings"
)

// maxLoggedValueLen caps string values in log output; base64 document
// payloads would otherwise dominate every log line.
const maxLoggedValueLen = 256

var sensitiveSubstrings = []string{
	"token",
	"password",
	"authorization",
	"apikey",
	"api_key",
	"credentials",
	"auth",
	"passwd",
	"key",
	"signature",
	"cookie",
	"session",
	"bearer",
	"secret",
	"passphrase",
}

// RedactArguments returns a copy of arguments safe for logging: sensitive
// values are masked and oversized strings truncated.
func RedactArguments(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	redacted := make(map[string]any, len(values))
	for key, value := range values {
		if isSensitiveKey(key) {
			redacted[key] = "***"
			continue
		}
		if s, ok := value.(string); ok && len(s) > maxLoggedValueLen {
			redacted[key] = fmt.Sprintf("%s... (%d bytes truncated)", s[:32], len(s))
			continue
		}
		redacted[key] = value
	}
	return redacted
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveSubstrings {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
