// Package render expands {{ env }} references inside manifest files before
// YAML parsing.
package render

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"
)

// envTracker records environment variables referenced while rendering.
type envTracker struct {
	missing map[string]struct{}
}

func (t *envTracker) markMissing(key string) {
	if t.missing == nil {
		t.missing = map[string]struct{}{}
	}
	t.missing[key] = struct{}{}
}

func (t *envTracker) missingKeys() []string {
	out := make([]string, 0, len(t.missing))
	for key := range t.missing {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// File loads and renders a manifest template file.
func File(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Bytes(path, raw)
}

// Bytes renders a manifest template from raw bytes. Referencing an unset
// variable through env (rather than envOr) fails the render.
func Bytes(name string, raw []byte) ([]byte, error) {
	tracker := &envTracker{}
	templateName := name
	if strings.TrimSpace(templateName) == "" {
		templateName = "manifest"
	}
	tmpl, err := template.New(templateName).Funcs(funcMap(tracker)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse manifest template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{}); err != nil {
		return nil, fmt.Errorf("render manifest template: %w", err)
	}

	if len(tracker.missing) > 0 {
		return nil, fmt.Errorf("missing env vars: %s", strings.Join(tracker.missingKeys(), ", "))
	}

	return buf.Bytes(), nil
}

func funcMap(tracker *envTracker) template.FuncMap {
	return template.FuncMap{
		"env": func(key string) string {
			value, ok := os.LookupEnv(key)
			if !ok {
				tracker.markMissing(key)
				return ""
			}
			return value
		},
		"envOr": func(key, def string) string {
			if value, ok := os.LookupEnv(key); ok {
				return value
			}
			return def
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
