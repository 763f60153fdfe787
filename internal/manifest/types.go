package manifest

// Known tool names exposed by the docs server.
const (
	ToolAdd                 = "add"
	ToolConvertDocument     = "convert_document"
	ToolConvertDocumentPath = "convert_document_path"
)

// Config is the top-level YAML manifest.
type Config struct {
	// Server describes the MCP server settings.
	Server ServerConfig `yaml:"server"`
	// Tools lists per-tool overrides and toggles.
	Tools []ToolConfig `yaml:"tools"`
	// Limits guards tool invocations.
	Limits LimitsConfig `yaml:"limits"`
	// Conversion configures the document conversion engine.
	Conversion ConversionConfig `yaml:"conversion"`
}

// ServerConfig defines MCP server settings.
type ServerConfig struct {
	// Name is the MCP server name.
	Name string `yaml:"name"`
	// Version is the MCP server version.
	Version string `yaml:"version"`
	// Transport selects the server transport ("stdio" or "http").
	Transport string `yaml:"transport"`
	// ShutdownTimeout overrides graceful shutdown duration.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// HTTP configures the HTTP transport.
	HTTP HTTPConfig `yaml:"http"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the MCP HTTP endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
	// Stateless disables session tracking.
	Stateless bool `yaml:"stateless"`
}

// ToolConfig overrides a single tool declaration.
type ToolConfig struct {
	// Name is the tool name.
	Name string `yaml:"name"`
	// Enabled toggles registration; nil means enabled.
	Enabled *bool `yaml:"enabled"`
	// Description replaces the built-in tool description.
	Description string `yaml:"description"`
	// Timeout is the tool execution timeout. Enforcement is best-effort:
	// a parse already in flight is not interrupted, and a result produced
	// after the deadline is reported as a timeout error.
	Timeout string `yaml:"timeout"`
}

// LimitsConfig guards tool invocations by rate, count, and field policies.
type LimitsConfig struct {
	// RatePerMinute limits calls per minute per tool. Zero disables.
	RatePerMinute int `yaml:"rate_per_minute"`
	// MaxTotal limits total calls per tool for the process lifetime. Zero disables.
	MaxTotal int `yaml:"max_total"`
	// Fields validates tool input fields.
	Fields map[string]FieldPolicy `yaml:"fields"`
}

// FieldPolicy defines validation rules for tool input fields.
type FieldPolicy struct {
	// Regex validates string value format.
	Regex string `yaml:"regex"`
	// Min sets numeric minimum.
	Min *float64 `yaml:"min"`
	// Max sets numeric maximum.
	Max *float64 `yaml:"max"`
	// MinLength sets string minimum length.
	MinLength *int `yaml:"min_length"`
	// MaxLength sets string maximum length.
	MaxLength *int `yaml:"max_length"`
}

// ConversionConfig configures the document conversion engine.
type ConversionConfig struct {
	// MaxFileBytes caps the size of converted inputs. Zero means the default cap.
	MaxFileBytes int64 `yaml:"max_file_bytes"`
}

// Tool returns the override entry for name, if declared.
func (c *Config) Tool(name string) (ToolConfig, bool) {
	for _, tool := range c.Tools {
		if tool.Name == name {
			return tool, true
		}
	}
	return ToolConfig{}, false
}

// ToolEnabled reports whether the named tool should be registered.
// Tools without an override entry are enabled.
func (c *Config) ToolEnabled(name string) bool {
	tool, ok := c.Tool(name)
	if !ok {
		return true
	}
	return tool.Enabled == nil || *tool.Enabled
}
