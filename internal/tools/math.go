// Package tools defines the tool functions and descriptors exposed by the
// docs server.
package tools

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pocketlab/doctools/internal/manifest"
)

// AddInput is the input of the add tool.
type AddInput struct {
	A             float64 `json:"a"`
	B             float64 `json:"b"`
	CorrelationID string  `json:"correlation_id,omitempty"`
}

// Add returns the sum of the two addends.
func Add(in AddInput) float64 {
	return in.A + in.B
}

// AddTool builds the add tool descriptor.
func AddTool() (*mcp.Tool, error) {
	schema, err := jsonschema.For[AddInput](nil)
	if err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema.Properties["a"].Description = "first addend"
	schema.Properties["b"].Description = "second addend"
	schema.Properties["correlation_id"].Description = "optional caller-supplied correlation id"

	return &mcp.Tool{
		Name:        manifest.ToolAdd,
		Title:       "Add two numbers",
		Description: "Adds two numbers and returns their sum.",
		InputSchema: schema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}, nil
}
