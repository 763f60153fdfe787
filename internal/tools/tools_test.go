package tools

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketlab/doctools/internal/manifest"
)

func inputSchema(t *testing.T, tool *mcp.Tool) *jsonschema.Schema {
	t.Helper()
	schema, ok := tool.InputSchema.(*jsonschema.Schema)
	require.True(t, ok, "input schema should be a *jsonschema.Schema")
	return schema
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{1, 2, 3},
		{0, 0, 0},
		{-1.5, 0.5, -1},
		{1e9, 1, 1e9 + 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Add(AddInput{A: tt.a, B: tt.b}))
	}
}

func TestAddToolDescriptor(t *testing.T) {
	tool, err := AddTool()
	require.NoError(t, err)

	assert.Equal(t, manifest.ToolAdd, tool.Name)
	assert.NotEmpty(t, tool.Description)
	require.NotNil(t, tool.InputSchema)

	schema := inputSchema(t, tool)
	require.Contains(t, schema.Properties, "a")
	require.Contains(t, schema.Properties, "b")
	assert.NotEmpty(t, schema.Properties["a"].Description)
	assert.NotEmpty(t, schema.Properties["b"].Description)
	assert.Contains(t, schema.Required, "a")
	assert.Contains(t, schema.Required, "b")
	assert.NotContains(t, schema.Required, "correlation_id")
}

func TestConvertDocumentToolDescriptor(t *testing.T) {
	tool, err := ConvertDocumentTool()
	require.NoError(t, err)

	assert.Equal(t, manifest.ToolConvertDocument, tool.Name)
	schema := inputSchema(t, tool)
	require.Contains(t, schema.Properties, "data_base64")
	require.Contains(t, schema.Properties, "file_type")
	assert.Contains(t, schema.Required, "data_base64")
	assert.Contains(t, schema.Required, "file_type")
}

func TestConvertDocumentPathToolDescriptor(t *testing.T) {
	tool, err := ConvertDocumentPathTool()
	require.NoError(t, err)

	assert.Equal(t, manifest.ToolConvertDocumentPath, tool.Name)
	schema := inputSchema(t, tool)
	require.Contains(t, schema.Properties, "file_path")
	assert.NotEmpty(t, schema.Properties["file_path"].Description)
	assert.Contains(t, schema.Required, "file_path")
	require.NotNil(t, tool.Annotations)
	assert.True(t, tool.Annotations.ReadOnlyHint)
}
