package tools

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pocketlab/doctools/internal/manifest"
)

// ConvertDocumentInput is the input of the convert_document tool.
type ConvertDocumentInput struct {
	DataBase64    string `json:"data_base64"`
	FileType      string `json:"file_type"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// ConvertDocumentPathInput is the input of the convert_document_path tool.
type ConvertDocumentPathInput struct {
	FilePath      string `json:"file_path"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// ConvertDocumentTool builds the descriptor for converting an in-memory
// document payload.
func ConvertDocumentTool() (*mcp.Tool, error) {
	schema, err := jsonschema.For[ConvertDocumentInput](nil)
	if err != nil {
		return nil, fmt.Errorf("convert_document schema: %w", err)
	}
	schema.Properties["data_base64"].Description = "base64-encoded document bytes"
	schema.Properties["file_type"].Description = "declared document format: pdf or docx"
	schema.Properties["correlation_id"].Description = "optional caller-supplied correlation id"

	return &mcp.Tool{
		Name:        manifest.ToolConvertDocument,
		Title:       "Convert document bytes to markdown",
		Description: "Converts binary document data (PDF or DOCX) to markdown-formatted text.",
		InputSchema: schema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}, nil
}

// ConvertDocumentPathTool builds the descriptor for converting a document
// on the local filesystem.
func ConvertDocumentPathTool() (*mcp.Tool, error) {
	schema, err := jsonschema.For[ConvertDocumentPathInput](nil)
	if err != nil {
		return nil, fmt.Errorf("convert_document_path schema: %w", err)
	}
	schema.Properties["file_path"].Description = "path to a PDF or DOCX file to convert to markdown"
	schema.Properties["correlation_id"].Description = "optional caller-supplied correlation id"

	return &mcp.Tool{
		Name:  manifest.ToolConvertDocumentPath,
		Title: "Convert document file to markdown",
		Description: "Converts a document file (PDF or DOCX) to markdown-formatted text. " +
			"Use it to extract readable content from documents on the local filesystem; " +
			"unsupported formats and unreadable files are reported as structured errors.",
		InputSchema: schema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}, nil
}
