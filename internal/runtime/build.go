package runtime

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pocketlab/doctools/internal/audit"
	"github.com/pocketlab/doctools/internal/convert"
	"github.com/pocketlab/doctools/internal/limits"
	"github.com/pocketlab/doctools/internal/manifest"
	"github.com/pocketlab/doctools/internal/protocol"
	"github.com/pocketlab/doctools/internal/security"
	"github.com/pocketlab/doctools/internal/timeutil"
	"github.com/pocketlab/doctools/internal/tools"
)

// Builder constructs an MCP server from the manifest.
type Builder struct {
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records tool events.
	Audit audit.Logger
	// Guard applies rate and field-policy limits; nil disables guarding.
	Guard *limits.Guard
	// Converter extracts text from document payloads.
	Converter *convert.Converter
}

// Build creates an MCP server with the enabled tools registered.
func (b Builder) Build(cfg *manifest.Config) (*mcp.Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("manifest is nil")
	}
	if b.Converter == nil {
		b.Converter = convert.New(cfg.Conversion.MaxFileBytes)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	if cfg.ToolEnabled(manifest.ToolAdd) {
		if err := b.registerAdd(server, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.ToolEnabled(manifest.ToolConvertDocument) {
		if err := b.registerConvertDocument(server, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.ToolEnabled(manifest.ToolConvertDocumentPath) {
		if err := b.registerConvertDocumentPath(server, cfg); err != nil {
			return nil, err
		}
	}

	return server, nil
}

func (b Builder) registerAdd(server *mcp.Server, cfg *manifest.Config) error {
	tool, err := tools.AddTool()
	if err != nil {
		return err
	}
	applyOverrides(tool, cfg)

	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, input tools.AddInput) (*mcp.CallToolResult, protocol.AddResponse, error) {
		corrID := correlationID(input.CorrelationID)
		args := map[string]any{"a": input.A, "b": input.B}

		resp := protocol.AddResponse{Status: protocol.StatusSuccess, CorrelationID: corrID}
		if decision := b.begin(ctx, tool.Name, corrID, args); !decision.Allowed {
			resp.Status = protocol.StatusError
			resp.ErrorKind = decision.Kind
			resp.Reason = decision.Reason
			return nil, resp, nil
		}

		resp.Sum = tools.Add(input)
		b.recordOK(ctx, tool.Name, corrID, fmt.Sprintf("sum=%v", resp.Sum))
		return nil, resp, nil
	})
	return nil
}

func (b Builder) registerConvertDocument(server *mcp.Server, cfg *manifest.Config) error {
	tool, err := tools.ConvertDocumentTool()
	if err != nil {
		return err
	}
	applyOverrides(tool, cfg)
	timeout := toolTimeout(cfg, tool.Name)

	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, input tools.ConvertDocumentInput) (*mcp.CallToolResult, protocol.ConvertResponse, error) {
		corrID := correlationID(input.CorrelationID)
		args := map[string]any{"data_base64": input.DataBase64, "file_type": input.FileType}

		resp := protocol.ConvertResponse{Status: protocol.StatusSuccess, CorrelationID: corrID}
		if decision := b.begin(ctx, tool.Name, corrID, args); !decision.Allowed {
			return nil, denyConvert(resp, decision), nil
		}

		ctxTool := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctxTool, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		data, err := base64.StdEncoding.DecodeString(input.DataBase64)
		if err != nil {
			return nil, b.failConvert(ctx, tool.Name, resp, protocol.KindInvalidInput, "data_base64 is not valid base64"), nil
		}

		markdown, err := b.Converter.Bytes(data, input.FileType)
		if errors.Is(ctxTool.Err(), context.DeadlineExceeded) {
			return nil, b.failConvert(ctx, tool.Name, resp, protocol.KindTimeout, "conversion timed out"), nil
		}
		if err != nil {
			return nil, b.failConvert(ctx, tool.Name, resp, kindFor(err), err.Error()), nil
		}

		resp.Markdown = markdown
		if format, ferr := convert.NormalizeFormat(input.FileType); ferr == nil {
			resp.Format = format
		}
		b.recordOK(ctx, tool.Name, corrID, fmt.Sprintf("converted %d bytes", len(data)))
		return nil, resp, nil
	})
	return nil
}

func (b Builder) registerConvertDocumentPath(server *mcp.Server, cfg *manifest.Config) error {
	tool, err := tools.ConvertDocumentPathTool()
	if err != nil {
		return err
	}
	applyOverrides(tool, cfg)
	timeout := toolTimeout(cfg, tool.Name)

	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, input tools.ConvertDocumentPathInput) (*mcp.CallToolResult, protocol.ConvertResponse, error) {
		corrID := correlationID(input.CorrelationID)
		args := map[string]any{"file_path": input.FilePath}

		resp := protocol.ConvertResponse{Status: protocol.StatusSuccess, CorrelationID: corrID}
		if decision := b.begin(ctx, tool.Name, corrID, args); !decision.Allowed {
			return nil, denyConvert(resp, decision), nil
		}

		ctxTool := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctxTool, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		markdown, err := b.Converter.Path(input.FilePath)
		if errors.Is(ctxTool.Err(), context.DeadlineExceeded) {
			return nil, b.failConvert(ctx, tool.Name, resp, protocol.KindTimeout, "conversion timed out"), nil
		}
		if err != nil {
			return nil, b.failConvert(ctx, tool.Name, resp, kindFor(err), err.Error()), nil
		}

		resp.Markdown = markdown
		if format, ferr := convert.NormalizeFormat(filepath.Ext(input.FilePath)); ferr == nil {
			resp.Format = format
		}
		b.recordOK(ctx, tool.Name, corrID, "converted "+input.FilePath)
		return nil, resp, nil
	})
	return nil
}

// begin logs and audits the call, then consults the guard.
func (b Builder) begin(ctx context.Context, toolName, corrID string, args map[string]any) limits.Decision {
	if b.Logger != nil {
		b.Logger.Info("tool call", "tool", toolName, "correlation_id", corrID, "args", security.RedactArguments(args))
	}
	if b.Audit != nil {
		b.Audit.Record(ctx, audit.Event{Type: "tool_call", Tool: toolName, CorrelationID: corrID})
	}

	decision := b.Guard.Check(toolName, args)
	if !decision.Allowed && b.Audit != nil {
		b.Audit.Record(ctx, audit.Event{Type: "tool_denied", Tool: toolName, CorrelationID: corrID, Status: protocol.StatusError, Reason: decision.Reason})
	}
	return decision
}

func (b Builder) recordOK(ctx context.Context, toolName, corrID, summary string) {
	if b.Audit != nil {
		b.Audit.Record(ctx, audit.Event{Type: "tool_ok", Tool: toolName, CorrelationID: corrID, Status: protocol.StatusSuccess, Reason: summary})
	}
}

func denyConvert(resp protocol.ConvertResponse, decision limits.Decision) protocol.ConvertResponse {
	resp.Status = protocol.StatusError
	resp.ErrorKind = decision.Kind
	resp.Reason = decision.Reason
	return resp
}

func (b Builder) failConvert(ctx context.Context, toolName string, resp protocol.ConvertResponse, kind, reason string) protocol.ConvertResponse {
	resp.Status = protocol.StatusError
	resp.ErrorKind = kind
	resp.Reason = reason
	if b.Audit != nil {
		b.Audit.Record(ctx, audit.Event{Type: "tool_error", Tool: toolName, CorrelationID: resp.CorrelationID, Status: protocol.StatusError, Reason: reason})
	}
	return resp
}

// kindFor maps converter sentinel errors onto protocol error kinds.
func kindFor(err error) string {
	switch {
	case errors.Is(err, convert.ErrUnsupportedFormat):
		return protocol.KindUnsupportedFormat
	case errors.Is(err, convert.ErrNotFound):
		return protocol.KindNotFound
	case errors.Is(err, convert.ErrNotFile):
		return protocol.KindInvalidInput
	case errors.Is(err, convert.ErrTooLarge):
		return protocol.KindTooLarge
	case errors.Is(err, convert.ErrCorrupt):
		return protocol.KindCorruptDocument
	default:
		return protocol.KindInternal
	}
}

func correlationID(provided string) string {
	if provided != "" {
		return provided
	}
	return uuid.NewString()
}

func applyOverrides(tool *mcp.Tool, cfg *manifest.Config) {
	override, ok := cfg.Tool(tool.Name)
	if !ok {
		return
	}
	if override.Description != "" {
		tool.Description = override.Description
	}
}

func toolTimeout(cfg *manifest.Config, name string) time.Duration {
	override, ok := cfg.Tool(name)
	if !ok {
		return 0
	}
	return timeutil.ParseDurationOrDefault(override.Timeout, 0)
}
