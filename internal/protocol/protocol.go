package protocol

// Tool execution statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Structured error kinds returned to MCP clients.
const (
	KindUnsupportedFormat = "unsupported_format"
	KindNotFound          = "not_found"
	KindInvalidInput      = "invalid_input"
	KindTooLarge          = "too_large"
	KindCorruptDocument   = "corrupt_document"
	KindRateLimited       = "rate_limited"
	KindTimeout           = "timeout"
	KindInternal          = "internal"
)

// AddResponse is the fixed JSON response of the add tool.
type AddResponse struct {
	// Status indicates the execution status.
	Status string `json:"status"`
	// Sum is the computed result on success.
	Sum float64 `json:"sum"`
	// ErrorKind classifies the failure, empty on success.
	ErrorKind string `json:"error_kind,omitempty"`
	// Reason is a human-readable message.
	Reason string `json:"reason,omitempty"`
	// CorrelationID links related requests.
	CorrelationID string `json:"correlation_id"`
}

// ConvertResponse is the fixed JSON response of the conversion tools.
type ConvertResponse struct {
	// Status indicates the execution status.
	Status string `json:"status"`
	// Markdown is the extracted document text on success.
	Markdown string `json:"markdown,omitempty"`
	// Format is the normalized source format.
	Format string `json:"format,omitempty"`
	// ErrorKind classifies the failure, empty on success.
	ErrorKind string `json:"error_kind,omitempty"`
	// Reason is a human-readable message.
	Reason string `json:"reason,omitempty"`
	// CorrelationID links related requests.
	CorrelationID string `json:"correlation_id"`
}
