// Package convert extracts markdown-formatted text from PDF and DOCX
// documents.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by the converter. Callers map these onto
// structured tool error kinds.
var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrNotFound          = errors.New("file not found")
	ErrNotFile           = errors.New("path is not a file")
	ErrTooLarge          = errors.New("input exceeds size limit")
	ErrCorrupt           = errors.New("document is malformed")
)

// Converter turns document payloads into extracted text. It holds no
// per-call state; concurrent use is safe.
type Converter struct {
	maxBytes int64
}

// New returns a Converter enforcing the given input size cap. A zero or
// negative cap disables the check.
func New(maxBytes int64) *Converter {
	return &Converter{maxBytes: maxBytes}
}

// Formats lists the supported document formats.
func Formats() []string {
	return []string{"pdf", "docx"}
}

// NormalizeFormat matches a declared format or file extension against the
// supported set, ignoring case and a leading dot.
func NormalizeFormat(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.TrimPrefix(normalized, ".")
	switch normalized {
	case "pdf", "docx":
		return normalized, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, value, strings.Join(Formats(), ", "))
	}
}

// Path converts the document at path, choosing the format from the file
// extension.
func (c *Converter) Path(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotFile, path)
	}
	if c.maxBytes > 0 && info.Size() > c.maxBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, info.Size(), c.maxBytes)
	}

	format, err := NormalizeFormat(filepath.Ext(path))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return c.Bytes(data, format)
}

// Bytes converts an in-memory document of the declared format.
func (c *Converter) Bytes(data []byte, format string) (string, error) {
	normalized, err := NormalizeFormat(format)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty input", ErrCorrupt)
	}
	if c.maxBytes > 0 && int64(len(data)) > c.maxBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, len(data), c.maxBytes)
	}

	switch normalized {
	case "pdf":
		return extractPDF(data)
	case "docx":
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
