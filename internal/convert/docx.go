package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// extractDOCX walks the document body and renders paragraphs and tables as
// text blocks separated by blank lines.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var blocks []string
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			if text := strings.TrimSpace(block.String()); text != "" {
				blocks = append(blocks, text)
			}
		case *docx.Table:
			if text := strings.TrimSpace(block.String()); text != "" {
				blocks = append(blocks, text)
			}
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}
