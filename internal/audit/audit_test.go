package audit

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocketlab/doctools/internal/log"
)

func TestRecordWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := New(log.NewWithWriter(&buf, "info"))

	logger.Record(context.Background(), Event{
		Type:          "tool_ok",
		Tool:          "add",
		CorrelationID: "corr-1",
		Status:        "success",
		Reason:        "sum=3",
	})

	out := buf.String()
	assert.Contains(t, out, `"msg":"audit"`)
	assert.Contains(t, out, `"type":"tool_ok"`)
	assert.Contains(t, out, `"tool":"add"`)
	assert.Contains(t, out, `"correlation_id":"corr-1"`)
	assert.Contains(t, out, `"status":"success"`)
}

func TestRecordNilLoggerIsNoop(t *testing.T) {
	var l *StdLogger
	l.Record(context.Background(), Event{Type: "tool_call"})

	New(nil).Record(context.Background(), Event{Type: "tool_call"})
}
