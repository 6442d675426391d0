package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriterLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn", "json")
	logger.Info("dropped")
	logger.Warn("kept", "account_id", "hsa-1")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"account_id":"hsa-1"`) {
		t.Fatalf("expected json attribute, got %s", out)
	}

	buf.Reset()
	NewWithWriter(&buf, "not-a-level", "text").Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected text output at default info level, got %s", buf.String())
	}
}
