package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tickermatch/internal/logging"
)

func TestConsoleHandlerIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	scoped := logging.NewComponentLogger(logger, "scoring")
	scoped.Info("scored pairs", logging.Args(logging.Int("pairs", 4), logging.Float64("max", 0.91))...)

	line := buf.String()
	if !strings.Contains(line, "INFO scoring: scored pairs") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "pairs=4") || !strings.Contains(line, "max=0.91") {
		t.Fatalf("expected attrs in line: %q", line)
	}
}

func TestJSONFormatLowercasesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("coverage gap")
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected lowercase level key: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info suppressed at warn level, got %q", buf.String())
	}
	logger.Error("visible")
	if !strings.Contains(buf.String(), "ERROR") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("nothing")
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("expected nop logger to be disabled")
	}
}
