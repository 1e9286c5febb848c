package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "json", Output: &buf})

	logger.With(String("case", "u-turn")).Debug(context.Background(), "iteration",
		Int("iteration", 3), Float("q1", 12.5), Bool("converged", false))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log record %q: %v", buf.String(), err)
	}

	if record["msg"] != "iteration" {
		t.Errorf("expected msg iteration, got %v", record["msg"])
	}
	if record["case"] != "u-turn" {
		t.Errorf("expected case field from With, got %v", record["case"])
	}
	if record["iteration"] != 3.0 || record["q1"] != 12.5 || record["converged"] != false {
		t.Errorf("unexpected fields in %v", record)
	}
}

func TestLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf})

	logger.Info(context.Background(), "hidden")
	logger.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestContextLogger(t *testing.T) {
	if LoggerFromContext(context.Background()) != nil {
		t.Error("expected no logger on an empty context")
	}

	logger := Noop()
	ctx := ContextWithLogger(context.Background(), logger)
	if LoggerFromContext(ctx) != logger {
		t.Error("expected the stored logger back")
	}

	if LoggerFromContext(ContextWithLogger(context.Background(), nil)) == nil {
		t.Error("a nil logger should be stored as noop")
	}
}
