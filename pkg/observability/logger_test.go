package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "warn")

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("Expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, " W warn message") {
		t.Errorf("Expected warn line, got %q", out)
	}
	if !strings.Contains(out, " E error message") {
		t.Errorf("Expected error line, got %q", out)
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "debug")

	l.Info("calculating", Uint32("intensity", 10), String("attempt", "first"), Duration("delay", 2*time.Second))

	line := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(line, "calculating attempt=first delay=2s intensity=10") {
		t.Errorf("Unexpected line %q", line)
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "info").With(String("run_id", "abc"))

	l.Error("failed", Err(errors.New("boom")), Int("count", 3))

	line := buf.String()
	for _, want := range []string{"run_id=abc", "error=boom", "count=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in %q", want, line)
		}
	}
}

func TestLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "chatty")

	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug should be filtered at info level, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Expected info line, got %q", out)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("nothing to see")
	l.With(String("k", "v")).Warn("still nothing")
}
