package logger

import (
	"bytes"
	"strings"
	"testing"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) LogTrace(message string) { r.lines = append(r.lines, "TRACE "+message) }
func (r *recordingLogger) LogDebug(message string) { r.lines = append(r.lines, "DEBUG "+message) }
func (r *recordingLogger) LogInfo(message string)  { r.lines = append(r.lines, "INFO "+message) }
func (r *recordingLogger) LogWarn(message string)  { r.lines = append(r.lines, "WARN "+message) }
func (r *recordingLogger) LogError(message string) { r.lines = append(r.lines, "ERROR "+message) }

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*FileLogger)(nil)
	_ Logger = (*MultiLogger)(nil)
	_ Logger = (*NoOpLogger)(nil)
)

// TestMultiLoggerFanOut verifies every logger receives every message
func TestMultiLoggerFanOut(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}
	ml := NewMultiLogger(a, nil, b)

	ml.LogTrace("t")
	ml.LogDebug("d")
	ml.LogInfo("i")
	ml.LogWarn("w")
	ml.LogError("e")

	want := []string{"TRACE t", "DEBUG d", "INFO i", "WARN w", "ERROR e"}
	for _, r := range []*recordingLogger{a, b} {
		if strings.Join(r.lines, "|") != strings.Join(want, "|") {
			t.Errorf("got %v, want %v", r.lines, want)
		}
	}
}

// TestMultiLoggerPerLoggerLevels verifies each logger keeps its own filter
func TestMultiLoggerPerLoggerLevels(t *testing.T) {
	quiet := &bytes.Buffer{}
	verbose := &bytes.Buffer{}
	ml := NewMultiLogger(NewConsoleLogger(quiet, "error"), NewConsoleLogger(verbose, "debug"))

	ml.LogInfo("scan started")

	if quiet.Len() != 0 {
		t.Errorf("expected nothing at error level, got %q", quiet.String())
	}
	if !strings.Contains(verbose.String(), "scan started") {
		t.Errorf("expected message at debug level, got %q", verbose.String())
	}
}

// TestNoOpLogger verifies the no-op logger accepts all calls
func TestNoOpLogger(t *testing.T) {
	l := NewNoOpLogger()
	l.LogTrace("x")
	l.LogDebug("x")
	l.LogInfo("x")
	l.LogWarn("x")
	l.LogError("x")
}
