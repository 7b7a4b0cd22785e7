package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/petal-labs/easel/core"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewDropsTime(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("hello", "k", "v")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if _, ok := lines[0]["time"]; ok {
		t.Error("log line contains time key")
	}
	if lines[0]["msg"] != "hello" || lines[0]["k"] != "v" {
		t.Errorf("log line = %v", lines[0])
	}
}

func TestNewLevel(t *testing.T) {
	var quiet, verbose bytes.Buffer
	New(&quiet, false).Debug("hidden")
	New(&verbose, true).Debug("shown")

	if quiet.Len() != 0 {
		t.Errorf("non-verbose logger wrote debug: %s", quiet.String())
	}
	if !strings.Contains(verbose.String(), "shown") {
		t.Errorf("verbose logger dropped debug: %s", verbose.String())
	}
}

func TestContextLogger(t *testing.T) {
	if FromContextOrDiscard(context.Background()) == nil {
		t.Fatal("FromContextOrDiscard() = nil")
	}

	var buf bytes.Buffer
	logger := New(&buf, false)
	ctx := NewContext(context.Background(), logger)
	if FromContextOrDiscard(ctx) != logger {
		t.Error("FromContextOrDiscard() did not return stored logger")
	}
}

func TestTelemetryHook(t *testing.T) {
	var buf bytes.Buffer
	hook := NewTelemetryHook(New(&buf, true))
	start := time.Now()

	hook.OnRequestStart(core.RequestStartEvent{ID: "gen-1", Provider: "openai", Model: "dall-e-3", Size: core.SizeSquare, Count: 1, Start: start})
	hook.OnRequestEnd(core.RequestEndEvent{ID: "gen-1", Provider: "openai", Model: "dall-e-3", Start: start, End: start.Add(time.Second), Bytes: 42, Stage: core.StageDecode})
	hook.OnRequestEnd(core.RequestEndEvent{
		Provider: "openai",
		Stage:    core.StageFetch,
		Err:      &core.Failure{Kind: core.FailureTransport, Err: errors.New("refused")},
	})

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0]["level"] != "DEBUG" || lines[0]["size"] != "square" || lines[0]["generation_id"] != "gen-1" {
		t.Errorf("start line = %v", lines[0])
	}
	if lines[1]["msg"] != "generation finished" || lines[1]["bytes"] != float64(42) {
		t.Errorf("end line = %v", lines[1])
	}
	if lines[2]["level"] != "ERROR" || lines[2]["kind"] != "transport_error" {
		t.Errorf("failure line = %v", lines[2])
	}
}
