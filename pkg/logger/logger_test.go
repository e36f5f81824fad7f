//go:build !integration

package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("development") })

	Debug("hidden")
	Info("catalog loaded", "movies", 3, "failure", errors.New("boom"))
	Error("reload failed", errors.New("disk gone"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (debug suppressed): %s", len(lines), buf.String())
	}

	var info map[string]any
	if err := json.Unmarshal(lines[0], &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info["message"] != "catalog loaded" || info["movies"] != float64(3) || info["failure"] != "boom" {
		t.Errorf("info entry = %v", info)
	}

	var errEntry map[string]any
	if err := json.Unmarshal(lines[1], &errEntry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if errEntry["level"] != "error" || errEntry["error"] != "disk gone" {
		t.Errorf("error entry = %v", errEntry)
	}
}
