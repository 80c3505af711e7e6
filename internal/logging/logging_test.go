package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func TestNewWritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	cfg.Level = "debug"

	l, err := New(cfg, "t2048", &buf)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer l.Close()

	l.Debug("spawned", "value", 4)
	out := buf.String()
	if !strings.Contains(out, "spawned") || !strings.Contains(out, "value=4") {
		t.Errorf("log output = %q, want message and fields", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	cfg.Level = "warn"

	l, err := New(cfg, "", &buf)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q, want only the warning", buf.String())
	}
}

func TestNewWritesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().Log
	cfg.File = filepath.Join(dir, "nested", "t2048.log")

	l, err := New(cfg, "t2048", nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	l.Info("game over", "score", 12)
	if err := l.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "score=12") {
		t.Errorf("log file = %q, want score field", data)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "loud"
	if _, err := New(cfg, "", nil); err == nil {
		t.Error("New() with an unknown level should fail")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nowhere")
	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
