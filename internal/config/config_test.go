package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at an empty temp dir so the
// search path only finds what the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v\nDefault() = %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadEmbeddedWhenNoFiles(t *testing.T) {
	isolate(t)

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, want embedded", src)
	}
	if cfg.Grid.Rows != 4 || cfg.Grid.Cols != 4 || cfg.Grid.Spawn4Probability != 0.5 {
		t.Errorf("grid = %+v, want 4x4 with p=0.5", cfg.Grid)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)

	local := filepath.Join(dir, LocalPath)
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("grid:\n  rows: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != Source(LocalPath) || cfg.Grid.Rows != 5 {
		t.Errorf("local file: source=%q rows=%d, want %q rows=5", src, cfg.Grid.Rows, LocalPath)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Grid.Cols != 4 || cfg.Animation.SlideTicks != Default().Animation.SlideTicks {
		t.Errorf("partial file lost defaults: %+v", cfg)
	}

	user := filepath.Join(dir, ".t2048", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("grid:\n  rows: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Rows != 6 {
		t.Errorf("user file should win over local file, rows = %d", cfg.Grid.Rows)
	}

	custom := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("grid:\n  rows: 3\n  cols: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if src != Source(custom) || cfg.Grid.Rows != 3 || cfg.Grid.Cols != 7 {
		t.Errorf("custom file: source=%q grid=%+v", src, cfg.Grid)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := isolate(t)

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Load() with malformed YAML error = %v, want parse error", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  rows: 0\n  spawn4_probability: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid)
	if !errors.Is(err, ErrGridSize) || !errors.Is(err, ErrProbability) {
		t.Errorf("Load() with invalid values error = %v, want grid size and probability errors", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"zero cols", func(c *Config) { c.Grid.Cols = 0 }, ErrGridSize},
		{"negative probability", func(c *Config) { c.Grid.Spawn4Probability = -0.1 }, ErrProbability},
		{"negative threshold", func(c *Config) { c.Input.SwipeThreshold = -1 }, ErrThreshold},
		{"zero slide ticks", func(c *Config) { c.Animation.SlideTicks = 0 }, ErrAnimation},
		{"zero ticks with animation off", func(c *Config) {
			c.Animation.Enabled = false
			c.Animation.SlideTicks = 0
		}, nil},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, ErrLogLevel},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		want    float64
		wantErr bool
	}{
		{"", 0.5, false},
		{DifficultyEasy, 0.25, false},
		{DifficultyNormal, 0.5, false},
		{DifficultyHard, 0.75, false},
		{"nightmare", 0.5, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			err := ApplyPreset(&cfg, tt.preset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyPreset(%q) error = %v", tt.preset, err)
			}
			if cfg.Grid.Spawn4Probability != tt.want {
				t.Errorf("spawn4 = %v, want %v", cfg.Grid.Spawn4Probability, tt.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Rows = 6
	cfg.Log.File = "/tmp/t2048.log"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn4_probability: 0.5") {
		t.Errorf("Marshal() output missing yaml keys:\n%s", data)
	}

	back, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}

func TestExpandHome(t *testing.T) {
	dir := isolate(t)

	got, err := ExpandHome("~/logs/game.log")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(dir, "logs", "game.log"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/var/log/x"); got != "/var/log/x" {
		t.Errorf("absolute path changed: %q", got)
	}
}
