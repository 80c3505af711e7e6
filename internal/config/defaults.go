package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 4x4 grid with even odds of
// spawning a 2 or a 4.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:              4,
			Cols:              4,
			Spawn4Probability: 0.5,
		},
		Input: InputConfig{
			SwipeThreshold: 0.5,
			Mouse:          true,
		},
		Animation: AnimationConfig{
			Enabled:    true,
			SlideTicks: 6, // ~100ms at 60fps
			PopTicks:   4,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
