// Package config provides YAML-based configuration loading for the 2048
// game: grid dimensions, spawn odds, input tuning, animation and logging.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for the game and its host.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Input     InputConfig     `yaml:"input"`
	Animation AnimationConfig `yaml:"animation"`
	Log       LogConfig       `yaml:"log"`
}

// GridConfig defines the board.
type GridConfig struct {
	Rows              int     `yaml:"rows"`
	Cols              int     `yaml:"cols"`
	Spawn4Probability float64 `yaml:"spawn4_probability"` // 0.0-1.0
}

// InputConfig tunes pointer handling.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"` // In board cells
	Mouse          bool    `yaml:"mouse"`
}

// AnimationConfig defines tile animation lengths in ticks.
type AnimationConfig struct {
	Enabled    bool `yaml:"enabled"`
	SlideTicks int  `yaml:"slide_ticks"`
	PopTicks   int  `yaml:"pop_ticks"`
}

// LogConfig defines log level and the optional rotating log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Validation errors.
var (
	ErrGridSize    = errors.New("config: grid rows and cols must be positive")
	ErrProbability = errors.New("config: spawn4_probability must be within [0, 1]")
	ErrAnimation   = errors.New("config: animation ticks must be positive")
	ErrThreshold   = errors.New("config: swipe_threshold must not be negative")
	ErrLogLevel    = errors.New("config: unknown log level")
)

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		errs = append(errs, fmt.Errorf("%w (got %dx%d)", ErrGridSize, c.Grid.Rows, c.Grid.Cols))
	}
	if c.Grid.Spawn4Probability < 0 || c.Grid.Spawn4Probability > 1 {
		errs = append(errs, fmt.Errorf("%w (got %v)", ErrProbability, c.Grid.Spawn4Probability))
	}
	if c.Input.SwipeThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w (got %v)", ErrThreshold, c.Input.SwipeThreshold))
	}
	if c.Animation.Enabled && (c.Animation.SlideTicks <= 0 || c.Animation.PopTicks <= 0) {
		errs = append(errs, fmt.Errorf("%w (slide %d, pop %d)", ErrAnimation, c.Animation.SlideTicks, c.Animation.PopTicks))
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseLevel returns the configured log level. An empty level means info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if strings.TrimSpace(l.Level) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w %q", ErrLogLevel, l.Level)
	}
	return level, nil
}
