// Package logging builds the structured logger shared by the CLI, the TUI
// host and the game. Output goes to a size-rotated file when one is
// configured, because a running TUI owns the terminal.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Logger bundles a logger with the resources backing it.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New returns a logger for cfg. When cfg.File is set, entries go to that
// file with rotation; otherwise they go to fallback (io.Discard when nil).
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*Logger, error) {
	level, err := cfg.ParseLevel()
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer = fallback
		closer io.Closer
	)
	if w == nil {
		w = io.Discard
	}

	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB, // MB
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	if cfg.File != "" {
		logger.SetFormatter(log.LogfmtFormatter)
	}

	return &Logger{Logger: logger, closer: closer}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}
