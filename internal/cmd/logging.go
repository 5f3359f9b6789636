package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runger/presence/internal/config"
)

// newLogger builds a text logger at the configured level. It writes to
// log.file when set, otherwise to stderr. The returned func closes the file.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	if path := logFilePath(cfg); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	return slog.New(handler), cleanup, nil
}

// logFilePath resolves log.file, expanding "auto" to the per-user state dir.
func logFilePath(cfg *config.Config) string {
	if cfg.Log.File == config.LogFileAuto {
		return config.DefaultPaths().LogFile()
	}
	return cfg.Log.File
}
