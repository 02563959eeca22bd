package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if settings.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(settings.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
