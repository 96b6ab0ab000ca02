package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New builds the process-wide *slog.Logger. Output is JSON on stderr, teed to
// logFile when one is configured. The logger is also installed as the slog
// default so package-level slog calls work. The returned cleanup func closes
// the log file; callers must defer it.
func New(level, logFile string) (*slog.Logger, func(), error) {
	w := io.Writer(os.Stderr)
	cleanup := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
		cleanup = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
