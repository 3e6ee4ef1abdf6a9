package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init initializes the logging system. Logs go to stderr unless file
// is non-empty, in which case they append to that file.
// Uses text format for human readability.
func Init(level, file string) error {
	var w io.Writer = os.Stderr
	if file != "" {
		if dir := filepath.Dir(file); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = f
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Redirect standard log package output to the same destination
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
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
