package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, slog and the stdlib logger write text records to that
// file and Bubble Tea logs are enabled too.
func Setup(filename string, level slog.Level) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	// tea.LogToFile opens the file in append mode and points the stdlib
	// logger at it; SetDefault below then routes stdlib log through slog.
	f, err := tea.LogToFile(filename, "")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})))

	return func() { f.Close() }, nil
}

// IsDebugMode reports whether debug records reach the log.
func IsDebugMode() bool {
	return slog.Default().Enabled(context.Background(), slog.LevelDebug)
}

func Debug(msg string) {
	slog.Debug(msg)
}

func Debugf(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

func Infof(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

func Warnf(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

func Errorf(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

func logf(level slog.Level, format string, args ...any) {
	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}
	logger.Log(ctx, level, fmt.Sprintf(format, args...))
}
