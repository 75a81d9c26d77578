// Package logging builds the structured loggers used across uikit.
//
// Loggers are constructed explicitly and handed to the components that need
// them. Nothing in this package is process-wide.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the slog handler used for output.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Options configures a Logger.
type Options struct {
	Path   string    // Full path for the log file including filename (creates parent directories). Empty logs to Output only.
	Level  string    // "debug", "info", "warn" or "error"; anything else means info
	Format Format    // Defaults to FormatJSON
	Output io.Writer // Console writer, defaults to os.Stdout
}

// Logger is a slog.Logger whose level can be changed at runtime.
type Logger struct {
	*slog.Logger

	levelVar *slog.LevelVar
	file     *os.File
}

// New creates a Logger. If a log file is configured but cannot be opened,
// New returns an error rather than silently falling back to the console.
func New(opts Options) (*Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	l := &Logger{levelVar: &slog.LevelVar{}}
	l.levelVar.Set(ParseLevel(opts.Level))

	writer := out
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		writer = io.MultiWriter(out, f)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     l.levelVar,
		AddSource: false,
	}

	var handler slog.Handler
	switch opts.Format {
	case FormatText:
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	l.Logger = slog.New(handler)
	return l, nil
}

// SetLevel sets the minimum level for the logger.
func (l *Logger) SetLevel(level slog.Level) {
	l.levelVar.Set(level)
}

// SetRawLevel parses and sets the level from a string (e.g., "debug", "info", "error").
func (l *Logger) SetRawLevel(level string) {
	l.levelVar.Set(ParseLevel(level))
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.levelVar.Level()
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record. Components use it when
// no logger was injected.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
