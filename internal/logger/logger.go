package logger

import (
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger is the global slog logger instance
	Logger *slog.Logger
)

// Init initializes the global logger. LOG_LEVEL selects the level
// (default info); LOG_FORMAT=text switches from JSON to text output for
// local runs.
func Init() {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}

	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", levelStr)
}

// With returns a logger carrying fixed attributes, e.g. a component name
func With(args ...any) *slog.Logger {
	return ensure().With(args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	ensure().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	ensure().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	ensure().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	ensure().Error(msg, args...)
}

// ensure lets library code log safely even when Init was never called,
// as happens in tests
func ensure() *slog.Logger {
	if Logger == nil {
		Logger = slog.Default()
	}
	return Logger
}
