// Package debug provides debug logging for pslcheck on top of log/slog.
package debug

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"
)

// EnvVar turns debug logging on when set to a true value.
const EnvVar = "PSLCHECK_DEBUG"

var (
	logger  *slog.Logger
	enabled bool
	mu      sync.RWMutex
)

func init() {
	on, _ := strconv.ParseBool(os.Getenv(EnvVar))
	Init(on)
}

// Init configures the global logger. When enable is false every record is
// discarded.
func Init(enable bool) {
	InitWriter(os.Stderr, enable)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, enable bool) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	level := slog.Level(slog.LevelError + 1)
	if enable {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { current().Debug(msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { current().Info(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { current().Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { current().Error(msg, args...) }

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger { return current().With(args...) }

// Logger returns the underlying slog.Logger instance.
func Logger() *slog.Logger { return current() }

// Timed logs msg at debug level with the elapsed time once the returned
// func is called:
//
//	defer debug.Timed("index validation", "model", name)()
func Timed(msg string, args ...any) func() {
	start := time.Now()
	return func() {
		current().Debug(msg, append(args, "duration", time.Since(start))...)
	}
}
