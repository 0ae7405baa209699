// Package log provides leveled logging with pluggable outputs for UI display
// and debug files.
package log

import (
	"fmt"
	"strings"
	"sync"
)

// Level represents log levels.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Output interface for log messages.
type Output interface {
	Write(level, message string)
}

// Logger handles log messages.
type Logger struct {
	mu      sync.RWMutex
	level   Level
	outputs []Output
}

var defaultLogger = &Logger{level: LevelInfo}

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// New creates a logger at the given level with no outputs.
func New(level Level) *Logger {
	return &Logger{level: level}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput replaces all outputs with output.
func (l *Logger) SetOutput(output Output) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs = nil
	if output != nil {
		l.outputs = []Output{output}
	}
}

// AddOutput adds an output alongside the existing ones.
func (l *Logger) AddOutput(output Output) {
	if output == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs = append(l.outputs, output)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level {
		return
	}

	if len(l.outputs) == 0 {
		return
	}

	message := fmt.Sprintf(format, args...)
	for _, out := range l.outputs {
		out.Write(level.String(), message)
	}
}

// Package-level functions use the default logger
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }
func Info(format string, args ...interface{})  { defaultLogger.Info(format, args...) }
func Warn(format string, args ...interface{})  { defaultLogger.Warn(format, args...) }
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
