package log

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileOutput writes log lines as JSON to a file through zap.
type FileOutput struct {
	logger *zap.Logger
}

// NewFileOutput opens (or creates) path and returns an Output writing to it.
func NewFileOutput(path string) (*FileOutput, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log %s: %w", path, err)
	}

	return &FileOutput{logger: logger}, nil
}

// Write implements Output.
func (f *FileOutput) Write(level, message string) {
	switch level {
	case "DEBUG":
		f.logger.Debug(message)
	case "WARN":
		f.logger.Warn(message)
	case "ERROR":
		f.logger.Error(message)
	default:
		f.logger.Info(message)
	}
}

// Close flushes buffered entries.
func (f *FileOutput) Close() error {
	return f.logger.Sync()
}
