// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFileName is the file created inside the state directory.
const LogFileName = "tables.log"

// Options configures New.
type Options struct {
	// Dir receives the log file. Empty disables file logging.
	Dir string
	// Level is a zap level name ("debug", "info", ...). Empty means info.
	Level string
	// Verbose forces debug level.
	Verbose bool
}

// New builds a JSON logger writing to Dir/tables.log. The terminal belongs to
// the shell while it runs, so the logger never writes to stdout or stderr.
// With no Dir a no-op logger is returned.
func New(opts Options) (*zap.Logger, error) {
	if opts.Dir == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{filepath.Join(opts.Dir, LogFileName)}
	config.ErrorOutputPaths = config.OutputPaths
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// DSN is a zap field carrying a masked connection string.
func DSN(dsn string) zap.Field {
	return zap.String("dsn", Mask(dsn))
}
