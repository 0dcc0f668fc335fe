// Package logging builds depot's file-backed zap logger. The terminal belongs
// to the dashboard, so every record is written as a JSON line to a file under
// the configured log directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created inside the log directory.
const FileName = "depot.log"

// EventKey marks records that belong in the activity feed.
const EventKey = "event"

// New returns a JSON logger writing to dir/depot.log along with the resolved
// file path. Verbose enables debug records.
func New(dir string, verbose bool) (*zap.Logger, string, error) {
	if dir == "" {
		return nil, "", fmt.Errorf("log directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, FileName)

	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, "", fmt.Errorf("build logger: %w", err)
	}
	return logger, path, nil
}

// Event returns the field tagging a record as an activity event.
func Event(name string) zap.Field {
	return zap.String(EventKey, name)
}
