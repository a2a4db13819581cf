package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	logDir      = "logs"
	logFileName = "plinko.log"
)

// setupLogging returns a JSON file logger under logs/ when debug is set and
// a no-op logger otherwise. The terminal is owned by tcell, so nothing is
// ever written to stdout or stderr.
func setupLogging(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{filepath.Join(logDir, logFileName)}
	cfg.ErrorOutputPaths = []string{filepath.Join(logDir, logFileName)}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
