// Package logger builds the application logger. The TUI owns stdout and
// stderr while it runs, so log output goes to the file named by the config;
// with no file configured the logger is a no-op.
package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	if cfg.Env != "production" {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}
