// Package log is the zap based logger used across the module. It logs
// nowhere until SetLogger installs a real logger.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L returns the current logger.
func L() *zap.Logger { return zap.L() }

// SetLogger replaces the global logger and returns a function restoring the
// previous one.
func SetLogger(logger *zap.Logger) func() {
	return zap.ReplaceGlobals(logger)
}

// NewFileLogger returns a development logger appending to path.
func NewFileLogger(path string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}

func Debug(msg string, fields ...zap.Field) { zap.L().Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { zap.L().Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { zap.L().Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { zap.L().Error(msg, fields...) }
