package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// structured logger used across commands
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger; verbose enables debug level output.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger, using fallback: %v\n", err)
		logger = zap.NewExample()
	}
	return &Logger{logger.Sugar()}
}
