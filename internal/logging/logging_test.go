package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	verbose := NewLogger(true)
	if !verbose.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should enable debug level")
	}

	quiet := NewLogger(false)
	if quiet.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("default logger should not enable debug level")
	}
	if !quiet.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("default logger should enable info level")
	}
}
