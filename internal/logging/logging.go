package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// structured logger used by the cli
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes console-encoded logs to stderr. Only warnings and errors
// are shown unless verbose is set.
func NewLogger(verbose bool) *Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)

	return &Logger{zap.New(core).Sugar()}
}

// discards everything
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
