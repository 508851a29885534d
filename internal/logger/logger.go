// Package logger wraps zap so commands start with a safe no-op logger and
// swap in a configured one once the desired level is known.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger carries the shared zap instance for the application.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger backed by a no-op zap instance. Call Init to replace
// it with a real one.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production logger at the given level and installs it.
// Output goes to stderr, keeping stdout free for command output.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}
