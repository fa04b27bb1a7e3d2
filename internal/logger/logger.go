// Package logger wraps zap configuration for the application.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger so callers can defer initialization
// until the configured level is known.
type Logger struct {
	// Log is the underlying zap logger. Safe to use after Init.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger. Call Init to
// replace it with a real one.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level
// ("Debug", "Info", "Warn", "Error") and installs it.
func (l *Logger) Init(level string) error {
	return l.init(level, nil)
}

// InitFile is like Init but writes to path instead of stderr, for
// processes whose terminal is owned by an interactive UI.
func (l *Logger) InitFile(level, path string) error {
	return l.init(level, []string{path})
}

func (l *Logger) init(level string, outputs []string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if len(outputs) > 0 {
		cfg.OutputPaths = outputs
		cfg.ErrorOutputPaths = outputs
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = logger
	return nil
}
