// Package logging configures the process-wide zap logger. Commands call
// Init once at startup; library code reaches the logger through L, which
// falls back to a no-op logger so packages stay usable from tests.
package logging

import "go.uber.org/zap"

var logger *zap.SugaredLogger

// Init builds the global logger. Debug switches to the development config
// with debug-level output; otherwise production config at warn level keeps
// the operator summary lines as the only stdout traffic.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}

// L returns the global sugared logger, or a no-op logger before Init.
func L() *zap.SugaredLogger {
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger
}

// Sync flushes buffered log entries. Safe to call before Init.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
