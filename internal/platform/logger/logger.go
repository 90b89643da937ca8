// Package logger holds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. It starts as a no-op so library code and
// tests can log without calling Init first.
var Log = zap.NewNop()

// Init replaces the no-op logger with a production zap logger. The
// level comes from LOG_LEVEL (debug, info, warn, error), defaulting to
// info when unset or unparsable.
func Init() {
	level := zapcore.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zapcore.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	log, err := cfg.Build()
	if err != nil {
		// Nothing sensible to do without a logger.
		panic(err)
	}
	Log = log
}
