package tilekit

import "go.uber.org/zap"

// logger receives diagnostics from the collision manager and animator.
// Silent until SetLogger is called.
var logger = zap.NewNop()

// globalDebug enables per-probe debug logging. Probes run every tick for
// every moving entity, so this stays off outside of diagnosis.
var globalDebug bool

// SetLogger installs the logger used for diagnostics. Passing nil restores
// the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("tilekit")
}

// Logger returns the logger currently in use.
func Logger() *zap.Logger {
	return logger
}

// SetDebug enables or disables debug logging of probes and resolver
// decisions.
func SetDebug(enabled bool) {
	globalDebug = enabled
}
