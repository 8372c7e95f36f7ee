// Package rmilog wraps log/slog with the domain-specific helper methods the
// CLI/bench layer logs through. The core rmi package is a pure, silent
// library (spec.md §5) and never imports this package — logging belongs to
// the collaborators around it, the way hupe1980-vecgo/logger.go wraps
// slog.Logger for its own store/index layer.
package rmilog

import (
	"log/slog"
	"os"
	"time"
)

// Logger adapts slog.Logger with helpers shaped around the operations
// cmd/rmi-bench performs: loading a dataset, building an Rmi, running a
// sweep.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing structured text to stderr at level, the way
// hupe1980-vecgo/logger.go's New constructs its default handler.
func New(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// WithComponent returns a Logger scoped to component, the way
// hupe1980-vecgo/logger.go's With helpers scope a logger to a store name.
func (self *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: self.Logger.With("component", component)}
}

// LogBuild reports a completed Rmi construction.
func (self *Logger) LogBuild(nKeys, layer2Size int, elapsed time.Duration, sizeBytes int64) {
	self.Info("build complete",
		"n_keys", nKeys,
		"layer2_size", layer2Size,
		"elapsed", elapsed,
		"size_bytes", sizeBytes,
	)
}

// LogSweepStep reports one repetition of an internal/bench sweep.
func (self *Logger) LogSweepStep(layer2Size, rep int, buildNs, lookupNs int64) {
	self.Info("sweep step",
		"layer2_size", layer2Size,
		"rep", rep,
		"build_ns", buildNs,
		"lookup_ns", lookupNs,
	)
}
