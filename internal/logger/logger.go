// Package logger provides debug logging for varlint.
package logger

import (
	"fmt"
	"io"
	"sync"
)

//go:generate mockgen -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// debugLogger writes "[DEBUG]" prefixed lines to w.
type debugLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// New returns a logger writing to w when debug is enabled, and a noop logger otherwise.
func New(w io.Writer, debug bool) Logger {
	if !debug || w == nil {
		return NewNoopLogger()
	}
	return &debugLogger{w: w}
}

// Logf writes a formatted debug line.
func (d *debugLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "[DEBUG] "+format+"\n", args...)
}
