package sink

import (
	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// NoopSink implements the Sink interface but doesn't do anything.
// Useful for testing or when a configured sink is disabled.
type NoopSink struct{}

// NewNoopSink creates a new no-op sink
func NewNoopSink() core.Sink {
	return &NoopSink{}
}

// Log discards the message
func (s *NoopSink) Log(level core.Level, message string) {
	// Do nothing
}
