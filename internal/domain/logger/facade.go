package logger

import (
	"sync/atomic"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// NoMessage is the placeholder dispatched when a caller logs an empty message,
// so sinks never observe "no message".
const NoMessage = "_"

// snapshot is the immutable facade state. Reconfiguration publishes a fresh
// snapshot atomically; dispatch reads it exactly once per call, so a call in
// flight can never observe a mixed old/new sink list or a torn threshold.
type snapshot struct {
	sinks     []core.Sink
	threshold core.Level
}

// Logger fans leveled messages out to an ordered list of sinks, suppressing
// anything below the current threshold. It is safe for concurrent use; the
// expected lifecycle is construction at process start, at most one
// reconfiguration during bootstrap, and reads on every logging call after.
type Logger struct {
	state atomic.Pointer[snapshot]
}

// New creates a facade with the given threshold and sinks. Sinks are invoked
// in the order given here; a sink that may terminate the process (the fatal
// sink) should be passed last so earlier sinks record the message first.
func New(threshold core.Level, sinks ...core.Sink) *Logger {
	l := &Logger{}
	l.Configure(threshold, sinks...)
	return l
}

// Configure replaces the threshold and the entire sink list wholesale.
// Calls already dispatching keep the snapshot they read; calls issued after
// Configure returns see only the new state.
func (l *Logger) Configure(threshold core.Level, sinks ...core.Sink) {
	s := &snapshot{
		sinks:     make([]core.Sink, len(sinks)),
		threshold: threshold,
	}
	copy(s.sinks, sinks)
	l.state.Store(s)
}

// SetThreshold republishes the current sink list with a new threshold.
func (l *Logger) SetThreshold(threshold core.Level) {
	cur := l.state.Load()
	l.state.Store(&snapshot{sinks: cur.sinks, threshold: threshold})
}

// Threshold returns the current minimum level that reaches any sink.
func (l *Logger) Threshold() core.Level {
	return l.state.Load().threshold
}

// Sinks returns a copy of the current sink list.
func (l *Logger) Sinks() []core.Sink {
	cur := l.state.Load()
	sinks := make([]core.Sink, len(cur.sinks))
	copy(sinks, cur.sinks)
	return sinks
}

// Enabled reports whether a message at the given level would reach any sink.
// Callers with expensive message construction should guard with this, since
// Log performs no work at all for suppressed levels.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.state.Load().threshold
}

// Log dispatches a message to every sink in the current snapshot, in order.
// Levels below the threshold are suppressed before any formatting happens.
// An empty message is normalized to NoMessage. Each sink invocation is
// isolated, so a panicking sink cannot suppress the sinks after it.
func (l *Logger) Log(level core.Level, message string) {
	cur := l.state.Load()
	if level < cur.threshold {
		return
	}
	if message == "" {
		message = NoMessage
	}
	for _, sink := range cur.sinks {
		dispatch(sink, level, message)
	}
}

// dispatch invokes a single sink, swallowing any panic. Logging never
// propagates failures back to the caller.
func dispatch(sink core.Sink, level core.Level, message string) {
	defer func() {
		_ = recover()
	}()
	sink.Log(level, message)
}

// Debug logs detailed debug information.
func (l *Logger) Debug(message string) {
	l.Log(core.LevelDebug, message)
}

// Info logs general operational information.
func (l *Logger) Info(message string) {
	l.Log(core.LevelInfo, message)
}

// UserAction logs a user-initiated action.
func (l *Logger) UserAction(message string) {
	l.Log(core.LevelUserAction, message)
}

// Warn logs a warning.
func (l *Logger) Warn(message string) {
	l.Log(core.LevelWarn, message)
}

// Error logs an error.
func (l *Logger) Error(message string) {
	l.Log(core.LevelError, message)
}

// Bug logs a violated invariant. With a fatal sink registered this is the
// last message the process emits.
func (l *Logger) Bug(message string) {
	l.Log(core.LevelBug, message)
}

// Dev logs transient diagnostic output. Calls to this level are not meant to
// be committed.
func (l *Logger) Dev(message string) {
	l.Log(core.LevelDev, message)
}
