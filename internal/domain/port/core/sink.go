package core

// Sink is a capability that turns a (level, message) pair into an observable
// side effect: print, persist, terminate. Sinks are independent of each other
// and must not assume any other sink exists. A sink never returns an error to
// the caller; logging is fire-and-forget.
type Sink interface {
	// Log performs the sink's effect for the given level and message.
	// The facade guarantees message is never empty (absent messages are
	// normalized to a placeholder before dispatch).
	Log(level Level, message string)
}
