package sink

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// FatalSink is a no-op for every level except bug. A bug-level message means
// an invariant was violated: the sink dumps the current stack to the
// diagnostic stream and terminates the process with a non-zero status.
//
// Register it last so every other sink records the message before the
// process dies. It must never be the sole or first sink in a configuration
// where other sinks are expected to observe bug-level messages.
type FatalSink struct {
	out  io.Writer
	exit func(code int)
}

// NewFatalSink creates a fatal sink. A nil out defaults to os.Stderr; a nil
// exit defaults to os.Exit. Tests (and any environment that must not be
// killed) pass their own exit to swap the termination policy.
func NewFatalSink(out io.Writer, exit func(code int)) *FatalSink {
	if out == nil {
		out = os.Stderr
	}
	if exit == nil {
		exit = os.Exit
	}
	return &FatalSink{
		out:  out,
		exit: exit,
	}
}

// Log terminates the process on bug-level messages and ignores all others.
func (s *FatalSink) Log(level core.Level, message string) {
	if level != core.LevelBug {
		return
	}
	fmt.Fprintf(s.out, "BUG: %s\n", message)
	_, _ = s.out.Write(debug.Stack())
	s.exit(1)
}
