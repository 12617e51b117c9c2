package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// timestampLayout is the hours:minutes:seconds.millis format every
// line-formatting sink uses.
const timestampLayout = "15:04:05.000"

// ConsoleSink formats messages as "<timestamp> <tag> <message>" lines and
// writes them to an output stream, stdout by default. Messages longer than
// MaxMessageLen are cropped.
type ConsoleSink struct {
	out          io.Writer
	timeProvider core.TimeProvider
}

// NewConsoleSink creates a console sink writing to out. A nil out defaults
// to os.Stdout.
func NewConsoleSink(out io.Writer, timeProvider core.TimeProvider) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{
		out:          out,
		timeProvider: timeProvider,
	}
}

// Log writes one formatted line for the message.
func (s *ConsoleSink) Log(level core.Level, message string) {
	fmt.Fprintf(s.out, "%s %s %s\n",
		s.timeProvider.Now().Format(timestampLayout),
		level.Tag(),
		crop(message, MaxMessageLen),
	)
}
