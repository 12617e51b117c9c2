package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// defaultCallDepth is the number of frames above DebugSink.Log where the
// facade call site lives. Depth 1 is Log's direct caller; through the facade
// the chain is:
//
//	DebugSink.Log -> logger.dispatch -> Logger.Log -> Logger.<level> -> caller
//
// Changing the facade's dispatch path requires revisiting this constant.
const defaultCallDepth = 4

// scrapeLine is the 1-based line of a rendered stack-trace text that names
// the frame of interest when falling back to textual scraping.
const scrapeLine = 8

// The fallback scrape depends on the exact textual shape of a rendered Go
// stack trace, which is a property of the runtime and may silently change
// across versions. It is only reached when structured capture fails, and it
// degrades to "?" on any mismatch.
var (
	scrapeFuncPattern = regexp.MustCompile(`^(?:.*/)?([^/(\s]+)\(`)
	scrapeFilePattern = regexp.MustCompile(`([^\s/]+\.go:\d+)`)
)

// DebugSink formats messages like ConsoleSink but appends a best-effort
// caller location suffix "funcName [file:line]". Location capture uses the
// runtime's structured call-site facility and only falls back to scraping
// rendered stack text when that fails; either field degrades to "?".
type DebugSink struct {
	out          io.Writer
	timeProvider core.TimeProvider
	depth        int
}

// NewDebugSink creates a debug sink writing to out. A nil out defaults to
// os.Stdout. The sink assumes it is invoked through the logging facade; use
// SetCallDepth when wiring it differently.
func NewDebugSink(out io.Writer, timeProvider core.TimeProvider) *DebugSink {
	if out == nil {
		out = os.Stdout
	}
	return &DebugSink{
		out:          out,
		timeProvider: timeProvider,
		depth:        defaultCallDepth,
	}
}

// SetCallDepth overrides how many frames above Log the caller location is
// resolved at. Depth 1 is the code that calls Log directly; the default
// accounts for the facade's dispatch path.
func (s *DebugSink) SetCallDepth(depth int) {
	s.depth = depth
}

// Log writes one formatted line with the caller location appended.
func (s *DebugSink) Log(level core.Level, message string) {
	fn, loc := s.callerLocation()
	fmt.Fprintf(s.out, "%s %s %s %s [%s]\n",
		s.timeProvider.Now().Format(timestampLayout),
		level.Tag(),
		crop(message, MaxMessageLen),
		fn,
		loc,
	)
}

// callerLocation resolves the logging call site, preferring structured
// capture over stack-text scraping.
func (s *DebugSink) callerLocation() (fn, loc string) {
	// The extra frame is callerLocation itself, so depth counts from Log.
	pc, file, line, ok := runtime.Caller(s.depth + 1)
	if !ok {
		return scrapeStack(string(debug.Stack()))
	}
	fn = "?"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = shortFuncName(f.Name())
	}
	return fn, fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// shortFuncName strips the package path from a fully qualified function
// name, keeping "pkg.Func".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// scrapeStack extracts a caller location from rendered stack-trace text.
// The function name and the file:line reference are matched independently;
// a stack shorter than the scraped frame, or a pattern miss, leaves the
// corresponding field as "?".
func scrapeStack(stack string) (fn, loc string) {
	fn, loc = "?", "?"
	lines := strings.Split(stack, "\n")
	if len(lines) <= scrapeLine {
		return fn, loc
	}
	if m := scrapeFuncPattern.FindStringSubmatch(lines[scrapeLine-1]); m != nil {
		fn = m[1]
	}
	if m := scrapeFilePattern.FindStringSubmatch(lines[scrapeLine]); m != nil {
		loc = m[1]
	}
	return fn, loc
}
