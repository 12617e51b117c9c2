package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// FileSink appends console-formatted lines to a log file, creating the
// parent directory on first use.
type FileSink struct {
	mu           sync.Mutex
	file         *os.File
	timeProvider core.TimeProvider
}

// NewFileSink opens (or creates) the log file at path for appending.
func NewFileSink(path string, timeProvider core.TimeProvider) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileSink{
		file:         file,
		timeProvider: timeProvider,
	}, nil
}

// Log appends one formatted line. Write failures are swallowed; logging
// never propagates errors to the caller.
func (s *FileSink) Log(level core.Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.file, "%s %s %s\n",
		s.timeProvider.Now().Format(timestampLayout),
		level.Tag(),
		crop(message, MaxMessageLen),
	)
}

// Close closes the underlying file handle.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
