package sink

import (
	"context"

	"github.com/logsnack/logsnack/internal/domain/entity"
	"github.com/logsnack/logsnack/internal/domain/port/core"
	"github.com/logsnack/logsnack/internal/domain/port/persistence"
)

// DatabaseSink persists every dispatched message through the entry
// repository port. Each write is bounded by the configured query timeout and
// failures are swallowed: a slow or down database must never fail, or leak
// into, the logging caller.
type DatabaseSink struct {
	repo         persistence.EntryRepository
	timeProvider core.TimeProvider
	timeout      core.Duration
}

// NewDatabaseSink creates a sink persisting entries through repo.
func NewDatabaseSink(repo persistence.EntryRepository, timeProvider core.TimeProvider, timeout core.Duration) *DatabaseSink {
	if timeout <= 0 {
		timeout = 5 * core.Second
	}
	return &DatabaseSink{
		repo:         repo,
		timeProvider: timeProvider,
		timeout:      timeout,
	}
}

// Log stores the message as a log entry.
func (s *DatabaseSink) Log(level core.Level, message string) {
	ctx, cancel := s.timeProvider.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	entry := &entity.Entry{
		Time:    s.timeProvider.Now(),
		Level:   level,
		Message: message,
	}
	_ = s.repo.Save(ctx, entry)
}
