package sink

import (
	"context"
	"sync"

	"github.com/logsnack/logsnack/internal/domain/entity"
	errs "github.com/logsnack/logsnack/internal/domain/error"
	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// DefaultMemoryCapacity bounds the ring when configuration doesn't say.
const DefaultMemoryCapacity = 256

// MemorySink retains the most recent entries in a fixed-capacity ring. It
// doubles as an in-memory EntryRepository, which backs the HTTP query
// surface when no database sink is configured.
type MemorySink struct {
	mu           sync.Mutex
	entries      []entity.Entry
	next         int
	full         bool
	timeProvider core.TimeProvider
}

// NewMemorySink creates a memory sink holding up to capacity entries.
// Non-positive capacities fall back to DefaultMemoryCapacity.
func NewMemorySink(capacity int, timeProvider core.TimeProvider) *MemorySink {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemorySink{
		entries:      make([]entity.Entry, capacity),
		timeProvider: timeProvider,
	}
}

// Log retains the message, evicting the oldest entry when full.
func (s *MemorySink) Log(level core.Level, message string) {
	s.add(entity.Entry{
		Time:    s.timeProvider.Now(),
		Level:   level,
		Message: message,
	})
}

// Save stores an entry directly, implementing the EntryRepository port.
func (s *MemorySink) Save(_ context.Context, entry *entity.Entry) error {
	s.add(*entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *MemorySink) Recent(_ context.Context, limit int) ([]entity.Entry, error) {
	if limit <= 0 {
		return nil, errs.ErrInvalidLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	if s.full {
		n = len(s.entries)
	}
	if limit > n {
		limit = n
	}

	out := make([]entity.Entry, 0, limit)
	for i := 0; i < limit; i++ {
		// Walk backwards from the most recently written slot.
		idx := (s.next - 1 - i + len(s.entries)) % len(s.entries)
		out = append(out, s.entries[idx])
	}
	return out, nil
}

// Len returns the number of retained entries.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full {
		return len(s.entries)
	}
	return s.next
}

func (s *MemorySink) add(entry entity.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[s.next] = entry
	s.next++
	if s.next == len(s.entries) {
		s.next = 0
		s.full = true
	}
}
