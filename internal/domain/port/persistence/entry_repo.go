package persistence

import (
	"context"

	"github.com/logsnack/logsnack/internal/domain/entity"
)

// EntryRepository defines operations for persisting and querying log entries
type EntryRepository interface {
	// Save stores a single log entry
	Save(ctx context.Context, entry *entity.Entry) error
	// Recent returns up to limit entries, newest first
	Recent(ctx context.Context, limit int) ([]entity.Entry, error)
}
