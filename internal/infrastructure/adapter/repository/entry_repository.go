package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/logsnack/logsnack/internal/domain/entity"
	errs "github.com/logsnack/logsnack/internal/domain/error"
	"github.com/logsnack/logsnack/internal/domain/port/core"
	"github.com/logsnack/logsnack/internal/domain/port/persistence"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/model"
)

// EntryRepository implements the entry persistence port using GORM
type EntryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance
func NewEntryRepository(db *gorm.DB) persistence.EntryRepository {
	return &EntryRepository{db: db}
}

// Save stores a single log entry
func (r *EntryRepository) Save(ctx context.Context, entry *entity.Entry) error {
	record := model.LogEntry{
		Level:     entry.Level.String(),
		Message:   entry.Message,
		CreatedAt: entry.Time,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save log entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (r *EntryRepository) Recent(ctx context.Context, limit int) ([]entity.Entry, error) {
	if limit <= 0 {
		return nil, errs.ErrInvalidLimit
	}

	var records []model.LogEntry
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}

	entries := make([]entity.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, toEntity(record))
	}
	return entries, nil
}

// toEntity maps a database record back to the domain entry. Rows written by
// older builds may carry level names this build doesn't know; those fall
// back to info rather than failing the query.
func toEntity(record model.LogEntry) entity.Entry {
	level, err := core.ParseLevel(record.Level)
	if err != nil {
		level = core.LevelInfo
	}
	return entity.Entry{
		Time:    record.CreatedAt,
		Level:   level,
		Message: record.Message,
	}
}
