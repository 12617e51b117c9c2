package model

import (
	"time"
)

// LogEntry represents the database model for retained log entries
type LogEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Level     string    `gorm:"not null;size:20;index"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for LogEntry
func (LogEntry) TableName() string {
	return "log_entries"
}
