package dto

import "time"

// LogRequest is the payload for submitting a log entry remotely
type LogRequest struct {
	Level   string `json:"level" binding:"required"`
	Message string `json:"message"`
}

// EntryResponse represents one retained log entry
type EntryResponse struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// EntriesResponse wraps a list of retained entries
type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
}

// LevelResponse reports the facade's current threshold
type LevelResponse struct {
	Level string `json:"level"`
}

// LevelRequest is the payload for replacing the threshold
type LevelRequest struct {
	Level string `json:"level" binding:"required"`
}
