package entity

import (
	"time"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// Entry is the domain record a dispatched log line becomes when a sink
// retains it (memory ring, database).
type Entry struct {
	Time    time.Time
	Level   core.Level
	Message string
}
