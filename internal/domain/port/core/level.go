package core

import (
	"fmt"
	"strings"

	errs "github.com/logsnack/logsnack/internal/domain/error"
)

// Level represents logging severity levels, ordered by seriousness.
// Thresholding compares ordinal position, so the declaration order here
// is part of the contract.
type Level int

const (
	// LevelDebug for detailed debug information
	LevelDebug Level = iota
	// LevelInfo for general operational information
	LevelInfo
	// LevelUserAction for user-initiated actions worth an audit trail
	LevelUserAction
	// LevelWarn for warnings
	LevelWarn
	// LevelError for errors
	LevelError
	// LevelBug for violated invariants; the only level that may terminate
	// the process (see the fatal sink)
	LevelBug
	// LevelDev for transient, never-committed diagnostic output
	LevelDev
)

// levelTags is the fixed two-character tag table used by line-formatting sinks.
var levelTags = map[Level]string{
	LevelDebug:      "D ",
	LevelInfo:       "I ",
	LevelUserAction: "UA",
	LevelWarn:       "W ",
	LevelError:      "EE",
	LevelBug:        "EE",
	LevelDev:        "XX",
}

// Tag returns the fixed two-character tag for the level.
func (l Level) Tag() string {
	if tag, ok := levelTags[l]; ok {
		return tag
	}
	return "??"
}

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelUserAction:
		return "user_action"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelBug:
		return "bug"
	case LevelDev:
		return "dev"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name (as found in configuration or API
// requests) into a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "user_action":
		return LevelUserAction, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "bug":
		return LevelBug, nil
	case "dev":
		return LevelDev, nil
	default:
		return LevelInfo, fmt.Errorf("%w %q", errs.ErrUnknownLevel, s)
	}
}
