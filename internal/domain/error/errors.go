package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUnknownLevel   = 4001
	CodeInvalidRequest = 4002
	CodeInvalidLimit   = 4003

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrUnknownLevel is returned when a level name cannot be parsed
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownSink is returned when configuration names a sink that
	// does not exist
	ErrUnknownSink = errors.New("unknown sink")

	// ErrInvalidLimit is returned when a query limit is zero or negative
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem connecting
	// to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnknownLevel):
		return CodeUnknownLevel
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidLimit):
		return CodeInvalidLimit
	default:
		return CodeInternalServer
	}
}

// SinkError represents a failure while building or closing a configured sink
type SinkError struct {
	Name string
	Err  error
}

// Error implements the error interface for SinkError
func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error
func (e *SinkError) Unwrap() error {
	return e.Err
}

// NewSinkError wraps an error with the name of the sink it came from
func NewSinkError(name string, err error) error {
	return &SinkError{Name: name, Err: err}
}

// IsUnknownLevelError checks if the error is an unknown level error
func IsUnknownLevelError(err error) bool {
	return errors.Is(err, ErrUnknownLevel)
}

// IsUnknownSinkError checks if the error is an unknown sink error
func IsUnknownSinkError(err error) bool {
	return errors.Is(err, ErrUnknownSink)
}
