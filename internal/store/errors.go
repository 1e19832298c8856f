package store

import "fmt"

// Error is a store-level error with a user-facing message.
type Error struct {
	Message string
	Err     error // underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
	}
}

// Sentinel errors. Compare with errors.Is against the sentinel, not
// against a wrapped copy.
var (
	ErrNotFound = &Error{
		Message: "book note not found",
	}

	ErrAlreadyExists = &Error{
		Message: "book note already exists",
	}
)
