package apperror

import (
	"errors"
	"fmt"
)

// BusinessError is an expected, user-facing rule violation.
// Handlers surface its message verbatim with HTTP 400.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NotFoundError marks a missing resource. Handlers map it to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// New creates a BusinessError with a formatted message
func New(format string, args ...interface{}) error {
	return &BusinessError{Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a NotFoundError with a formatted message
func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// IsBusiness reports whether err (or anything it wraps) is a BusinessError
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// IsNotFound reports whether err (or anything it wraps) is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
