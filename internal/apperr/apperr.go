// Package apperr defines the error taxonomy shared by all handlers and
// services. Handlers classify with errors.Is and never leak anything but a
// status code and a message string to the client.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Services return these directly or wrap them with
// fmt.Errorf("%w: ...") so the transport boundary can classify while the
// log line keeps the detail.
var (
	ErrValidation        = errors.New("validation failed")
	ErrAlreadyExists     = errors.New("user already exists")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrExtraction        = errors.New("extraction failed")
	ErrStorage           = errors.New("storage failure")
)

// validationError carries a caller-facing message without the sentinel
// prefix; errors.Is still matches ErrValidation.
type validationError struct {
	msg string
}

func (e *validationError) Error() string        { return e.msg }
func (e *validationError) Is(target error) bool { return target == ErrValidation }

// Validationf returns a validation error with a caller-facing message.
func Validationf(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// Storage wraps a backing-store failure. The underlying error stays in the
// chain for logging but is never shown to the client.
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// Extraction wraps a remote extraction failure.
func Extraction(err error) error {
	return fmt.Errorf("%w: %v", ErrExtraction, err)
}
