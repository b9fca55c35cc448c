package model

import "errors"

// Error kinds returned by the use cases. Controllers translate them into
// transport status codes at the boundary; anything unwrapped maps to an
// internal error.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// DomainError pairs an error kind with a user-facing message.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NewNotFoundError returns an error matching ErrNotFound via errors.Is.
func NewNotFoundError(message string) error {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

// NewValidationError returns an error matching ErrValidation via errors.Is.
func NewValidationError(message string) error {
	return &DomainError{Kind: ErrValidation, Message: message}
}
