package apperrors

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrInvalidID           = errors.New("invalid id format")
)

// ValidationError reports required fields that arrived missing or empty.
// Raised before any store call, so it always maps to a client error.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
