package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrMediaUploadFailed = errors.New("media upload failed")
	ErrStatsUnavailable  = errors.New("stats unavailable")
	ErrRequestTimedOut   = errors.New("request timed out")
)

// ValidationError reports the offending fields of a rejected write.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
