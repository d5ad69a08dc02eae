package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific input field.
// Value carries the offending input back to the caller.
type FieldError struct {
	Field string      `json:"field"`
	Error string      `json:"message"`
	Value interface{} `json:"value"`
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
