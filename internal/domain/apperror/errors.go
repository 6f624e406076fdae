package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrDuplicate    = fmt.Errorf("%w: duplicate key", ErrValidation)
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error pairs one of the sentinels above with the message shown to clients.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) error { return &Error{Kind: kind, Msg: msg} }

// FieldError is a single failed constraint on an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field level failures. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Add appends a failure and returns the receiver for chaining.
func (e *ValidationError) Add(field, msg string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
	return e
}

// OrNil returns nil when no field failed, so callers can write
// `return v.OrNil()` at the end of a Validate method.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Invalid builds a single-field validation error.
func Invalid(field, msg string) error {
	return (&ValidationError{}).Add(field, msg)
}

// NotFound reports a missing entity, e.g. NotFound("Farmer") → "Farmer not found".
func NotFound(entity string) error { return New(ErrNotFound, entity+" not found") }

func Duplicate(msg string) error    { return New(ErrDuplicate, msg) }
func Conflict(msg string) error     { return New(ErrConflict, msg) }
func Unauthorized(msg string) error { return New(ErrUnauthorized, msg) }
func Forbidden(msg string) error    { return New(ErrForbidden, msg) }

// Message returns the client facing text of err.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return err.Error()
}
