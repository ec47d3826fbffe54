package models

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindConflict   ErrorKind = "conflict"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindInternal   ErrorKind = "internal"
)

// WorkflowError is the failure shape returned across the approval workflow boundary.
// Message is safe to show to the caller.
type WorkflowError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *WorkflowError) Error() string {
	if e.cause != nil && e.Kind == ErrorKindInternal {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *WorkflowError) Cause() error {
	return e.cause
}

func (e *WorkflowError) Unwrap() error {
	return e.cause
}

func NewValidationError(format string, args ...interface{}) error {
	return &WorkflowError{Kind: ErrorKindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) error {
	return &WorkflowError{Kind: ErrorKindConflict, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &WorkflowError{Kind: ErrorKindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInternalError wraps an infrastructure failure. A WorkflowError passed in is returned as is.
func NewInternalError(err error, message string) error {
	if we, ok := AsWorkflowError(err); ok {
		return we
	}
	return &WorkflowError{Kind: ErrorKindInternal, Message: message, cause: err}
}

func AsWorkflowError(err error) (*WorkflowError, bool) {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we, true
	}
	return nil, false
}

// ErrorKindOf returns the kind of a workflow error, internal for anything else.
func ErrorKindOf(err error) ErrorKind {
	if we, ok := AsWorkflowError(err); ok {
		return we.Kind
	}
	return ErrorKindInternal
}
