package model

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed input field. Each failing check keeps
// a stable message so callers can rely on the identity of the failure.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports that a referenced id does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s with id=%d", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InternalError reports an unexpected persistence failure, such as an insert
// that did not return a generated id.
type InternalError struct {
	msg string
	err error
}

func NewInternalError(msg string, err error) *InternalError {
	return &InternalError{msg: msg, err: err}
}

func (e *InternalError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *InternalError) Unwrap() error { return e.err }
