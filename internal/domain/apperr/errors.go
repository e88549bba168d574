package apperr

import (
	"errors"
	"fmt"
)

// Tagged failure kinds shared by every engine. Handlers map them to
// 404 / 400 / 409 / 500 respectively; anything untagged is treated as
// internal.

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

// ValidationError carries a business-rule violation verbatim, including any
// computed figures (e.g. the LTV limit), so the caller can display it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

// ConflictError marks a lost optimistic-concurrency race on a balance
// mutation. Engines retry a bounded number of times before surfacing it.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(msg string) error { return &ConflictError{Msg: msg} }

func IsConflict(err error) bool {
	var t *ConflictError
	return errors.As(err, &t)
}

// InternalError wraps a storage or infrastructure failure. The detail is for
// logs; callers get a generic message.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "internal error: " + e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }

func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &InternalError{Err: err}
}

func IsInternal(err error) bool {
	var t *InternalError
	return errors.As(err, &t)
}
