package services

import "errors"

// ErrValidation marks errors caused by bad caller input. Handlers answer it
// with 400 and the error text; anything else reaching a handler's default
// branch is an infrastructure failure and becomes a generic 500.
var ErrValidation = errors.New("validation failed")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &validationError{msg: msg} }
