package lifecycle

import "errors"

// ErrNotFound means the chef event (or a record it depends on) does not exist.
var ErrNotFound = errors.New("chef event not found")

// ValidationError is a malformed or out-of-range input. Controllers map it
// to 400 with the message as field detail.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PreconditionError means the event is in the wrong status for the requested
// action. Controllers map it to 400; no mutation has happened.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

func preconditionErr(msg string) error {
	return &PreconditionError{Message: msg}
}
