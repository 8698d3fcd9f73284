package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrMatchRequestNotFound = errors.New("match request not found")
)

// InvalidTransitionError reports an illegal state-machine call, e.g. accepting
// a pair with no pending request. It is never swallowed: handlers surface it
// as a conflict.
type InvalidTransitionError struct {
	Op    string
	State PairState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a pair in state %q", e.Op, e.State)
}

// ValidationError reports malformed or missing caller input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
