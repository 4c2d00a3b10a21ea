// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a lookup that matched nothing.
var ErrNotFound = errors.New("not found")

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// NewUserErrorf creates a user-friendly error with a formatted message.
func NewUserErrorf(err error, format string, args ...any) error {
	return &UserError{
		UserMessage: fmt.Sprintf(format, args...),
		Err:         err,
	}
}
