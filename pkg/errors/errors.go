package errors

import (
	"errors"
	"fmt"
)

// Domain error types for library consumers

var (
	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflictingArguments indicates that a deprecated argument and its
	// replacement were both supplied with different values
	ErrConflictingArguments = errors.New("conflicting deprecated and new arguments")
)

// ConflictingArgumentsError is returned when a caller passes both the
// deprecated and the renamed form of an argument with different values.
// It unwraps to ErrConflictingArguments.
type ConflictingArgumentsError struct {
	DeprecatedName string
	NewName        string
	BotAPIVersion  string
	Message        string
}

// Error implements the error interface
func (e *ConflictingArgumentsError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel error
func (e *ConflictingArgumentsError) Unwrap() error {
	return ErrConflictingArguments
}

// NewConflictingArgumentsError creates a new conflicting-arguments error
func NewConflictingArgumentsError(deprecatedName, newName, botAPIVersion, message string) *ConflictingArgumentsError {
	return &ConflictingArgumentsError{
		DeprecatedName: deprecatedName,
		NewName:        newName,
		BotAPIVersion:  botAPIVersion,
		Message:        message,
	}
}

// Helper functions

// New creates a new error from a message
func New(message string) error {
	return errors.New(message)
}

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
