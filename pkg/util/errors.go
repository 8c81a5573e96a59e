// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the error taxonomy. Configuration errors are raised
// at construction or registration time, never deferred to translation time.
var (
	ErrUnknownDialect = errors.New("unknown dialect")
	ErrBadPattern     = errors.New("malformed translation pattern")
	ErrKeyCollision   = errors.New("normalized key collision")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNotConnected   = errors.New("device not connected")
	ErrCommandFailed  = errors.New("command failed on device")
)

// ConfigError represents a configuration problem detected at construction
// time: a malformed rule pattern, an unregistered dialect, or a key
// collision produced by a key transform. Subject identifies the offending
// pattern, dialect, command line, or key so the author can locate the
// faulty rule without tracing internals.
type ConfigError struct {
	Subject string
	Detail  string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Err, e.Subject)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error wrapping the given sentinel.
func NewConfigError(sentinel error, subject, detail string) *ConfigError {
	return &ConfigError{Subject: subject, Detail: detail, Err: sentinel}
}

// CommandError represents a device-side command failure, carrying the
// command line that produced it.
type CommandError struct {
	Command string
	Output  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %s", e.Command, e.Output)
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// HasErrors returns true if there are validation errors
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
