package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig indicates a configuration that fails validation:
// unsupported enum value, malformed name, or out-of-range port.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ValidationError is a single validation failure with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold for every
// validation error.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationErrors aggregates every failure found in one pass.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap supports errors.Is against the invalid-config sentinel.
func (e *ValidationErrors) Unwrap() error {
	return ErrInvalidConfig
}
