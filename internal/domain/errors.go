package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Split errors
	ErrMsgEmptyInput = "List of emails or items is empty!"

	// Config errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Split errors
	ErrEmptyInput = errors.New(ErrMsgEmptyInput)

	// Config errors
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
