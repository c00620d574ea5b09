// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ArgumentTypeString is the default argument type for string values
	ArgumentTypeString ArgumentType = "string"
	// ArgumentTypeInteger is for integer arguments
	ArgumentTypeInteger ArgumentType = "integer"
	// ArgumentTypeFloat is for floating-point arguments
	ArgumentTypeFloat ArgumentType = "float"
	// ArgumentTypePath is for filesystem path arguments
	ArgumentTypePath ArgumentType = "path"
)

// ErrInvalidArgumentType is returned when an ArgumentType value is not one of the defined types.
var ErrInvalidArgumentType = errors.New("invalid argument type")

type (
	// ArgumentType represents the data type of a positional argument
	ArgumentType string

	// InvalidArgumentTypeError is returned when an ArgumentType value is not recognized.
	// It wraps ErrInvalidArgumentType for errors.Is() compatibility.
	InvalidArgumentTypeError struct {
		Value ArgumentType
	}

	// Argument represents a positional input to a generated command
	Argument struct {
		// Name is the argument name; leading dashes are stripped during normalization
		Name string `json:"name"`
		// Type specifies the data type of the argument (optional, defaults to "string")
		// Supported types: "string", "integer", "float", "path"
		Type ArgumentType `json:"type,omitempty"`
		// Required indicates whether the argument must be provided.
		// Absent means required (positional inputs are required by default).
		Required *bool `json:"required,omitempty"`
		// Help provides help text for the argument
		Help string `json:"help,omitempty"`
	}
)

// Error implements the error interface for InvalidArgumentTypeError.
func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("invalid argument type %q (valid: string, integer, float, path)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidArgumentTypeError) Unwrap() error {
	return ErrInvalidArgumentType
}

// IsValid returns whether the ArgumentType is one of the defined argument types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid; it is treated as "string" by GetType().
func (at ArgumentType) IsValid() (bool, []error) {
	switch at {
	case ArgumentTypeString, ArgumentTypeInteger, ArgumentTypeFloat, ArgumentTypePath, "":
		return true, nil
	default:
		return false, []error{&InvalidArgumentTypeError{Value: at}}
	}
}

// GetType returns the effective type of the argument (defaults to "string" if not specified)
func (a *Argument) GetType() ArgumentType {
	if a.Type == "" {
		return ArgumentTypeString
	}
	return a.Type
}

// IsRequired reports whether the argument must be provided.
// Arguments are required unless the specification says otherwise.
func (a *Argument) IsRequired() bool {
	if a.Required == nil {
		return true
	}
	return *a.Required
}

// Normalize brings the argument to canonical form: leading dashes are
// stripped from the name. Invariant checks always run on normalized values.
func (a *Argument) Normalize() {
	a.Name = strings.TrimLeft(a.Name, "-")
}
