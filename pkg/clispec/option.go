// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// OptionTypeString is the default option type for string values
	OptionTypeString OptionType = "string"
	// OptionTypeInteger is for integer options
	OptionTypeInteger OptionType = "integer"
	// OptionTypeFloat is for floating-point options
	OptionTypeFloat OptionType = "float"
	// OptionTypeBoolean is for boolean flags (presence/absence conveys the value)
	OptionTypeBoolean OptionType = "boolean"
	// OptionTypePath is for filesystem path options
	OptionTypePath OptionType = "path"
	// OptionTypeChoice is for options restricted to a fixed set of string values
	OptionTypeChoice OptionType = "choice"
)

// ErrInvalidOptionType is returned when an OptionType value is not one of the defined types.
var ErrInvalidOptionType = errors.New("invalid option type")

type (
	// OptionType represents the data type of an option
	OptionType string

	// InvalidOptionTypeError is returned when an OptionType value is not recognized.
	// It wraps ErrInvalidOptionType for errors.Is() compatibility.
	InvalidOptionTypeError struct {
		Value OptionType
	}

	// Option represents a named, flag-like input to a generated command or to
	// the whole tool (global option)
	Option struct {
		// Name is the long option name; leading dashes are stripped during normalization
		Name string `json:"name"`
		// Short is a single-character alias (optional); leading dashes are
		// stripped and an empty string normalizes to absent
		Short string `json:"short,omitempty"`
		// Type specifies the data type of the option (optional, defaults to "string")
		// Supported types: "string", "integer", "float", "boolean", "path", "choice"
		Type OptionType `json:"type,omitempty"`
		// Required indicates whether the option must be provided (optional, defaults to false)
		Required bool `json:"required,omitempty"`
		// Default is the default value for the option (optional, any scalar)
		Default any `json:"default,omitempty"`
		// Help provides help text for the option
		Help string `json:"help,omitempty"`
		// Choices lists the valid values; required and non-empty exactly when
		// Type is "choice", ignored for every other type
		Choices []string `json:"choices,omitempty"`
	}
)

// Error implements the error interface for InvalidOptionTypeError.
func (e *InvalidOptionTypeError) Error() string {
	return fmt.Sprintf("invalid option type %q (valid: string, integer, float, boolean, path, choice)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOptionTypeError) Unwrap() error {
	return ErrInvalidOptionType
}

// IsValid returns whether the OptionType is one of the defined option types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid; it is treated as "string" by GetType().
func (ot OptionType) IsValid() (bool, []error) {
	switch ot {
	case OptionTypeString, OptionTypeInteger, OptionTypeFloat, OptionTypeBoolean, OptionTypePath, OptionTypeChoice, "":
		return true, nil
	default:
		return false, []error{&InvalidOptionTypeError{Value: ot}}
	}
}

// GetType returns the effective type of the option (defaults to "string" if not specified)
func (o *Option) GetType() OptionType {
	if o.Type == "" {
		return OptionTypeString
	}
	return o.Type
}

// HasShort reports whether the option carries a short alias after normalization.
func (o *Option) HasShort() bool {
	return o.Short != ""
}

// Normalize brings the option to canonical form: leading dashes are stripped
// from the name and the short alias, and an all-dash short collapses to
// absent. Invariant checks always run on normalized values.
func (o *Option) Normalize() {
	o.Name = strings.TrimLeft(o.Name, "-")
	o.Short = strings.TrimLeft(o.Short, "-")
}
