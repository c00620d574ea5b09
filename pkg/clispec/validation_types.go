// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"strconv"
	"strings"
)

const (
	// SeverityError indicates a validation failure that prevents emission.
	SeverityError ValidationSeverity = iota
	// SeverityWarning indicates a potential issue that doesn't prevent emission.
	SeverityWarning
)

type (
	// ValidationSeverity indicates the severity level of a validation error.
	ValidationSeverity int

	// ValidationError represents a single validation issue found while
	// checking a specification tree.
	ValidationError struct {
		// Field is the field path where the error occurred (e.g., "command 'convert' option 'format'").
		Field string
		// Message is the human-readable error message.
		Message string
		// Severity indicates whether this is an error or warning.
		Severity ValidationSeverity
	}

	// ValidationErrors is a collection of validation errors that implements
	// the error interface. This allows returning every violation found during
	// a single validation pass, so users are not forced into a
	// fix-one-run-again loop.
	ValidationErrors []ValidationError

	// FieldPath is a builder for constructing hierarchical field paths.
	// It provides a fluent API for building context strings like
	// "command 'convert' option 'format'".
	FieldPath struct {
		parts []string
	}
)

// String returns a human-readable representation of the severity level.
func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// IsError returns true if this is an error-level validation issue.
func (e ValidationError) IsError() bool {
	return e.Severity == SeverityError
}

// IsWarning returns true if this is a warning-level validation issue.
func (e ValidationError) IsWarning() bool {
	return e.Severity == SeverityWarning
}

// Error implements the error interface by joining all error messages.
func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var b strings.Builder
	b.WriteString("validation failed with ")
	errorCount := errs.ErrorCount()
	warningCount := errs.WarningCount()

	if errorCount > 0 {
		if errorCount == 1 {
			b.WriteString("1 error")
		} else {
			b.WriteString(strconv.Itoa(errorCount))
			b.WriteString(" errors")
		}
	}
	if warningCount > 0 {
		if errorCount > 0 {
			b.WriteString(" and ")
		}
		if warningCount == 1 {
			b.WriteString("1 warning")
		} else {
			b.WriteString(strconv.Itoa(warningCount))
			b.WriteString(" warnings")
		}
	}
	b.WriteString(":\n")

	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  - ")
		b.WriteString(err.Error())
	}

	return b.String()
}

// HasErrors returns true if there are any error-level validation issues.
func (errs ValidationErrors) HasErrors() bool {
	for _, e := range errs {
		if e.IsError() {
			return true
		}
	}
	return false
}

// HasWarnings returns true if there are any warning-level validation issues.
func (errs ValidationErrors) HasWarnings() bool {
	for _, e := range errs {
		if e.IsWarning() {
			return true
		}
	}
	return false
}

// Errors returns only the error-level validation issues.
func (errs ValidationErrors) Errors() ValidationErrors {
	var result ValidationErrors
	for _, e := range errs {
		if e.IsError() {
			result = append(result, e)
		}
	}
	return result
}

// Warnings returns only the warning-level validation issues.
func (errs ValidationErrors) Warnings() ValidationErrors {
	var result ValidationErrors
	for _, e := range errs {
		if e.IsWarning() {
			result = append(result, e)
		}
	}
	return result
}

// ErrorCount returns the number of error-level validation issues.
func (errs ValidationErrors) ErrorCount() int {
	count := 0
	for _, e := range errs {
		if e.IsError() {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level validation issues.
func (errs ValidationErrors) WarningCount() int {
	count := 0
	for _, e := range errs {
		if e.IsWarning() {
			count++
		}
	}
	return count
}

// NewFieldPath creates a new empty FieldPath builder.
func NewFieldPath() *FieldPath {
	return &FieldPath{}
}

// String returns the complete field path as a string.
func (p *FieldPath) String() string {
	return strings.Join(p.parts, " ")
}

// Root adds the "specification" context to the path.
func (p *FieldPath) Root() *FieldPath {
	p.parts = append(p.parts, "specification")
	return p
}

// Command adds a command context to the path.
func (p *FieldPath) Command(name string) *FieldPath {
	p.parts = append(p.parts, "command '"+name+"'")
	return p
}

// Option adds an option context to the path.
func (p *FieldPath) Option(name string) *FieldPath {
	p.parts = append(p.parts, "option '"+name+"'")
	return p
}

// OptionIndex adds an option context by index to the path (1-indexed for user display).
func (p *FieldPath) OptionIndex(index int) *FieldPath {
	p.parts = append(p.parts, "option #"+strconv.Itoa(index+1))
	return p
}

// Arg adds an argument context to the path.
func (p *FieldPath) Arg(name string) *FieldPath {
	p.parts = append(p.parts, "argument '"+name+"'")
	return p
}

// ArgIndex adds an argument context by index to the path (1-indexed for user display).
func (p *FieldPath) ArgIndex(index int) *FieldPath {
	p.parts = append(p.parts, "argument #"+strconv.Itoa(index+1))
	return p
}

// GlobalOptions adds the global options context to the path.
func (p *FieldPath) GlobalOptions() *FieldPath {
	p.parts = append(p.parts, "global options")
	return p
}

// Example adds an example context to the path (1-indexed for user display).
func (p *FieldPath) Example(index int) *FieldPath {
	p.parts = append(p.parts, "example #"+strconv.Itoa(index+1))
	return p
}

// Field adds a generic field context to the path.
func (p *FieldPath) Field(name string) *FieldPath {
	p.parts = append(p.parts, name)
	return p
}

// Copy returns a shallow copy of the FieldPath.
// This is useful when branching into sub-contexts.
func (p *FieldPath) Copy() *FieldPath {
	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	return &FieldPath{parts: parts}
}
