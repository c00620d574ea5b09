// SPDX-License-Identifier: MPL-2.0

package clispec

import "unicode/utf8"

// validateOption checks a single option and collects all issues.
// The option must already be normalized.
func validateOption(path *FieldPath, opt *Option) ValidationErrors {
	var errs ValidationErrors

	if opt.Name == "" {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "must have a non-empty name",
			Severity: SeverityError,
		})
		return errs // Can't say anything useful about a nameless option
	}

	path = path.Copy().Option(opt.Name)

	// Per-field: unknown type tags degrade to "string" at emission time
	// instead of failing the whole generation, so they surface as warnings.
	if ok, typeErrs := opt.Type.IsValid(); !ok {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  typeErrs[0].Error() + "; emission will fall back to 'string'",
			Severity: SeverityWarning,
		})
	}

	// Cross-field: a short alias, when present, is exactly one character.
	if opt.Short != "" && utf8.RuneCountInString(opt.Short) != 1 {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "has invalid short name '" + opt.Short + "' (must be exactly one character)",
			Severity: SeverityError,
		})
	}

	// Cross-field: the choices list is present and non-empty exactly when the
	// type is "choice". For every other type a stray choices list is ignored.
	if opt.GetType() == OptionTypeChoice && len(opt.Choices) == 0 {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "has type 'choice' but no choices list",
			Severity: SeverityError,
		})
	}

	return errs
}

// validateOptions checks all options in a sibling scope (one command's
// options, or the global options), then the uniqueness of their names and
// short aliases. Each duplicated value is reported exactly once, in
// first-seen order; absent short aliases are excluded from the check.
func validateOptions(path *FieldPath, opts []Option) ValidationErrors {
	var errs ValidationErrors

	for i := range opts {
		optPath := path.Copy()
		if opts[i].Name == "" {
			optPath = optPath.OptionIndex(i)
		}
		errs = append(errs, validateOption(optPath, &opts[i])...)
	}

	names := make([]string, 0, len(opts))
	shorts := make([]string, 0, len(opts))
	for i := range opts {
		if opts[i].Name != "" {
			names = append(names, opts[i].Name)
		}
		if opts[i].Short != "" {
			shorts = append(shorts, opts[i].Short)
		}
	}
	for _, dup := range duplicateNames(names) {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "has duplicate option name '" + dup + "'",
			Severity: SeverityError,
		})
	}
	for _, dup := range duplicateNames(shorts) {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "has duplicate short name '" + dup + "'",
			Severity: SeverityError,
		})
	}

	return errs
}
