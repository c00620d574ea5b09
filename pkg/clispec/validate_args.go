// SPDX-License-Identifier: MPL-2.0

package clispec

// validateArgument checks a single argument and collects all issues.
// The argument must already be normalized.
func validateArgument(path *FieldPath, arg *Argument) ValidationErrors {
	var errs ValidationErrors

	if arg.Name == "" {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "must have a non-empty name",
			Severity: SeverityError,
		})
		return errs // Can't say anything useful about a nameless argument
	}

	path = path.Copy().Arg(arg.Name)

	// Unknown type tags degrade to "string" at emission time instead of
	// failing the whole generation, so they surface as warnings only.
	if ok, typeErrs := arg.Type.IsValid(); !ok {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  typeErrs[0].Error() + "; emission will fall back to 'string'",
			Severity: SeverityWarning,
		})
	}

	return errs
}

// validateArguments checks all arguments of a command, then the uniqueness of
// their names across siblings. Each duplicated name is reported exactly once,
// in first-seen order, no matter how many times it repeats.
func validateArguments(path *FieldPath, args []Argument) ValidationErrors {
	var errs ValidationErrors

	for i := range args {
		argPath := path.Copy()
		if args[i].Name == "" {
			argPath = argPath.ArgIndex(i)
		}
		errs = append(errs, validateArgument(argPath, &args[i])...)
	}

	names := make([]string, 0, len(args))
	for i := range args {
		if args[i].Name != "" {
			names = append(names, args[i].Name)
		}
	}
	for _, dup := range duplicateNames(names) {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "has duplicate argument name '" + dup + "'",
			Severity: SeverityError,
		})
	}

	return errs
}
