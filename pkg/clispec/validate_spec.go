// SPDX-License-Identifier: MPL-2.0

package clispec

import "strconv"

// validateCommand checks a single command: its own fields first, then its
// arguments and options including sibling uniqueness, then its examples.
// The command must already be normalized.
func validateCommand(path *FieldPath, cmd *Command) ValidationErrors {
	var errs ValidationErrors

	if cmd.Name == "" {
		errs = append(errs, ValidationError{
			Field:    path.String(),
			Message:  "must have a non-empty name",
			Severity: SeverityError,
		})
		return errs // Sub-entity paths would be meaningless without a name
	}

	path = path.Copy().Command(cmd.Name)

	errs = append(errs, validateArguments(path, cmd.Arguments)...)
	errs = append(errs, validateOptions(path, cmd.Options)...)
	errs = append(errs, validateExamples(path, cmd.Examples)...)

	return errs
}

// validateSpecification checks the root entity and the whole tree below it.
// The specification must already be normalized.
func validateSpecification(spec *Specification) ValidationErrors {
	var errs ValidationErrors
	root := NewFieldPath().Root()

	// Per-field rules on the root name. The name becomes the generated
	// package name, so it must be a legal, non-reserved identifier.
	switch {
	case spec.Name == "":
		errs = append(errs, ValidationError{
			Field:    root.String(),
			Message:  "must have a non-empty name",
			Severity: SeverityError,
		})
	case !IsValidIdentifier(spec.Name):
		errs = append(errs, ValidationError{
			Field:    root.String(),
			Message:  "name '" + spec.Name + "' is not a valid identifier (must match [A-Za-z_][A-Za-z0-9_]*)",
			Severity: SeverityError,
		})
	case IsReservedWord(spec.Name):
		errs = append(errs, ValidationError{
			Field:    root.String(),
			Message:  "name '" + spec.Name + "' is a reserved word of the target language",
			Severity: SeverityError,
		})
	}

	// Each command, including its own sibling scopes.
	for i := range spec.Commands {
		cmdPath := NewFieldPath()
		if spec.Commands[i].Name == "" {
			cmdPath = cmdPath.Field("command #" + strconv.Itoa(i+1))
			errs = append(errs, ValidationError{
				Field:    cmdPath.String(),
				Message:  "must have a non-empty name",
				Severity: SeverityError,
			})
			continue
		}
		errs = append(errs, validateCommand(cmdPath, &spec.Commands[i])...)
	}

	// Cross-sibling: command names are unique across the specification.
	cmdNames := make([]string, 0, len(spec.Commands))
	for i := range spec.Commands {
		if spec.Commands[i].Name != "" {
			cmdNames = append(cmdNames, spec.Commands[i].Name)
		}
	}
	for _, dup := range duplicateNames(cmdNames) {
		errs = append(errs, ValidationError{
			Field:    root.String(),
			Message:  "has duplicate command name '" + dup + "'",
			Severity: SeverityError,
		})
	}

	// Global options share the option rules, scoped to their own sibling set.
	errs = append(errs, validateOptions(NewFieldPath().GlobalOptions(), spec.GlobalOptions)...)

	return errs
}
