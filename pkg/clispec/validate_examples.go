// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// validateExamples parses each usage example as POSIX shell. Examples end up
// verbatim in the generated documentation, so an unparseable one is almost
// certainly a typo, but it can never block emission, hence warning severity.
func validateExamples(path *FieldPath, examples []string) ValidationErrors {
	var errs ValidationErrors
	parser := syntax.NewParser()

	for i, example := range examples {
		if strings.TrimSpace(example) == "" {
			errs = append(errs, ValidationError{
				Field:    path.Copy().Example(i).String(),
				Message:  "is empty",
				Severity: SeverityWarning,
			})
			continue
		}
		if _, err := parser.Parse(strings.NewReader(example), ""); err != nil {
			errs = append(errs, ValidationError{
				Field:    path.Copy().Example(i).String(),
				Message:  "is not parseable as a shell invocation: " + err.Error(),
				Severity: SeverityWarning,
			})
		}
	}

	return errs
}
