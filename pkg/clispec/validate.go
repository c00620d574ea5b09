// SPDX-License-Identifier: MPL-2.0

package clispec

// Validation is organized across focused files by concern:
//   - validate.go: entity entry points and shared sibling-uniqueness helpers
//   - validate_args.go: argument rules
//   - validate_options.go: option rules (short alias, choice/choices pairing)
//   - validate_spec.go: root name rules and cross-sibling checks
//   - validate_examples.go: shell-syntax checks on usage examples
//
// Every entry point first normalizes its receiver, then collects ALL
// violations found during the pass. Checks run in a fixed cascade:
// per-field rules, then cross-field rules, then cross-sibling rules.

// Validate normalizes the argument and reports every violated rule.
func (a *Argument) Validate() ValidationErrors {
	a.Normalize()
	return validateArgument(NewFieldPath(), a)
}

// Validate normalizes the option and reports every violated rule.
func (o *Option) Validate() ValidationErrors {
	o.Normalize()
	return validateOption(NewFieldPath(), o)
}

// Validate normalizes the command and reports every violated rule, including
// uniqueness across its sibling arguments and options.
func (c *Command) Validate() ValidationErrors {
	c.Normalize()
	return validateCommand(NewFieldPath(), c)
}

// Validate normalizes the specification tree and reports every violated rule
// found in a single pass. A specification for which this returns no
// error-level issues is safe to hand to an emitter; emitters do not
// re-validate. Validation is idempotent: a second pass over an accepted value
// performs no further normalization and reports the same (empty) result.
func (s *Specification) Validate() ValidationErrors {
	s.Normalize()
	return validateSpecification(s)
}

// duplicateNames returns each name that appears more than once in names, in
// first-seen order, exactly once per distinct offending name. Absent values
// must be filtered out by the caller before the count.
func duplicateNames(names []string) []string {
	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[n]++
	}

	var dups []string
	reported := make(map[string]bool)
	for _, n := range names {
		if counts[n] > 1 && !reported[n] {
			reported[n] = true
			dups = append(dups, n)
		}
	}
	return dups
}
