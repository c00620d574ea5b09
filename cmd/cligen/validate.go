// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"cligen-cli/pkg/clispec"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the `cligen validate` command.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <spec-file>",
		Short: "Validate a specification",
		Long: `Validate a specification document.

Parses the given JSON or CUE specification, checks it against the schema,
and runs the full structural validation pass. All problems are reported
at once: errors make validation fail, warnings do not.

Examples:
  cligen validate mytool.cue        Validate a CUE specification
  cligen validate mytool.json       Validate a JSON specification`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, path string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	spec, err := clispec.Parse(path)
	if err != nil {
		var verrs clispec.ValidationErrors
		if errors.As(err, &verrs) {
			printValidationReport(stderr, verrs)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Parse only fails on errors; re-run validation to surface warnings.
	if verrs := spec.Validate(); verrs.HasWarnings() {
		printValidationReport(stderr, verrs)
	}

	logger.Debug("specification validated", "path", path, "commands", len(spec.Commands))
	fmt.Fprintf(stdout, "%s %s is valid (%d command(s))\n",
		SuccessStyle.Render("✓"), PathStyle.Render(path), len(spec.Commands))
	return nil
}

// printValidationReport writes one line per validation finding, warnings
// after errors, matching the severity split of the report error string.
func printValidationReport(w io.Writer, verrs clispec.ValidationErrors) {
	for _, e := range verrs.Errors() {
		fmt.Fprintf(w, "%s %s: %s\n", ErrorStyle.Render("error:"), e.Field, e.Message)
	}
	for _, e := range verrs.Warnings() {
		fmt.Fprintf(w, "%s %s: %s\n", WarningStyle.Render("warning:"), e.Field, e.Message)
	}
}
