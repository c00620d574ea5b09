// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"cligen-cli/internal/render"
	"cligen-cli/pkg/clispec"

	"github.com/spf13/cobra"
)

// newShowCommand creates the `cligen show` command.
func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <spec-file>",
		Short: "Summarize a specification",
		Long: `Render a human-readable summary of a specification.

Shows the tool name, target runtime, commands with their arguments and
options, and any global options, formatted as markdown for the terminal.

Examples:
  cligen show mytool.cue          Summarize a specification
  cligen show mytool.cue --plain  Print the summary without styling`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, path string) error {
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

	rendered, err := render.Markdown(summarizeSpec(spec), render.Options{Plain: plain})
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	fmt.Fprintln(stdout, rendered)
	return nil
}

// summarizeSpec builds a markdown summary of the specification tree.
func summarizeSpec(spec *clispec.Specification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", spec.Name)
	if spec.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", spec.Description)
	}
	fmt.Fprintf(&b, "- Target runtime: Python %s\n", spec.PythonVersion)
	fmt.Fprintf(&b, "- Commands: %d\n\n", len(spec.Commands))

	for _, c := range spec.Commands {
		fmt.Fprintf(&b, "## %s\n\n", c.Name)
		if c.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", c.Description)
		}
		for _, arg := range c.Arguments {
			required := "optional"
			if arg.IsRequired() {
				required = "required"
			}
			fmt.Fprintf(&b, "- argument `%s` (%s, %s)%s\n", arg.Name, arg.GetType(), required, helpSuffix(arg.Help))
		}
		for _, opt := range c.Options {
			fmt.Fprintf(&b, "- option `%s` (%s)%s\n", optionLabel(opt), opt.GetType(), helpSuffix(opt.Help))
		}
		if len(c.Arguments)+len(c.Options) > 0 {
			b.WriteString("\n")
		}
	}

	if len(spec.GlobalOptions) > 0 {
		b.WriteString("## Global options\n\n")
		for _, opt := range spec.GlobalOptions {
			fmt.Fprintf(&b, "- `%s` (%s)%s\n", optionLabel(opt), opt.GetType(), helpSuffix(opt.Help))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func optionLabel(opt clispec.Option) string {
	if opt.HasShort() {
		return fmt.Sprintf("-%s, --%s", opt.Short, opt.Name)
	}
	return "--" + opt.Name
}

func helpSuffix(help string) string {
	if help == "" {
		return ""
	}
	return ": " + help
}
