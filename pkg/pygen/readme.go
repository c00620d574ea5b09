// SPDX-License-Identifier: MPL-2.0

package pygen

import (
	"fmt"
	"strings"

	"cligen-cli/pkg/clispec"
)

// renderReadme renders README.md: description, install and usage snippets,
// one section per command with its example block, and the global options
// listing. Commands without examples fall back to a generic --help line.
func renderReadme(spec *clispec.Specification) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n%s\n\n", spec.Name, spec.Description)

	sb.WriteString("## Installation\n\n")
	fmt.Fprintf(&sb, "```bash\npip install %s\n```\n\n", spec.Name)

	sb.WriteString("## Usage\n\n")
	fmt.Fprintf(&sb, "```bash\n%s --help\n```\n", spec.Name)

	if len(spec.Commands) > 0 {
		sb.WriteString("\n## Commands\n\n")
		for i := range spec.Commands {
			cmd := &spec.Commands[i]
			fmt.Fprintf(&sb, "### %s\n\n%s\n\n", cmd.Name, cmd.Description)
			sb.WriteString("```bash\n")
			if len(cmd.Examples) > 0 {
				for _, example := range cmd.Examples {
					sb.WriteString(example)
					sb.WriteString("\n")
				}
			} else {
				fmt.Fprintf(&sb, "%s %s --help\n", spec.Name, cmd.Name)
			}
			sb.WriteString("```\n\n")
		}
	}

	if len(spec.GlobalOptions) > 0 {
		sb.WriteString("## Global Options\n\n")
		for i := range spec.GlobalOptions {
			opt := &spec.GlobalOptions[i]
			optStr := "--" + opt.Name
			if opt.HasShort() {
				optStr = "-" + opt.Short + ", " + optStr
			}
			fmt.Fprintf(&sb, "- `%s`: %s\n", optStr, opt.Help)
		}
	}

	return sb.String()
}

// renderInit renders the trivial package initializer: the description
// docstring and the fixed version marker.
func renderInit(spec *clispec.Specification) string {
	return fmt.Sprintf("\"\"\"%s\"\"\"\n\n__version__ = %q\n", spec.Description, generatedVersion)
}
