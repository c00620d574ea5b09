// SPDX-License-Identifier: MPL-2.0

package pygen

import (
	"fmt"
	"strings"

	"cligen-cli/pkg/clispec"
)

// renderEntryModule renders the cli.py entry module: one Click group whose
// callback binds the global options, then one command function per
// specification Command in order, then the main() entry point.
func renderEntryModule(spec *clispec.Specification) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\"\"\"%s\"\"\"\n\n", spec.Description)

	if hasPathTypes(spec) {
		sb.WriteString("from pathlib import Path\n\n")
	}
	sb.WriteString("import click\n\n\n")

	// Top-level dispatcher. Global options are bound here, once, and are not
	// repeated on the individual commands.
	sb.WriteString("@click.group()\n")
	sb.WriteString("@click.version_option()\n")
	for i := range spec.GlobalOptions {
		sb.WriteString(RenderOption(&spec.GlobalOptions[i]))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "def cli(%s) -> None:\n", optionSignature(spec.GlobalOptions))
	fmt.Fprintf(&sb, "    \"\"\"%s\"\"\"\n", spec.Description)
	sb.WriteString("    pass\n")

	for i := range spec.Commands {
		sb.WriteString("\n\n")
		renderCommand(&sb, &spec.Commands[i])
	}

	sb.WriteString("\n\ndef main() -> None:\n")
	sb.WriteString("    \"\"\"Entry point for the CLI.\"\"\"\n")
	sb.WriteString("    cli()\n")
	sb.WriteString("\n\nif __name__ == \"__main__\":\n")
	sb.WriteString("    main()\n")

	return sb.String()
}

// renderCommand renders one command function: its decorators (arguments in
// order, then options in order), the signature, the docstring with the
// example block, and a stub body.
func renderCommand(sb *strings.Builder, cmd *clispec.Command) {
	funcName := ToFuncName(cmd.Name)

	// When the mapped function name differs from the command name (dashes,
	// spaces), the command keeps its original spelling on the CLI surface.
	if funcName == cmd.Name {
		sb.WriteString("@cli.command()\n")
	} else {
		fmt.Fprintf(sb, "@cli.command(%q)\n", cmd.Name)
	}

	for i := range cmd.Arguments {
		sb.WriteString(RenderArgument(&cmd.Arguments[i]))
		sb.WriteString("\n")
	}
	for i := range cmd.Options {
		sb.WriteString(RenderOption(&cmd.Options[i]))
		sb.WriteString("\n")
	}

	fmt.Fprintf(sb, "def %s(%s) -> None:\n", funcName, commandSignature(cmd))

	fmt.Fprintf(sb, "    \"\"\"%s\n", cmd.Description)
	if len(cmd.Examples) > 0 {
		sb.WriteString("\n    Examples:\n")
		for _, example := range cmd.Examples {
			fmt.Fprintf(sb, "        %s\n", example)
		}
	}
	sb.WriteString("    \"\"\"\n")

	fmt.Fprintf(sb, "    # TODO: Implement %s command\n", cmd.Name)
	fmt.Fprintf(sb, "    click.echo(\"%s command called\")\n", cmd.Name)
}

// commandSignature builds the parameter list for a command function:
// one binding per argument, in order, then one per option, in order.
func commandSignature(cmd *clispec.Command) string {
	params := make([]string, 0, len(cmd.Arguments)+len(cmd.Options))
	for i := range cmd.Arguments {
		arg := &cmd.Arguments[i]
		params = append(params, ToParamName(arg.Name)+": "+ArgumentPythonType(arg))
	}
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		params = append(params, ToParamName(opt.Name)+": "+OptionPythonType(opt))
	}
	return strings.Join(params, ", ")
}

// optionSignature builds the parameter list for the group callback.
func optionSignature(opts []clispec.Option) string {
	params := make([]string, 0, len(opts))
	for i := range opts {
		params = append(params, ToParamName(opts[i].Name)+": "+OptionPythonType(&opts[i]))
	}
	return strings.Join(params, ", ")
}

// hasPathTypes reports whether any argument or option in the tree uses the
// path type, which requires the pathlib import in the entry module.
func hasPathTypes(spec *clispec.Specification) bool {
	for i := range spec.GlobalOptions {
		if spec.GlobalOptions[i].GetType() == clispec.OptionTypePath {
			return true
		}
	}
	for i := range spec.Commands {
		cmd := &spec.Commands[i]
		for j := range cmd.Arguments {
			if cmd.Arguments[j].GetType() == clispec.ArgumentTypePath {
				return true
			}
		}
		for j := range cmd.Options {
			if cmd.Options[j].GetType() == clispec.OptionTypePath {
				return true
			}
		}
	}
	return false
}
