// SPDX-License-Identifier: MPL-2.0

package pygen

import (
	"fmt"
	"strings"

	"cligen-cli/pkg/clispec"
)

// The identifier and type mappers are pure functions with no shared state.
// They guarantee legality of the produced identifiers, not uniqueness;
// distinctness of source names is the validator's job.

// ToFuncName converts a command name to a valid Python function name:
// lowercased, with spaces and dashes replaced by underscores.
func ToFuncName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}

// ToParamName converts an option or argument name to a valid Python
// parameter name. Same transform as ToFuncName; kept separate because the
// two call sites bind different kinds of identifiers.
func ToParamName(name string) string {
	return ToFuncName(name)
}

// basePythonType maps a specification type tag to a Python type annotation.
// The default arm makes the fallback explicit: any tag outside the closed set
// degrades to "str" so that emission stays total over every syntactically
// valid specification.
func basePythonType(tag string) string {
	switch tag {
	case string(clispec.OptionTypeString):
		return "str"
	case string(clispec.OptionTypeInteger):
		return "int"
	case string(clispec.OptionTypeFloat):
		return "float"
	case string(clispec.OptionTypeBoolean):
		return "bool"
	case string(clispec.OptionTypePath):
		return "Path"
	case string(clispec.OptionTypeChoice):
		return "str"
	default:
		return "str"
	}
}

// ArgumentPythonType returns the Python type annotation for an argument.
// Arguments are never wrapped in an optional form; Click enforces presence.
func ArgumentPythonType(arg *clispec.Argument) string {
	return basePythonType(string(arg.GetType()))
}

// OptionPythonType returns the Python type annotation for an option.
// Non-required options resolve to the nullable form "<T> | None", except
// booleans: a boolean flag's absence simply means False, so bool never wraps.
func OptionPythonType(opt *clispec.Option) string {
	base := basePythonType(string(opt.GetType()))
	if !opt.Required {
		if opt.GetType() == clispec.OptionTypeBoolean {
			return "bool"
		}
		return base + " | None"
	}
	return base
}

// RenderOption renders the @click.option decorator line for an option.
func RenderOption(opt *clispec.Option) string {
	var b strings.Builder
	b.WriteString("@click.option(")

	if opt.HasShort() {
		fmt.Fprintf(&b, "%q, ", "-"+opt.Short)
	}
	fmt.Fprintf(&b, "%q", "--"+opt.Name)

	switch opt.GetType() {
	case clispec.OptionTypeBoolean:
		b.WriteString(", is_flag=True")
	case clispec.OptionTypeInteger:
		b.WriteString(", type=int")
	case clispec.OptionTypeFloat:
		b.WriteString(", type=float")
	case clispec.OptionTypePath:
		b.WriteString(", type=click.Path()")
	case clispec.OptionTypeChoice:
		b.WriteString(", type=click.Choice([")
		for i, c := range opt.Choices {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", c)
		}
		b.WriteString("])")
	}

	// Boolean flags carry their value through presence alone, so a literal
	// default is never emitted for them.
	if opt.Default != nil && opt.GetType() != clispec.OptionTypeBoolean {
		b.WriteString(", default=")
		b.WriteString(pythonLiteral(opt.Default))
	}

	if opt.Required {
		b.WriteString(", required=True")
	}

	if opt.Help != "" {
		fmt.Fprintf(&b, ", help=\"%s\"", escapeHelp(opt.Help))
	}

	b.WriteString(")")
	return b.String()
}

// RenderArgument renders the @click.argument decorator line for an argument.
func RenderArgument(arg *clispec.Argument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@click.argument(%q", arg.Name)

	switch arg.GetType() {
	case clispec.ArgumentTypeInteger:
		b.WriteString(", type=int")
	case clispec.ArgumentTypeFloat:
		b.WriteString(", type=float")
	case clispec.ArgumentTypePath:
		b.WriteString(", type=click.Path(exists=True)")
	}

	// Click arguments are required by default; only the opt-out is rendered.
	if !arg.IsRequired() {
		b.WriteString(", required=False")
	}

	b.WriteString(")")
	return b.String()
}

// pythonLiteral renders a scalar default value as a Python literal.
func pythonLiteral(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case float64:
		// JSON-decoded whole numbers arrive as float64; render them without
		// a trailing ".0" so integer defaults read naturally.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// escapeHelp escapes double quotes so help text can sit inside a
// double-quoted Python string.
func escapeHelp(help string) string {
	return strings.ReplaceAll(help, `"`, `\"`)
}
