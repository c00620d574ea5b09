// SPDX-License-Identifier: MPL-2.0

package clispec

// Command represents one named subcommand of the generated tool, with its own
// positional arguments, options, and usage examples.
type Command struct {
	// Name is the command identifier (e.g., "convert")
	Name string `json:"name"`
	// Description is the help text shown to users of the generated tool
	Description string `json:"description"`
	// Arguments lists the positional arguments, in binding order
	Arguments []Argument `json:"arguments,omitempty"`
	// Options lists the command's options, in binding order
	Options []Option `json:"options,omitempty"`
	// Examples lists usage examples rendered into the generated documentation
	Examples []string `json:"examples,omitempty"`
}

// Normalize brings the command and all of its children to canonical form.
func (c *Command) Normalize() {
	for i := range c.Arguments {
		c.Arguments[i].Normalize()
	}
	for i := range c.Options {
		c.Options[i].Normalize()
	}
}

// GetArgument finds an argument by name, or nil if absent.
func (c *Command) GetArgument(name string) *Argument {
	for i := range c.Arguments {
		if c.Arguments[i].Name == name {
			return &c.Arguments[i]
		}
	}
	return nil
}

// GetOption finds an option by its long name, or nil if absent.
func (c *Command) GetOption(name string) *Option {
	for i := range c.Options {
		if c.Options[i].Name == name {
			return &c.Options[i]
		}
	}
	return nil
}
