// SPDX-License-Identifier: MPL-2.0

package clispec

// DefaultPythonVersion is the target runtime version used when a
// specification does not declare one.
const DefaultPythonVersion = "3.11"

// Specification is the root entity describing an entire command-line tool to
// be generated. It owns its Commands and global Options; the tree is
// traversed top-down during emission and never mutated afterwards.
type Specification struct {
	// Name is the tool name; must be a valid Python identifier and not a
	// reserved word, since it becomes the generated package name
	Name string `json:"name"`
	// Description is what the generated tool does
	Description string `json:"description"`
	// Commands lists the subcommands to generate, in order
	Commands []Command `json:"commands,omitempty"`
	// GlobalOptions lists options bound once at the top-level dispatcher and
	// available to all commands
	GlobalOptions []Option `json:"global_options,omitempty"`
	// PythonVersion is the minimum target runtime version (defaults to DefaultPythonVersion)
	PythonVersion string `json:"python_version,omitempty"`
	// Dependencies lists extra packages required by the generated tool, in order
	Dependencies []string `json:"dependencies,omitempty"`
}

// Normalize brings the specification and its whole tree to canonical form:
// child entities are normalized and an empty runtime version receives the
// default. Normalization is idempotent.
func (s *Specification) Normalize() {
	if s.PythonVersion == "" {
		s.PythonVersion = DefaultPythonVersion
	}
	for i := range s.Commands {
		s.Commands[i].Normalize()
	}
	for i := range s.GlobalOptions {
		s.GlobalOptions[i].Normalize()
	}
}

// GetCommand finds a command by name, or nil if absent.
func (s *Specification) GetCommand(name string) *Command {
	for i := range s.Commands {
		if s.Commands[i].Name == name {
			return &s.Commands[i]
		}
	}
	return nil
}

// ListCommands returns all command names in specification order.
func (s *Specification) ListCommands() []string {
	names := make([]string, len(s.Commands))
	for i, cmd := range s.Commands {
		names[i] = cmd.Name
	}
	return names
}

// WithCommand returns a new Specification with cmd appended to the command
// list. The receiver is not mutated (copy-on-write); the new value is
// normalized and re-validated independently, and the returned errors are nil
// only when the extended tree is valid.
func (s *Specification) WithCommand(cmd Command) (*Specification, ValidationErrors) {
	next := &Specification{
		Name:          s.Name,
		Description:   s.Description,
		Commands:      make([]Command, 0, len(s.Commands)+1),
		GlobalOptions: append([]Option(nil), s.GlobalOptions...),
		PythonVersion: s.PythonVersion,
		Dependencies:  append([]string(nil), s.Dependencies...),
	}
	next.Commands = append(next.Commands, s.Commands...)
	next.Commands = append(next.Commands, cmd)

	next.Normalize()
	errs := next.Validate()
	if errs.HasErrors() {
		return nil, errs
	}
	// Warnings ride along so callers can still surface them.
	return next, errs
}
