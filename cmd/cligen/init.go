// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"cligen-cli/pkg/clispec"

	"github.com/spf13/cobra"
)

// newInitCommand creates the `cligen init` command.
func newInitCommand() *cobra.Command {
	var initForce bool

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a starter specification",
		Long: `Create a starter specification in the current directory.

The generated file contains a sample command with an argument and an
option so you can see the full shape of a specification before editing.

Examples:
  cligen init             Create mytool.json
  cligen init imgtool     Create imgtool.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "mytool"
			if len(args) > 0 {
				name = args[0]
			}
			return runInit(cmd, name, initForce)
		},
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing specification file")

	return cmd
}

func runInit(cmd *cobra.Command, name string, force bool) error {
	stdout := cmd.OutOrStdout()

	spec := starterSpec(name)
	if errs := spec.Validate(); errs.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("%q is not usable as a tool name: %w", name, errs)
	}

	filename := name + ".json"
	if _, err := os.Stat(filename); err == nil && !force {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	if err := clispec.Save(spec, filename); err != nil {
		return err
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Fprintf(stdout, "%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintf(stdout, "  1. Edit %s to describe your commands\n", filename)
	fmt.Fprintf(stdout, "  2. Run 'cligen validate %s' to check it\n", filename)
	fmt.Fprintf(stdout, "  3. Run 'cligen build %s' to generate the package\n", filename)

	return nil
}

// starterSpec builds the sample specification written by init.
func starterSpec(name string) *clispec.Specification {
	return &clispec.Specification{
		Name:          name,
		Description:   "A command-line tool generated by cligen",
		PythonVersion: appConfig.PythonVersion,
		Commands: []clispec.Command{
			{
				Name:        "greet",
				Description: "Print a greeting",
				Arguments: []clispec.Argument{
					{Name: "name", Type: clispec.ArgumentTypeString, Help: "Who to greet"},
				},
				Options: []clispec.Option{
					{Name: "loud", Type: clispec.OptionTypeBoolean, Help: "Shout the greeting"},
				},
				Examples: []string{
					fmt.Sprintf("%s greet world", name),
					fmt.Sprintf("%s greet world --loud", name),
				},
			},
		},
	}
}
