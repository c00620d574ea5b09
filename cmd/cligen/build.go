// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"cligen-cli/internal/render"
	"cligen-cli/pkg/clispec"
	"cligen-cli/pkg/pygen"

	"github.com/spf13/cobra"
)

// newBuildCommand creates the `cligen build` command.
func newBuildCommand() *cobra.Command {
	var (
		outputDir string
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "build <spec-file>",
		Short: "Generate a package from a specification",
		Long: `Generate a complete package from a specification document.

Validates the specification, then writes the entry module, package
initializer, build manifest, and documentation into the output
directory. Generation is deterministic: the same specification always
produces byte-identical artifacts.

Examples:
  cligen build mytool.cue                Generate into the configured output dir
  cligen build mytool.cue -o dist        Generate into ./dist
  cligen build mytool.cue --preview      Also render the entry module to the terminal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], outputDir, preview)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (defaults to output_dir from config)")
	cmd.Flags().BoolVar(&preview, "preview", false, "render the generated entry module to the terminal")

	return cmd
}

func runBuild(cmd *cobra.Command, path, outputDir string, preview bool) error {
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

	if verrs := spec.Validate(); verrs.HasWarnings() {
		printValidationReport(stderr, verrs)
	}

	if outputDir == "" {
		outputDir = appConfig.OutputDir
	}

	logger.Debug("emitting package", "name", spec.Name, "output", outputDir)

	artifacts, err := pygen.NewEmitter().Emit(spec, outputDir)
	if err != nil {
		// Partial artifacts may exist; name them so the user can clean up.
		for _, p := range artifacts {
			fmt.Fprintf(stderr, "%s partial artifact: %s\n", WarningStyle.Render("warning:"), p)
		}
		return fmt.Errorf("failed to generate package: %w", err)
	}

	fmt.Fprintf(stdout, "%s generated package %s\n", SuccessStyle.Render("✓"), TitleStyle.Render(spec.Name))
	for _, kind := range []pygen.ArtifactKind{
		pygen.ArtifactEntry,
		pygen.ArtifactPackageInit,
		pygen.ArtifactManifest,
		pygen.ArtifactDocumentation,
	} {
		fmt.Fprintf(stdout, "  %s\n", PathStyle.Render(artifacts[kind]))
	}

	if preview {
		if err := previewEntry(cmd, artifacts[pygen.ArtifactEntry]); err != nil {
			return err
		}
	}

	return nil
}

// previewEntry renders the generated entry module with syntax highlighting.
func previewEntry(cmd *cobra.Command, entryPath string) error {
	source, err := os.ReadFile(entryPath)
	if err != nil {
		return fmt.Errorf("failed to read generated entry module: %w", err)
	}

	rendered, err := render.Code(string(source), "python", render.Options{Plain: plain})
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
