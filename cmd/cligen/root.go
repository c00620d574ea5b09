// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cligen-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// plain disables styled/rendered output
	plain bool

	// appConfig holds the loaded configuration, defaults if no file was found.
	appConfig = config.DefaultConfig()

	// logger writes diagnostics to stderr; level depends on --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cligen",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cligen",
		Short: "Generate command-line tools from declarative specifications",
		Long: TitleStyle.Render("cligen") + SubtitleStyle.Render(" - Generate command-line tools from declarative specifications") + `

cligen turns a declarative specification of commands, options, and
arguments into a complete, installable command-line package: entry
module, package initializer, build manifest, and documentation.

Specifications are JSON or CUE documents validated against a schema,
with structural checks that report every problem in a single pass.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a specification with: cligen init mytool
  2. Adjust commands, options, and arguments
  3. Generate the package with: cligen build mytool.cue

` + SubtitleStyle.Render("Examples:") + `
  cligen init mytool          Create a starter specification
  cligen validate mytool.cue  Check a specification for problems
  cligen build mytool.cue     Generate the package
  cligen show mytool.cue      Summarize a specification`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cligen/config.cue)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styled output")

	// Add subcommands
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newInitCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	ctx := context.Background()

	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(ctx, cfgFile)
	} else {
		cfg, err = config.Load(ctx)
	}
	if err != nil {
		// Config problems must not hide the user's actual command; warn and continue.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	}
	if cfg != nil {
		appConfig = cfg
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = appConfig.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
