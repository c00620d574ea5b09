// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"cligen-cli/pkg/clispec"
)

func TestGetVersionString(t *testing.T) {
	t.Parallel()

	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q, want dev default", got)
	}
}

func TestStarterSpecIsValid(t *testing.T) {
	t.Parallel()

	spec := starterSpec("mytool")
	if errs := spec.Validate(); errs.HasErrors() {
		t.Fatalf("starter spec failed validation: %v", errs)
	}
}

func TestStarterSpecRejectsReservedName(t *testing.T) {
	t.Parallel()

	spec := starterSpec("import")
	if errs := spec.Validate(); !errs.HasErrors() {
		t.Fatal("starter spec with reserved name passed validation")
	}
}

func TestSummarizeSpec(t *testing.T) {
	t.Parallel()

	spec := &clispec.Specification{
		Name:          "imgconvert",
		Description:   "Convert images between formats",
		PythonVersion: "3.11",
		Commands: []clispec.Command{
			{
				Name: "convert",
				Arguments: []clispec.Argument{
					{Name: "source", Type: clispec.ArgumentTypePath},
				},
				Options: []clispec.Option{
					{Name: "format", Short: "f", Type: clispec.OptionTypeChoice, Choices: []string{"png", "jpg"}},
				},
			},
		},
		GlobalOptions: []clispec.Option{
			{Name: "quiet", Type: clispec.OptionTypeBoolean, Required: false},
		},
	}

	summary := summarizeSpec(spec)

	for _, want := range []string{
		"# imgconvert",
		"Target runtime: Python 3.11",
		"## convert",
		"argument `source` (path, required)",
		"option `-f, --format` (choice)",
		"## Global options",
		"--quiet",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q\n%s", want, summary)
		}
	}
}
