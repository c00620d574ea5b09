// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"strings"
	"testing"
)

// validSpec returns a specification that passes validation cleanly.
func validSpec() *Specification {
	return &Specification{
		Name:        "imgconvert",
		Description: "Convert images between formats",
		Commands: []Command{
			{
				Name:        "convert",
				Description: "Convert a single image",
				Arguments: []Argument{
					{Name: "source", Type: ArgumentTypePath, Help: "Input image"},
				},
				Options: []Option{
					{Name: "format", Short: "f", Type: OptionTypeChoice, Choices: []string{"png", "jpg"}, Default: "png"},
					{Name: "quality", Short: "q", Type: OptionTypeInteger},
				},
				Examples: []string{"imgconvert convert photo.jpg --format png"},
			},
		},
		GlobalOptions: []Option{
			{Name: "verbose", Short: "v", Type: OptionTypeBoolean},
		},
	}
}

func TestValidateAcceptsValidSpec(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	errs := spec.Validate()
	if len(errs) != 0 {
		t.Fatalf("Validate() = %v, want no findings", errs)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands[0].Options[0].Name = "--format"
	spec.PythonVersion = ""

	first := spec.Validate()
	second := spec.Validate()

	if len(first) != len(second) {
		t.Fatalf("second pass reported %d findings, first reported %d", len(second), len(first))
	}
	if spec.Commands[0].Options[0].Name != "format" {
		t.Errorf("name not normalized: %q", spec.Commands[0].Options[0].Name)
	}
	if spec.PythonVersion != DefaultPythonVersion {
		t.Errorf("PythonVersion = %q, want default %q", spec.PythonVersion, DefaultPythonVersion)
	}
}

func TestValidateSpecificationName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		specName string
		wantMsg  string
	}{
		{"empty name", "", "must have a non-empty name"},
		{"dashed name", "img-convert", "is not a valid identifier"},
		{"reserved word", "import", "is a reserved word of the target language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := validSpec()
			spec.Name = tt.specName
			errs := spec.Validate()
			if !errs.HasErrors() {
				t.Fatal("Validate() reported no errors")
			}
			if !strings.Contains(errs.Error(), tt.wantMsg) {
				t.Errorf("report missing %q:\n%s", tt.wantMsg, errs.Error())
			}
		})
	}
}

func TestValidateShortAliasLength(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands[0].Options = append(spec.Commands[0].Options, Option{Name: "output", Short: "out"})

	errs := spec.Validate()
	if !errs.HasErrors() {
		t.Fatal("Validate() accepted a three-character short alias")
	}
	want := "has invalid short name 'out' (must be exactly one character)"
	if !strings.Contains(errs.Error(), want) {
		t.Errorf("report missing %q:\n%s", want, errs.Error())
	}
}

func TestValidateChoicePairing(t *testing.T) {
	t.Parallel()

	t.Run("choice without choices", func(t *testing.T) {
		t.Parallel()

		opt := Option{Name: "format", Type: OptionTypeChoice}
		errs := opt.Validate()
		if !errs.HasErrors() {
			t.Fatal("Validate() accepted a choice option with no choices")
		}
		if !strings.Contains(errs.Error(), "has type 'choice' but no choices list") {
			t.Errorf("unexpected report:\n%s", errs.Error())
		}
	})

	t.Run("stray choices list is ignored", func(t *testing.T) {
		t.Parallel()

		opt := Option{Name: "quality", Type: OptionTypeInteger, Choices: []string{"1", "2"}}
		if errs := opt.Validate(); len(errs) != 0 {
			t.Fatalf("Validate() = %v, want no findings", errs)
		}
	})
}

func TestValidateDuplicateOptionReportedOnce(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands[0].Options = []Option{
		{Name: "verbose"},
		{Name: "verbose"},
		{Name: "verbose"},
	}

	errs := spec.Validate()
	if !errs.HasErrors() {
		t.Fatal("Validate() accepted duplicate option names")
	}
	report := errs.Error()
	if got := strings.Count(report, "has duplicate option name 'verbose'"); got != 1 {
		t.Errorf("duplicate reported %d times, want once:\n%s", got, report)
	}
}

func TestValidateDuplicateShortAliases(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands[0].Options = []Option{
		{Name: "format", Short: "f"},
		{Name: "file", Short: "f"},
		{Name: "quality"},
		{Name: "quiet"},
	}

	errs := spec.Validate()
	if !errs.HasErrors() {
		t.Fatal("Validate() accepted duplicate short aliases")
	}
	if !strings.Contains(errs.Error(), "has duplicate short name 'f'") {
		t.Errorf("unexpected report:\n%s", errs.Error())
	}
	// Absent shorts never collide with each other.
	if strings.Contains(errs.Error(), "has duplicate short name ''") {
		t.Errorf("absent shorts treated as colliding:\n%s", errs.Error())
	}
}

func TestValidateDuplicateCommandNames(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands = append(spec.Commands, Command{Name: "convert"})

	errs := spec.Validate()
	if !errs.HasErrors() {
		t.Fatal("Validate() accepted duplicate command names")
	}
	if !strings.Contains(errs.Error(), "has duplicate command name 'convert'") {
		t.Errorf("unexpected report:\n%s", errs.Error())
	}
}

func TestValidateDuplicateArgumentNames(t *testing.T) {
	t.Parallel()

	cmd := Command{
		Name: "convert",
		Arguments: []Argument{
			{Name: "source"},
			{Name: "--source"},
		},
	}

	errs := cmd.Validate()
	if !errs.HasErrors() {
		t.Fatal("Validate() accepted duplicate argument names")
	}
	// Normalization runs first, so "--source" collides with "source".
	if !strings.Contains(errs.Error(), "has duplicate argument name 'source'") {
		t.Errorf("unexpected report:\n%s", errs.Error())
	}
}

func TestValidateUnknownTypesAreWarnings(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands[0].Arguments[0].Type = "uuid"
	spec.Commands[0].Options[1].Type = "enum"

	errs := spec.Validate()
	if errs.HasErrors() {
		t.Fatalf("unknown type tags must not produce errors:\n%s", errs.Error())
	}
	if errs.WarningCount() != 2 {
		t.Fatalf("WarningCount() = %d, want 2:\n%s", errs.WarningCount(), errs.Error())
	}
	if !strings.Contains(errs.Error(), "emission will fall back to 'string'") {
		t.Errorf("unexpected report:\n%s", errs.Error())
	}
}

func TestValidateEmptyNames(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands = append(spec.Commands, Command{Name: ""})
	spec.Commands[0].Arguments = append(spec.Commands[0].Arguments, Argument{Name: "--"})
	spec.Commands[0].Options = append(spec.Commands[0].Options, Option{Name: ""})

	errs := spec.Validate()
	if got := errs.ErrorCount(); got != 3 {
		t.Fatalf("ErrorCount() = %d, want 3:\n%s", got, errs.Error())
	}
	for _, want := range []string{
		"command #2: must have a non-empty name",
		"command 'convert' argument #2: must have a non-empty name",
		"command 'convert' option #3: must have a non-empty name",
	} {
		if !strings.Contains(errs.Error(), want) {
			t.Errorf("report missing %q:\n%s", want, errs.Error())
		}
	}
}

func TestValidateExamples(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Commands[0].Examples = []string{
		"imgconvert convert a.jpg",
		"   ",
		"imgconvert convert 'unterminated",
	}

	errs := spec.Validate()
	if errs.HasErrors() {
		t.Fatalf("example problems must not produce errors:\n%s", errs.Error())
	}
	if errs.WarningCount() != 2 {
		t.Fatalf("WarningCount() = %d, want 2:\n%s", errs.WarningCount(), errs.Error())
	}
	if !strings.Contains(errs.Error(), "example #2: is empty") {
		t.Errorf("report missing empty-example warning:\n%s", errs.Error())
	}
	if !strings.Contains(errs.Error(), "example #3: is not parseable as a shell invocation") {
		t.Errorf("report missing parse warning:\n%s", errs.Error())
	}
}

func TestValidateGlobalOptionsScope(t *testing.T) {
	t.Parallel()

	// A global option may share its name with a per-command option;
	// uniqueness applies within each sibling scope only.
	spec := validSpec()
	spec.GlobalOptions = append(spec.GlobalOptions, Option{Name: "format"})

	if errs := spec.Validate(); errs.HasErrors() {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}

	spec.GlobalOptions = append(spec.GlobalOptions, Option{Name: "verbose"})
	errs := spec.Validate()
	if !strings.Contains(errs.Error(), "global options: has duplicate option name 'verbose'") {
		t.Errorf("unexpected report:\n%s", errs.Error())
	}
}

func TestValidationErrorsReport(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Name = "import"
	spec.Commands[0].Arguments[0].Type = "uuid"

	errs := spec.Validate()
	report := errs.Error()
	if !strings.HasPrefix(report, "validation failed with 1 error and 1 warning:") {
		t.Errorf("unexpected report header:\n%s", report)
	}
	if errs.ErrorCount() != 1 || errs.WarningCount() != 1 {
		t.Errorf("counts = %d errors, %d warnings, want 1 and 1", errs.ErrorCount(), errs.WarningCount())
	}
}

func TestDuplicateNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, nil},
		{"one duplicate", []string{"a", "b", "a"}, []string{"a"}},
		{"triple reported once", []string{"v", "v", "v"}, []string{"v"}},
		{"first-seen order", []string{"b", "a", "a", "b"}, []string{"b", "a"}},
		{"empty input", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := duplicateNames(tt.names)
			if len(got) != len(tt.want) {
				t.Fatalf("duplicateNames(%v) = %v, want %v", tt.names, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("duplicateNames(%v)[%d] = %q, want %q", tt.names, i, got[i], tt.want[i])
				}
			}
		})
	}
}
