// SPDX-License-Identifier: MPL-2.0

package pygen

import (
	"strings"
	"testing"

	"cligen-cli/pkg/clispec"
)

// imgconvertSpec returns a normalized specification exercising every
// rendering path: path argument, choice option with default, boolean
// global option, and a dash-named command.
func imgconvertSpec() *clispec.Specification {
	spec := &clispec.Specification{
		Name:        "imgconvert",
		Description: "Convert images between formats",
		Commands: []clispec.Command{
			{
				Name:        "convert",
				Description: "Convert a single image",
				Arguments: []clispec.Argument{
					{Name: "source", Type: clispec.ArgumentTypePath, Help: "Input image"},
				},
				Options: []clispec.Option{
					{Name: "format", Short: "f", Type: clispec.OptionTypeChoice, Choices: []string{"png", "jpg"}, Default: "png"},
				},
				Examples: []string{"imgconvert convert photo.jpg --format png"},
			},
			{
				Name:        "dry-run",
				Description: "Show what would be converted",
			},
		},
		GlobalOptions: []clispec.Option{
			{Name: "verbose", Short: "v", Type: clispec.OptionTypeBoolean, Help: "Enable verbose output"},
		},
	}
	spec.Normalize()
	return spec
}

func TestRenderEntryModule(t *testing.T) {
	t.Parallel()

	out := renderEntryModule(imgconvertSpec())

	for _, want := range []string{
		`"""Convert images between formats"""`,
		"from pathlib import Path\n",
		"import click\n",
		"@click.group()\n@click.version_option()\n",
		`@click.option("-v", "--verbose", is_flag=True, help="Enable verbose output")`,
		"def cli(verbose: bool) -> None:",
		"@cli.command()\n",
		`@click.argument("source", type=click.Path(exists=True))`,
		`@click.option("-f", "--format", type=click.Choice(["png", "jpg"]), default="png")`,
		"def convert(source: Path, format: str | None) -> None:",
		"    Examples:\n        imgconvert convert photo.jpg --format png\n",
		"    # TODO: Implement convert command\n",
		"    click.echo(\"convert command called\")\n",
		"def main() -> None:",
		"if __name__ == \"__main__\":\n    main()\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("entry module missing %q\n%s", want, out)
		}
	}
}

func TestRenderEntryModuleDashedCommand(t *testing.T) {
	t.Parallel()

	out := renderEntryModule(imgconvertSpec())

	// The function name is mapped, the CLI surface keeps the original spelling.
	if !strings.Contains(out, `@cli.command("dry-run")`) {
		t.Errorf("dashed command lost its CLI spelling:\n%s", out)
	}
	if !strings.Contains(out, "def dry_run() -> None:") {
		t.Errorf("dashed command not mapped to a legal function name:\n%s", out)
	}
}

func TestRenderEntryModuleOneFunctionPerCommand(t *testing.T) {
	t.Parallel()

	spec := imgconvertSpec()
	out := renderEntryModule(spec)

	// One def per command, plus the group callback and main().
	want := len(spec.Commands) + 2
	if got := strings.Count(out, "\ndef "); got != want {
		t.Errorf("found %d top-level functions, want %d:\n%s", got, want, out)
	}
}

func TestRenderEntryModuleSkipsPathlibWhenUnused(t *testing.T) {
	t.Parallel()

	spec := &clispec.Specification{
		Name:        "greeter",
		Description: "Say hello",
		Commands: []clispec.Command{
			{Name: "greet", Description: "Print a greeting"},
		},
	}
	spec.Normalize()

	out := renderEntryModule(spec)
	if strings.Contains(out, "pathlib") {
		t.Errorf("pathlib imported without any path-typed input:\n%s", out)
	}
	if !strings.Contains(out, "def cli() -> None:") {
		t.Errorf("empty global options should yield an empty callback signature:\n%s", out)
	}
}

func TestRenderInit(t *testing.T) {
	t.Parallel()

	out := renderInit(imgconvertSpec())
	want := "\"\"\"Convert images between formats\"\"\"\n\n__version__ = \"0.1.0\"\n"
	if out != want {
		t.Errorf("renderInit() = %q, want %q", out, want)
	}
}

func TestRenderReadme(t *testing.T) {
	t.Parallel()

	out := renderReadme(imgconvertSpec())

	for _, want := range []string{
		"# imgconvert\n\nConvert images between formats\n",
		"## Installation\n\n```bash\npip install imgconvert\n```",
		"## Usage\n\n```bash\nimgconvert --help\n```",
		"### convert\n",
		"imgconvert convert photo.jpg --format png\n",
		// No examples on dry-run, so the generic help line appears.
		"imgconvert dry-run --help\n",
		"## Global Options\n",
		"- `-v, --verbose`: Enable verbose output\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("readme missing %q\n%s", want, out)
		}
	}
}

func TestRenderManifest(t *testing.T) {
	t.Parallel()

	spec := imgconvertSpec()
	spec.Dependencies = []string{"pillow>=10"}

	data, err := renderManifest(spec)
	if err != nil {
		t.Fatalf("renderManifest() returned error: %v", err)
	}
	manifest := string(data)

	for _, want := range []string{
		`name = 'imgconvert'`,
		`version = '0.1.0'`,
		`description = 'Convert images between formats'`,
		`requires-python = '>=3.11'`,
		`dependencies = ['click>=8.1', 'pillow>=10']`,
		`imgconvert = 'imgconvert.cli:main'`,
		`requires = ['setuptools>=61.0']`,
		`build-backend = 'setuptools.build_meta'`,
	} {
		if !strings.Contains(manifest, want) {
			t.Errorf("manifest missing %q\n%s", want, manifest)
		}
	}
}
