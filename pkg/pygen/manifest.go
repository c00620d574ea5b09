// SPDX-License-Identifier: MPL-2.0

package pygen

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"cligen-cli/pkg/clispec"
)

const (
	// generatedVersion is the fixed version marker stamped into every
	// generated package (init module and manifest alike).
	generatedVersion = "0.1.0"

	// baselineDependency seeds the dependency list of every generated
	// package; the emitted code cannot run without it.
	baselineDependency = "click>=8.1"
)

type (
	// pyProject models the subset of pyproject.toml the emitter declares.
	// Field order here is rendering order, which keeps output byte-stable.
	pyProject struct {
		Project     projectTable     `toml:"project"`
		BuildSystem buildSystemTable `toml:"build-system"`
	}

	projectTable struct {
		Name           string            `toml:"name"`
		Version        string            `toml:"version"`
		Description    string            `toml:"description"`
		RequiresPython string            `toml:"requires-python"`
		Dependencies   []string          `toml:"dependencies"`
		Scripts        map[string]string `toml:"scripts"`
	}

	buildSystemTable struct {
		Requires     []string `toml:"requires"`
		BuildBackend string   `toml:"build-backend"`
	}
)

// renderManifest renders pyproject.toml: package identity, minimum runtime
// version, the baseline dependency followed by every declared dependency in
// specification order, and the entry point binding the tool name to the
// entry module's dispatcher.
func renderManifest(spec *clispec.Specification) ([]byte, error) {
	deps := make([]string, 0, len(spec.Dependencies)+1)
	deps = append(deps, baselineDependency)
	deps = append(deps, spec.Dependencies...)

	manifest := pyProject{
		Project: projectTable{
			Name:           spec.Name,
			Version:        generatedVersion,
			Description:    spec.Description,
			RequiresPython: ">=" + spec.PythonVersion,
			Dependencies:   deps,
			Scripts: map[string]string{
				spec.Name: fmt.Sprintf("%s.cli:main", spec.Name),
			},
		},
		BuildSystem: buildSystemTable{
			Requires:     []string{"setuptools>=61.0"},
			BuildBackend: "setuptools.build_meta",
		},
	}

	data, err := toml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to render manifest: %w", err)
	}
	return data, nil
}
