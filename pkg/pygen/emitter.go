// SPDX-License-Identifier: MPL-2.0

package pygen

import (
	"fmt"
	"os"
	"path/filepath"

	"cligen-cli/pkg/clispec"
)

const (
	// ArtifactEntry is the generated entry module (<name>/cli.py).
	ArtifactEntry ArtifactKind = "entry"
	// ArtifactPackageInit is the generated package initializer (<name>/__init__.py).
	ArtifactPackageInit ArtifactKind = "packageInit"
	// ArtifactManifest is the generated manifest (pyproject.toml).
	ArtifactManifest ArtifactKind = "manifest"
	// ArtifactDocumentation is the generated documentation (README.md).
	ArtifactDocumentation ArtifactKind = "documentation"
)

type (
	// ArtifactKind identifies one of the generated source artifacts.
	ArtifactKind string

	// Artifacts maps artifact kind to the absolute path written for it.
	Artifacts map[ArtifactKind]string

	// Emitter renders a validated specification into a Python package on
	// disk. The zero value is ready to use; Emitter carries no state between
	// calls and a single value is safe for concurrent use on independent
	// specifications.
	Emitter struct{}
)

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit renders every artifact for spec under outputDir and reports the
// written file set. The directory layout is:
//
//	<outputDir>/
//	    <name>/
//	        cli.py
//	        __init__.py
//	    pyproject.toml
//	    README.md
//
// spec MUST have passed clispec validation; Emit does not re-validate.
// Writes happen in a fixed order (entry, init, manifest, documentation) and
// a failure partway through leaves the earlier artifacts on disk.
func (e *Emitter) Emit(spec *clispec.Specification, outputDir string) (Artifacts, error) {
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory %s: %w", outputDir, err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", absDir, err)
	}

	packageDir := filepath.Join(absDir, spec.Name)
	if err := os.MkdirAll(packageDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create package directory %s: %w", packageDir, err)
	}

	result := make(Artifacts, 4)

	entryPath := filepath.Join(packageDir, "cli.py")
	if err := writeArtifact(entryPath, []byte(renderEntryModule(spec))); err != nil {
		return result, err
	}
	result[ArtifactEntry] = entryPath

	initPath := filepath.Join(packageDir, "__init__.py")
	if err := writeArtifact(initPath, []byte(renderInit(spec))); err != nil {
		return result, err
	}
	result[ArtifactPackageInit] = initPath

	manifest, err := renderManifest(spec)
	if err != nil {
		return result, err
	}
	manifestPath := filepath.Join(absDir, "pyproject.toml")
	if err := writeArtifact(manifestPath, manifest); err != nil {
		return result, err
	}
	result[ArtifactManifest] = manifestPath

	readmePath := filepath.Join(absDir, "README.md")
	if err := writeArtifact(readmePath, []byte(renderReadme(spec))); err != nil {
		return result, err
	}
	result[ArtifactDocumentation] = readmePath

	return result, nil
}

// writeArtifact writes one rendered artifact to disk.
func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
