// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"cligen-cli/pkg/cueutil"
)

//go:embed clispec_schema.cue
var clispecSchema string

// Parse reads and parses a serialized specification from the given path.
// The document may be JSON or CUE; either way it is checked against the
// embedded schema, normalized, and fully validated before being returned.
func Parse(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses specification content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema → compile user document → validate and decode. Documents
// that decode cleanly but violate a structural invariant are rejected with
// the full ValidationErrors report.
func ParseBytes(data []byte, path string) (*Specification, error) {
	result, err := cueutil.ParseAndDecodeString[Specification](
		clispecSchema,
		data,
		"#Specification",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	spec := result.Value
	if errs := spec.Validate(); errs.HasErrors() {
		// ValidationErrors implements the error interface
		return nil, errs
	}

	return spec, nil
}

// Save writes the specification to path as two-space-indented JSON with a
// trailing newline. Round-tripping through Save and Parse preserves every
// field exactly.
func Save(spec *Specification, path string) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize specification: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write specification to %s: %w", path, err)
	}
	return nil
}
