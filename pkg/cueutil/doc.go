// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the 3-step CUE parsing pattern used by the
// clispec and config packages:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// Because CUE is a superset of JSON, the same flow accepts both JSON
// specification documents and hand-written CUE files.
//
// # Usage
//
//	//go:embed clispec_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Specification](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Specification",
//	    cueutil.WithFilename("spec.json"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes the JSON path for debugging
//	}
//	return result.Value, nil
package cueutil
