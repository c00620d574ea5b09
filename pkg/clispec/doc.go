// SPDX-License-Identifier: MPL-2.0

// Package clispec defines the specification model for generated command-line
// tools, along with its normalization, structural validation, and JSON/CUE
// persistence.
//
// The model is a strict tree: a Specification owns Commands and global
// Options, and each Command owns its Arguments and Options. No entity holds a
// reference back to its owner, so extending a Specification is a pure
// copy-and-append (see Specification.WithCommand).
//
// Validation collects every violation found in a pass rather than stopping at
// the first, so callers can report all problems at once. Field-level
// normalization (dash stripping, empty-shorthand collapsing, default runtime
// version) always runs before invariant checks, so the checks only ever see
// canonical forms. Values produced by external collaborators (draft
// generators, deserialized files) must pass Validate before they are handed
// to an emitter.
package clispec
