// SPDX-License-Identifier: MPL-2.0

// Package pygen renders a validated clispec.Specification into a buildable
// Python/Click package: the entry module (cli.py), the package initializer
// (__init__.py), the manifest (pyproject.toml), and the documentation
// (README.md).
//
// Rendering is deterministic: the same specification value always produces
// byte-identical artifacts, with no timestamps, random identifiers, or
// environment-dependent content. The emitter assumes its input has already
// passed clispec validation and does not re-check invariants; feeding it an
// unvalidated specification is a contract violation with undefined output.
//
// Filesystem writes are sequential. When a write fails partway through,
// artifacts written before the failure remain on disk; there is no rollback.
package pygen
