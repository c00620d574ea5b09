// SPDX-License-Identifier: MPL-2.0

// Package render formats generated artifacts for terminal display.
//
// It wraps glamour for markdown rendering so that `cligen show` and
// `cligen build --preview` present documentation and source previews
// with syntax highlighting instead of raw text dumps.
package render
