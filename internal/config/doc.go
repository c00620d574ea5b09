// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates cligen user configuration.
//
// Configuration lives in a CUE file (config.cue) resolved from a
// platform-specific directory, with a current-directory fallback. Files
// are validated against an embedded CUE schema before being merged into
// Viper, so schema violations surface with file/path context instead of
// silently producing zero values.
package config
