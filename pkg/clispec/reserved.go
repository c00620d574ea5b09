// SPDX-License-Identifier: MPL-2.0

package clispec

import "regexp"

// identifierRegex validates Python-legal identifiers. The generated package
// and module are named after the specification, so the root name must satisfy
// this grammar exactly.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// pythonKeywords lists the reserved words of the target language. A
// specification named after any of these would produce an unimportable
// package, so the root name check rejects them outright.
var pythonKeywords = map[string]bool{
	"False":    true,
	"None":     true,
	"True":     true,
	"and":      true,
	"as":       true,
	"assert":   true,
	"async":    true,
	"await":    true,
	"break":    true,
	"class":    true,
	"continue": true,
	"def":      true,
	"del":      true,
	"elif":     true,
	"else":     true,
	"except":   true,
	"finally":  true,
	"for":      true,
	"from":     true,
	"global":   true,
	"if":       true,
	"import":   true,
	"in":       true,
	"is":       true,
	"lambda":   true,
	"nonlocal": true,
	"not":      true,
	"or":       true,
	"pass":     true,
	"raise":    true,
	"return":   true,
	"try":      true,
	"while":    true,
	"with":     true,
	"yield":    true,
}

// IsValidIdentifier reports whether name matches the identifier grammar of
// the target language.
func IsValidIdentifier(name string) bool {
	return identifierRegex.MatchString(name)
}

// IsReservedWord reports whether name is a reserved keyword of the target
// language.
func IsReservedWord(name string) bool {
	return pythonKeywords[name]
}
