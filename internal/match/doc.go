// Package match provides identifier tokenizing, edit distance and
// "did you mean" ranking for element type names.
//
// Key functions:
//   - TokenizeIdent / DashCase: split mixed-case identifiers into words
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
