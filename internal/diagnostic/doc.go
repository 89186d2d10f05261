// Package diagnostic provides structured errors, warnings and notes
// reported while checking UIDL content before compilation.
//
// Key capabilities:
//   - Error/warning/info collection with stable codes
//   - Node paths pointing at the offending part of the tree
//   - Folding all errors into a single message for callers
package diagnostic
