// Package format writes machine-readable listings.
//
// # Kinds
//
//   - text: the styled listing (handled by the recent renderer, not here)
//   - json: an indented JSON array
//   - yaml: a YAML sequence
//
// Both structured kinds encode the same value, usually []recent.Entry, and
// never contain escape sequences.
package format
