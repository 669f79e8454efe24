// Package blocking reduces the quadratic sponsor×ticker comparison space
// to pairs sharing at least one significant token.
//
// An inverted index over ticker tokens is built once per run and treated
// as an immutable value; candidate generation only reads it, so sponsors
// can be processed concurrently without locking.
//
// Blocking is a precision/recall tradeoff, not an exact filter: two
// semantically related names with zero lexical token overlap (a subsidiary
// trading under its parent's unrelated brand, say) never become a
// candidate pair. That recall ceiling is systematic and accepted; the
// scorer only ever sees pairs that survive this stage.
package blocking
