// Package entity defines the data model shared by every matching stage:
// input records, normalized entities, candidate pairs, scored pairs, and
// final 1:1 matches.
//
// All values are plain data. Each pipeline stage consumes the previous
// stage's output as an immutable slice, so a value created by one stage is
// never mutated by a later one.
package entity
