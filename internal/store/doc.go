// Package store persists runs, matches, reference data, and review labels
// in a single SQLite database. The schema is embedded and versioned; a
// database created by a different schema version is rejected at open time
// rather than silently misread.
package store
