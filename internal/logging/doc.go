// Package logging wraps log/slog with the module's logger construction and
// attribute conventions.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for machine consumption. Components attach a
// standardized "component" attribute via NewComponentLogger so every line
// names the pipeline stage that emitted it.
package logging
