// Package services defines the shared error taxonomy for pipeline stages
// and external integrations.
//
// Errors are tagged with sentinel markers (ErrValidation, ErrConfiguration,
// ErrEmbedding, ...) via Wrap so that callers can distinguish bad input,
// bad configuration, and external capability failures without string
// matching. Wrap also records which stage and operation failed, which is
// what the run-level "failed atomically at stage X" reporting relies on.
package services
