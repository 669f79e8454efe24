// Package engine runs the matching pipeline end to end: input validation,
// normalization, token blocking, embedding similarity scoring, confidence
// classification, and 1:1 assignment. Each run gets a fresh scorer cache
// and a unique run ID, and the pipeline is deterministic for a fixed input
// and embedder.
package engine
