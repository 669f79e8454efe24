// Package scoring computes embedding similarity for candidate pairs and
// classifies each score into a confidence tier.
//
// Embeddings are fetched only for the distinct names that survived
// blocking, one call per distinct name per run, through a per-run cache.
// Vectors are defensively L2-normalized so similarity reduces to a dot
// product, and scores are clamped to [-1, 1] to absorb floating point
// drift. Accumulation is sequential over sorted inputs, so a deterministic
// embedder yields bit-reproducible scores run to run.
//
// An embedding failure fails the whole run: a partially scored pair set is
// not a safe basis for a globally optimal assignment.
package scoring
