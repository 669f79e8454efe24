// Package normalize derives blocking tokens from raw entity names.
//
// Normalization lowercases, folds diacritics, splits on runs of
// non-alphanumeric characters, and drops short tokens and configured
// common tokens (legal suffixes, industry boilerplate). The token slice is
// sorted and deduplicated so downstream stages are order-independent.
//
// A name made entirely of common tokens normalizes to an empty token set.
// Such entities can never participate in blocking; callers report them as
// unblockable rather than dropping them silently.
package normalize
