// Package config loads, normalizes, and validates tickermatch
// configuration.
//
// Configuration lives in a TOML file (default
// ~/.config/tickermatch/config.toml, falling back to ./tickermatch.toml)
// and is validated before any data processing starts. The [matching]
// section is the engine's recognized option surface: confidence
// thresholds, blocking token rules, the assignment strategy, and the
// rejected-pair policy. The [embedding] section configures the reference
// HTTP embedding client; the engine itself only sees the resulting
// capability.
package config
