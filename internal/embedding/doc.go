// Package embedding defines the injected embedding capability and a
// reference client for OpenAI-compatible /embeddings endpoints.
//
// The engine depends only on the Embedder interface: deterministic for
// identical input text, approximately unit-norm, one shared dimension per
// run. The Client in this package is the production implementation; tests
// inject deterministic stand-ins from internal/testsupport.
package embedding
