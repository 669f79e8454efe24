// Package testsupport provides shared helpers for tests.
package testsupport

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"testing"

	"tickermatch/internal/config"
	"tickermatch/internal/embedding"
)

const staticDimension = 256

// StaticEmbedder returns a deterministic in-process embedder for tests.
// Each text becomes a unit vector over hashed lowercase tokens, so equal
// texts embed identically and texts sharing tokens score high while
// unrelated texts score near zero. No network, no model weights.
func StaticEmbedder() embedding.Embedder {
	return embedding.Func(func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i] = staticVector(text)
		}
		return out, nil
	})
}

func staticVector(text string) []float32 {
	vec := make([]float32, staticDimension)
	for _, token := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%staticDimension]++
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

// NewConfig returns a validated configuration rooted in a per-test temp
// directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
