package embedding

import "context"

// Embedder maps text strings to dense vectors. Implementations must be
// deterministic for identical input within a run and must return one
// vector per input, in input order, all sharing the same dimension.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Func adapts a plain function to the Embedder interface.
type Func func(ctx context.Context, texts []string) ([][]float32, error)

// Embed implements Embedder.
func (f Func) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return f(ctx, texts)
}
