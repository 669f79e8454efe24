package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"tickermatch/internal/embedding"
	"tickermatch/internal/entity"
	"tickermatch/internal/logging"
	"tickermatch/internal/services"
)

// Scorer scores candidate pairs by embedding similarity. A Scorer holds a
// per-run vector cache and must not be reused across runs; the engine
// constructs a fresh one per invocation.
type Scorer struct {
	embedder  embedding.Embedder
	batchSize int
	logger    *slog.Logger

	vectors   map[string][]float32
	dimension int
}

// NewScorer creates a scorer backed by the injected embedding capability.
// batchSize bounds how many distinct names are sent per embed call.
func NewScorer(embedder embedding.Embedder, batchSize int, logger *slog.Logger) *Scorer {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Scorer{
		embedder:  embedder,
		batchSize: batchSize,
		logger:    logging.NewComponentLogger(logger, "scoring"),
		vectors:   make(map[string][]float32),
	}
}

// Score embeds the distinct names appearing in pairs and computes the dot
// product for each pair, clamped to [-1, 1]. tickers maps ticker ID to its
// normalized entity; sponsor IDs are the sponsor names themselves. The
// returned slice preserves the input pair order.
func (s *Scorer) Score(ctx context.Context, pairs []entity.CandidatePair, tickers map[string]entity.Entity) ([]entity.ScoredPair, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	distinct := make(map[string]struct{})
	for _, pair := range pairs {
		distinct[pair.SponsorID] = struct{}{}
		ticker, ok := tickers[pair.TickerID]
		if !ok {
			return nil, services.Wrap(services.ErrValidation, "scoring", "resolve ticker",
				fmt.Sprintf("candidate pair references unknown ticker %q", pair.TickerID), nil)
		}
		distinct[tickerText(ticker)] = struct{}{}
	}

	if err := s.embedAll(ctx, distinct); err != nil {
		return nil, err
	}

	scored := make([]entity.ScoredPair, 0, len(pairs))
	for _, pair := range pairs {
		sponsorVec := s.vectors[pair.SponsorID]
		tickerVec := s.vectors[tickerText(tickers[pair.TickerID])]
		scored = append(scored, entity.ScoredPair{
			CandidatePair: pair,
			Score:         clampScore(dot(sponsorVec, tickerVec)),
		})
	}

	s.logger.Info("scored candidate pairs",
		logging.Args(
			logging.Int("pairs", len(scored)),
			logging.Int("distinct_names", len(distinct)),
			logging.Int("dimension", s.dimension),
		)...)
	return scored, nil
}

// embedAll fetches vectors for every name not already cached, in sorted
// order so batching is deterministic.
func (s *Scorer) embedAll(ctx context.Context, names map[string]struct{}) error {
	missing := make([]string, 0, len(names))
	for name := range names {
		if _, cached := s.vectors[name]; !cached {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	for start := 0; start < len(missing); start += s.batchSize {
		end := min(start+s.batchSize, len(missing))
		batch := missing[start:end]

		vectors, err := s.embedder.Embed(ctx, batch)
		if err != nil {
			return services.Wrap(services.ErrEmbedding, "scoring", "embed batch",
				"embedding capability failed; aborting run", err)
		}
		if len(vectors) != len(batch) {
			return services.Wrap(services.ErrEmbedding, "scoring", "embed batch",
				fmt.Sprintf("embedder returned %d vectors for %d names", len(vectors), len(batch)), nil)
		}
		for i, vec := range vectors {
			if len(vec) == 0 {
				return services.Wrap(services.ErrEmbedding, "scoring", "embed batch",
					fmt.Sprintf("empty vector for %q", batch[i]), nil)
			}
			if s.dimension == 0 {
				s.dimension = len(vec)
			} else if len(vec) != s.dimension {
				return services.Wrap(services.ErrEmbedding, "scoring", "embed batch",
					fmt.Sprintf("vector dimension changed from %d to %d for %q", s.dimension, len(vec), batch[i]), nil)
			}
			l2Normalize(vec)
			s.vectors[batch[i]] = vec
		}
	}
	return nil
}

// tickerText returns the text embedded for a ticker: the listed company
// name, falling back to the symbol for tickers without one.
func tickerText(ticker entity.Entity) string {
	if ticker.RawName != "" {
		return ticker.RawName
	}
	return ticker.ID
}
