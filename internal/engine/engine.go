package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tickermatch/internal/assign"
	"tickermatch/internal/blocking"
	"tickermatch/internal/config"
	"tickermatch/internal/embedding"
	"tickermatch/internal/entity"
	"tickermatch/internal/logging"
	"tickermatch/internal/normalize"
	"tickermatch/internal/scoring"
)

// Result carries everything a run produced: the final 1:1 matches, the
// classified pair set they were selected from, and run metadata.
type Result struct {
	RunID       string
	Strategy    string
	Matches     []entity.Match
	Classified  []entity.ClassifiedPair
	NoCandidate []string
	Stats       Stats
}

// Engine wires the pipeline stages together. Construct one per process;
// each Match call is independent.
type Engine struct {
	cfg      *config.Config
	embedder embedding.Embedder
	logger   *slog.Logger
}

// New creates an engine using the given embedding capability. A nil logger
// disables logging.
func New(cfg *config.Config, embedder embedding.Embedder, logger *slog.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		embedder: embedder,
		logger:   logging.NewComponentLogger(logger, "engine"),
	}
}

// Match runs the full pipeline over one batch of sponsors and tickers.
// Invalid input fails the whole batch before any stage runs.
func (e *Engine) Match(ctx context.Context, sponsors []entity.SponsorRecord, tickers []entity.TickerRecord) (*Result, error) {
	started := time.Now()
	if err := validateInputs(sponsors, tickers); err != nil {
		return nil, err
	}
	tickers = dedupTickers(tickers)

	result := &Result{
		RunID:    uuid.New().String(),
		Strategy: e.cfg.Matching.AssignmentStrategy,
	}
	result.Stats.Sponsors = len(sponsors)
	result.Stats.Tickers = len(tickers)

	e.logger.Info("run started",
		logging.Args(
			logging.String("run_id", result.RunID),
			logging.Int("sponsors", len(sponsors)),
			logging.Int("tickers", len(tickers)),
			logging.String("strategy", result.Strategy),
		)...)

	normalizer := normalize.New(e.cfg.Matching.MinTokenLength, e.cfg.CommonTokenSet())
	sponsorEntities := make([]entity.Entity, 0, len(sponsors))
	for _, rec := range sponsors {
		ent := normalizer.Sponsor(rec)
		if !ent.Blockable() {
			result.Stats.UnblockableSponsors++
			result.NoCandidate = append(result.NoCandidate, ent.ID)
		}
		sponsorEntities = append(sponsorEntities, ent)
	}

	tickerEntities := make([]entity.Entity, 0, len(tickers))
	tickerByID := make(map[string]entity.Entity, len(tickers))
	for _, rec := range tickers {
		ent := normalizer.Ticker(rec)
		tickerEntities = append(tickerEntities, ent)
		tickerByID[ent.ID] = ent
	}

	index := blocking.BuildIndex(tickerEntities)
	candidates, noCandidates := blocking.Generate(sponsorEntities, index)
	result.NoCandidate = append(result.NoCandidate, noCandidates...)
	result.Stats.NoCandidateSponsors = len(noCandidates)
	result.Stats.CandidatePairs = len(candidates)

	e.logger.Info("blocking complete",
		logging.Args(
			logging.Int("candidate_pairs", len(candidates)),
			logging.Int("indexed_tokens", index.TokenCount()),
			logging.Int("sponsors_without_candidates", result.Stats.NoCandidateSponsors),
			logging.Float64("reduction_percent", result.Stats.ReductionPercent()),
		)...)

	if len(result.NoCandidate) > 0 {
		e.logger.Warn("sponsors have no ticker candidates",
			logging.Args(
				logging.Int("unblockable", result.Stats.UnblockableSponsors),
				logging.Int("no_index_hits", result.Stats.NoCandidateSponsors),
			)...)
	}

	scorer := scoring.NewScorer(e.embedder, e.cfg.Embedding.BatchSize, e.logger)
	scored, err := scorer.Score(ctx, candidates, tickerByID)
	if err != nil {
		return nil, err
	}

	thresholds := scoring.Thresholds{
		High: e.cfg.Matching.HighThreshold,
		Low:  e.cfg.Matching.LowThreshold,
	}
	result.Classified = scoring.Classify(scored, thresholds)
	for _, pair := range result.Classified {
		switch pair.Tier {
		case entity.TierApproved:
			result.Stats.ApprovedPairs++
		case entity.TierPending:
			result.Stats.PendingPairs++
		default:
			result.Stats.RejectedPairs++
		}
	}

	assignable := result.Classified
	if e.cfg.Matching.RejectBeforeAssignment {
		assignable = withoutRejected(result.Classified)
	}

	solver, err := assign.New(result.Strategy)
	if err != nil {
		return nil, err
	}
	result.Matches = solver.Solve(assignable)
	result.Stats.Matches = len(result.Matches)
	result.Stats.TotalScore = entity.TotalScore(result.Matches)
	result.Stats.Elapsed = time.Since(started)

	e.logger.Info("run complete",
		logging.Args(
			logging.String("run_id", result.RunID),
			logging.Int("matches", result.Stats.Matches),
			logging.Int("approved_pairs", result.Stats.ApprovedPairs),
			logging.Int("pending_pairs", result.Stats.PendingPairs),
			logging.Int("rejected_pairs", result.Stats.RejectedPairs),
			logging.Float64("total_score", result.Stats.TotalScore),
			logging.Duration("elapsed", result.Stats.Elapsed),
		)...)
	return result, nil
}

func withoutRejected(pairs []entity.ClassifiedPair) []entity.ClassifiedPair {
	kept := make([]entity.ClassifiedPair, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Tier == entity.TierRejected {
			continue
		}
		kept = append(kept, pair)
	}
	return kept
}
