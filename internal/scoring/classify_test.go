package scoring_test

import (
	"testing"

	"tickermatch/internal/entity"
	"tickermatch/internal/scoring"
)

func TestClassifyScoreBoundaries(t *testing.T) {
	thresholds := scoring.Thresholds{High: 0.85, Low: 0.65}

	cases := []struct {
		score float64
		want  entity.Tier
	}{
		{0.99, entity.TierApproved},
		{0.85, entity.TierApproved}, // inclusive lower bound of approved
		{0.8499999, entity.TierPending},
		{0.65, entity.TierPending}, // inclusive lower bound of pending
		{0.6499999, entity.TierRejected},
		{0.0, entity.TierRejected},
		{-1.0, entity.TierRejected},
	}
	for _, tc := range cases {
		if got := scoring.ClassifyScore(tc.score, thresholds); got != tc.want {
			t.Fatalf("ClassifyScore(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	pairs := []entity.ScoredPair{
		{CandidatePair: entity.CandidatePair{SponsorID: "a", TickerID: "X", SharedTokens: 1}, Score: 0.9},
		{CandidatePair: entity.CandidatePair{SponsorID: "b", TickerID: "Y", SharedTokens: 1}, Score: 0.7},
		{CandidatePair: entity.CandidatePair{SponsorID: "c", TickerID: "Z", SharedTokens: 1}, Score: 0.1},
	}
	classified := scoring.Classify(pairs, scoring.Thresholds{High: 0.85, Low: 0.65})
	if len(classified) != 3 {
		t.Fatalf("expected 3 classified pairs, got %d", len(classified))
	}
	wantTiers := []entity.Tier{entity.TierApproved, entity.TierPending, entity.TierRejected}
	for i, pair := range classified {
		if pair.SponsorID != pairs[i].SponsorID {
			t.Fatalf("order changed at %d: %q", i, pair.SponsorID)
		}
		if pair.Tier != wantTiers[i] {
			t.Fatalf("unexpected tier at %d: %v", i, pair.Tier)
		}
	}
}
