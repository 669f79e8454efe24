package scoring

import "tickermatch/internal/entity"

// Thresholds holds the tier boundaries. Both values are inclusive on the
// lower bound of the tier they open: a score equal to High is approved and
// a score equal to Low is pending.
type Thresholds struct {
	High float64
	Low  float64
}

// ClassifyScore maps a similarity score to its confidence tier.
func ClassifyScore(score float64, t Thresholds) entity.Tier {
	switch {
	case score >= t.High:
		return entity.TierApproved
	case score >= t.Low:
		return entity.TierPending
	default:
		return entity.TierRejected
	}
}

// Classify tiers every scored pair, preserving input order.
func Classify(pairs []entity.ScoredPair, t Thresholds) []entity.ClassifiedPair {
	classified := make([]entity.ClassifiedPair, 0, len(pairs))
	for _, pair := range pairs {
		classified = append(classified, entity.ClassifiedPair{
			ScoredPair: pair,
			Tier:       ClassifyScore(pair.Score, t),
		})
	}
	return classified
}
